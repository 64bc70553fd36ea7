package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/auth"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// DB is the shared database connection used by the plain CRUD handlers.
var DB *sql.DB

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeAppError maps an apperr kind to a status code. Internal errors are
// logged in full and answered with a generic message.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.Conflict:
		writeError(w, http.StatusBadRequest, apperr.Message(err))
	case apperr.NotFound:
		writeError(w, http.StatusNotFound, apperr.Message(err))
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, apperr.Message(err))
	}
}

// internalError logs err and answers with a generic 500.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	writeAppError(w, r, apperr.Wrap(err, "database error"))
}

// decodeJSON decodes the request body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

// Authenticate is middleware that enforces a Bearer JWT. With no secret
// configured the API is left open.
func Authenticate(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if issuer == nil || !issuer.Enabled() {
			slog.Warn("JWT_SECRET not set, API is unauthenticated")
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw := strings.TrimPrefix(header, "Bearer ")
			if header == "" || raw == header {
				w.Header().Set("WWW-Authenticate", `Bearer realm="sisvendas"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			claims, err := issuer.ValidateToken(raw)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole rejects requests whose token lacks role. When authentication
// is disabled there are no claims and the request passes.
func RequireRole(issuer *auth.Issuer, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if issuer == nil || !issuer.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.FromContext(r.Context())
			if !ok || claims.Role != role {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
