package handlers

import (
	"net/http"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/auth"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

// AuthHandler serves login and user management.
type AuthHandler struct {
	users  *auth.Users
	issuer *auth.Issuer
}

func NewAuthHandler(users *auth.Users, issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

// Login exchanges credentials for a token
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginInput  true  "Username and password"
// @Success      200          {object}  Response{data=models.LoginResult}
// @Failure      400          {object}  Response{error=string}
// @Failure      401          {object}  Response{error=string}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.Username == "" || input.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if !h.issuer.Enabled() {
		writeError(w, http.StatusBadRequest, "authentication is not configured")
		return
	}

	u, err := h.users.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		if apperr.IsValidation(err) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeAppError(w, r, err)
		return
	}

	token, exp, err := h.issuer.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResult{Token: token, ExpiresAt: exp, User: u})
}

// Me returns the authenticated user
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=models.User}
// @Failure      401  {object}  Response{error=string}
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, err := h.users.Get(r.Context(), claims.UserID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ListUsers lists API users
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  Response{data=[]models.User}
// @Failure      403  {object}  Response{error=string}
// @Router       /users [get]
// @Security     BearerAuth
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreateUser creates an API user
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      models.UserInput  true  "User contents"
// @Success      201   {object}  Response{data=models.User}
// @Failure      400   {object}  Response{error=string}
// @Failure      403   {object}  Response{error=string}
// @Router       /users [post]
// @Security     BearerAuth
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if !decodeJSON(w, r, &input) {
		return
	}
	u, err := h.users.Create(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
