package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/models"
	"github.com/Emerchan23/sisvendas1-sub004/saleslines"
)

const clientSelectQuery = `SELECT id, nome, documento, email, telefone, created_at, updated_at,
	(SELECT COUNT(*) FROM linhas_venda WHERE cliente = clientes.nome),
	COALESCE((SELECT SUM(valor_venda) FROM linhas_venda WHERE cliente = clientes.nome), 0),
	COALESCE((SELECT SUM(CASE WHEN tipo = 'credito' THEN valor ELSE -valor END) FROM vales WHERE cliente_id = clientes.id), 0)
	FROM clientes`

func scanClient(scanner interface{ Scan(...any) error }) (models.Client, error) {
	var c models.Client
	err := scanner.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
		&c.SalesCount, &c.TotalSales, &c.ValeBalance)
	return c, err
}

func getClientByID(r *http.Request, id string) (models.Client, error) {
	return scanClient(DB.QueryRowContext(r.Context(), clientSelectQuery+" WHERE id = ?", id))
}

// ListClients lists all clients
// @Summary      List clients
// @Description  Get all clients with their sales totals and vale balance.
// @Tags         clients
// @Produce      json
// @Param        search  query     string  false  "Search by name, document, email, or phone"
// @Success      200     {object}  Response{data=[]models.Client}
// @Router       /clients [get]
// @Security     BearerAuth
func ListClients(w http.ResponseWriter, r *http.Request) {
	query := clientSelectQuery
	var args []any

	if search := r.URL.Query().Get("search"); search != "" {
		query += " WHERE (nome LIKE ? OR documento LIKE ? OR email LIKE ? OR telefone LIKE ?)"
		s := "%" + search + "%"
		args = append(args, s, s, s, s)
	}
	query += " ORDER BY nome"

	rows, err := DB.QueryContext(r.Context(), query, args...)
	if err != nil {
		internalError(w, r, err)
		return
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			internalError(w, r, err)
			return
		}
		clients = append(clients, c)
	}
	writeJSON(w, http.StatusOK, clients)
}

// GetClient retrieves a single client by ID
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  Response{data=models.Client}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [get]
// @Security     BearerAuth
func GetClient(w http.ResponseWriter, r *http.Request) {
	c, err := getClientByID(r, chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateClient creates a new client
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      models.ClientInput  true  "Client contents"
// @Success      201     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Router       /clients [post]
// @Security     BearerAuth
func CreateClient(w http.ResponseWriter, r *http.Request) {
	var input models.ClientInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := DB.ExecContext(r.Context(), `INSERT INTO clientes (id, nome, documento, email, telefone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, id, input.Name, input.Document, input.Email, input.Phone, now, now)
	if err != nil {
		internalError(w, r, err)
		return
	}

	c, err := getClientByID(r, id)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateClient updates an existing client
// @Summary      Update client
// @Description  Update a client. Renaming a client also renames it on its sales lines.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "Client ID"
// @Param        client  body      models.ClientInput  true  "Updated client contents"
// @Success      200     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /clients/{id} [put]
// @Security     BearerAuth
func UpdateClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.ClientInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err := db.InTx(r.Context(), DB, func(tx *sql.Tx) error {
		var oldName string
		err := tx.QueryRowContext(r.Context(), "SELECT nome FROM clientes WHERE id = ?", id).Scan(&oldName)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("client not found")
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(r.Context(), `UPDATE clientes SET nome = ?, documento = ?, email = ?, telefone = ?,
			updated_at = ? WHERE id = ?`, input.Name, input.Document, input.Email, input.Phone, time.Now().UTC(), id); err != nil {
			return err
		}
		if oldName != input.Name {
			if _, err := tx.ExecContext(r.Context(), "UPDATE linhas_venda SET cliente = ? WHERE cliente = ?", input.Name, oldName); err != nil {
				return err
			}
		}
		return nil
	})
	if apperr.IsNotFound(err) {
		writeAppError(w, r, err)
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}

	c, err := getClientByID(r, id)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteClient deletes a client
// @Summary      Delete client
// @Description  Remove a client. Clients with sales lines or vales are rejected.
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [delete]
// @Security     BearerAuth
func DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var name string
	err := DB.QueryRowContext(r.Context(), "SELECT nome FROM clientes WHERE id = ?", id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}

	lines, err := saleslines.NewStore(DB).CountByClient(r.Context(), name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	var vales int
	if err := DB.QueryRowContext(r.Context(), "SELECT COUNT(*) FROM vales WHERE cliente_id = ?", id).Scan(&vales); err != nil {
		internalError(w, r, err)
		return
	}
	if lines > 0 || vales > 0 {
		var parts []string
		if lines > 0 {
			parts = append(parts, plural(lines, "sales line", "sales lines"))
		}
		if vales > 0 {
			parts = append(parts, plural(vales, "vale", "vales"))
		}
		writeAppError(w, r, apperr.Conflictf("client has %s and cannot be deleted", strings.Join(parts, " and ")))
		return
	}

	if _, err := DB.ExecContext(r.Context(), "DELETE FROM clientes WHERE id = ?", id); err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
