package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

const valeSelectQuery = `SELECT v.id, v.cliente_id, v.tipo, v.valor, v.data, v.descricao, v.created_at, c.nome
	FROM vales v
	LEFT JOIN clientes c ON v.cliente_id = c.id`

func scanVale(scanner interface{ Scan(...any) error }) (models.Vale, error) {
	var v models.Vale
	err := scanner.Scan(&v.ID, &v.ClientID, &v.Kind, &v.Value, &v.Date, &v.Description, &v.CreatedAt, &v.ClientName)
	return v, err
}

func queryVales(r *http.Request, conditions []string, args []any) ([]models.Vale, error) {
	query := valeSelectQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY v.data DESC, v.created_at DESC"

	rows, err := DB.QueryContext(r.Context(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vales := []models.Vale{}
	for rows.Next() {
		v, err := scanVale(rows)
		if err != nil {
			return nil, err
		}
		vales = append(vales, v)
	}
	return vales, rows.Err()
}

// ListVales lists vale entries
// @Summary      List vales
// @Description  Get client credit and debit entries, newest first.
// @Tags         vales
// @Produce      json
// @Param        clientId  query     string  false  "Filter by client"
// @Param        kind      query     string  false  "Filter by kind (credito, debito)"
// @Param        from      query     string  false  "Date from (YYYY-MM-DD)"
// @Param        to        query     string  false  "Date to (YYYY-MM-DD)"
// @Success      200       {object}  Response{data=[]models.Vale}
// @Router       /vales [get]
// @Security     BearerAuth
func ListVales(w http.ResponseWriter, r *http.Request) {
	var conditions []string
	var args []any

	if cid := r.URL.Query().Get("clientId"); cid != "" {
		conditions = append(conditions, "v.cliente_id = ?")
		args = append(args, cid)
	}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		conditions = append(conditions, "v.tipo = ?")
		args = append(args, kind)
	}
	if from := r.URL.Query().Get("from"); from != "" {
		conditions = append(conditions, "v.data >= ?")
		args = append(args, from)
	}
	if to := r.URL.Query().Get("to"); to != "" {
		conditions = append(conditions, "v.data <= ?")
		args = append(args, to)
	}

	vales, err := queryVales(r, conditions, args)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vales)
}

// CreateVale records a client credit or debit
// @Summary      Create vale
// @Tags         vales
// @Accept       json
// @Produce      json
// @Param        vale  body      models.ValeInput  true  "Vale contents"
// @Success      201   {object}  Response{data=models.Vale}
// @Failure      400   {object}  Response{error=string}
// @Router       /vales [post]
// @Security     BearerAuth
func CreateVale(w http.ResponseWriter, r *http.Request) {
	var input models.ValeInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var exists int
	if err := DB.QueryRowContext(r.Context(), "SELECT COUNT(*) FROM clientes WHERE id = ?", input.ClientID).Scan(&exists); err != nil {
		internalError(w, r, err)
		return
	}
	if exists == 0 {
		writeError(w, http.StatusBadRequest, "client not found")
		return
	}

	id := uuid.NewString()
	_, err := DB.ExecContext(r.Context(), `INSERT INTO vales (id, cliente_id, tipo, valor, data, descricao, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, id, input.ClientID, input.Kind, db.Money(input.Value),
		input.Date, input.Description, time.Now().UTC())
	if err != nil {
		internalError(w, r, err)
		return
	}

	v, err := scanVale(DB.QueryRowContext(r.Context(), valeSelectQuery+" WHERE v.id = ?", id))
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// DeleteVale deletes a vale entry
// @Summary      Delete vale
// @Tags         vales
// @Produce      json
// @Param        id   path      string  true  "Vale ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /vales/{id} [delete]
// @Security     BearerAuth
func DeleteVale(w http.ResponseWriter, r *http.Request) {
	res, err := DB.ExecContext(r.Context(), "DELETE FROM vales WHERE id = ?", chi.URLParam(r, "id"))
	if err != nil {
		internalError(w, r, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "vale not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// GetClientVales returns a client's vale statement
// @Summary      Client vale statement
// @Description  Get all vale entries for a client with credit, debit and balance totals.
// @Tags         vales
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  Response{data=models.ValeStatement}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id}/vales [get]
// @Security     BearerAuth
func GetClientVales(w http.ResponseWriter, r *http.Request) {
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

	entries, err := queryVales(r, []string{"v.cliente_id = ?"}, []any{id})
	if err != nil {
		internalError(w, r, err)
		return
	}

	st := models.ValeStatement{ClientID: id, Credits: decimal.Zero, Debits: decimal.Zero, Entries: entries}
	for _, v := range entries {
		if v.Kind == models.ValeCredit {
			st.Credits = st.Credits.Add(v.Value)
		} else {
			st.Debits = st.Debits.Add(v.Value)
		}
	}
	st.Balance = st.Credits.Sub(st.Debits)
	writeJSON(w, http.StatusOK, st)
}
