package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/expenses"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

const participantSelectQuery = `SELECT id, nome, percentual, ativo, created_at, updated_at,
	COALESCE((SELECT SUM(valor) FROM despesas_pendentes
		WHERE participante_id = participantes.id AND tipo = 'individual' AND status = 'pendente'), 0)
	FROM participantes`

func scanParticipant(scanner interface{ Scan(...any) error }) (models.Participant, error) {
	var p models.Participant
	err := scanner.Scan(&p.ID, &p.Name, &p.Percent, &p.Active, &p.CreatedAt, &p.UpdatedAt, &p.PendingExpenses)
	return p, err
}

func getParticipantByID(r *http.Request, id string) (models.Participant, error) {
	return scanParticipant(DB.QueryRowContext(r.Context(), participantSelectQuery+" WHERE id = ?", id))
}

// ListParticipants lists all participants
// @Summary      List participants
// @Description  Get all partners with their share and open individual expenses.
// @Tags         participants
// @Produce      json
// @Param        active  query     bool  false  "Only active participants"
// @Success      200     {object}  Response{data=[]models.Participant}
// @Router       /participants [get]
// @Security     BearerAuth
func ListParticipants(w http.ResponseWriter, r *http.Request) {
	query := participantSelectQuery
	if r.URL.Query().Get("active") == "true" {
		query += " WHERE ativo = 1"
	}
	query += " ORDER BY nome"

	rows, err := DB.QueryContext(r.Context(), query)
	if err != nil {
		internalError(w, r, err)
		return
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			internalError(w, r, err)
			return
		}
		participants = append(participants, p)
	}
	writeJSON(w, http.StatusOK, participants)
}

// GetParticipant retrieves a single participant by ID
// @Summary      Get participant
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "Participant ID"
// @Success      200  {object}  Response{data=models.Participant}
// @Failure      404  {object}  Response{error=string}
// @Router       /participants/{id} [get]
// @Security     BearerAuth
func GetParticipant(w http.ResponseWriter, r *http.Request) {
	p, err := getParticipantByID(r, chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateParticipant creates a new participant
// @Summary      Create participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        participant  body      models.ParticipantInput  true  "Participant contents"
// @Success      201          {object}  Response{data=models.Participant}
// @Failure      400          {object}  Response{error=string}
// @Router       /participants [post]
// @Security     BearerAuth
func CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var input models.ParticipantInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := DB.ExecContext(r.Context(), `INSERT INTO participantes (id, nome, percentual, ativo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`, id, input.Name, db.Money(input.Percent), *input.Active, now, now)
	if err != nil {
		internalError(w, r, err)
		return
	}

	p, err := getParticipantByID(r, id)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdateParticipant updates an existing participant
// @Summary      Update participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id           path      string                   true  "Participant ID"
// @Param        participant  body      models.ParticipantInput  true  "Updated participant contents"
// @Success      200          {object}  Response{data=models.Participant}
// @Failure      400          {object}  Response{error=string}
// @Failure      404          {object}  Response{error=string}
// @Router       /participants/{id} [put]
// @Security     BearerAuth
func UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.ParticipantInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := DB.ExecContext(r.Context(), `UPDATE participantes SET nome = ?, percentual = ?, ativo = ?, updated_at = ?
		WHERE id = ?`, input.Name, db.Money(input.Percent), *input.Active, time.Now().UTC(), id)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}

	p, err := getParticipantByID(r, id)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteParticipant deletes a participant
// @Summary      Delete participant
// @Description  Remove a participant. Participants referenced by expenses are rejected.
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "Participant ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /participants/{id} [delete]
// @Security     BearerAuth
func DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := getParticipantByID(r, id); errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	} else if err != nil {
		internalError(w, r, err)
		return
	}

	n, err := expenses.NewStore(DB).CountByParticipant(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if n > 0 {
		writeAppError(w, r, apperr.Conflictf("participant has %s and cannot be deleted", plural(n, "expense", "expenses")))
		return
	}

	if _, err := DB.ExecContext(r.Context(), "DELETE FROM participantes WHERE id = ?", id); err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
