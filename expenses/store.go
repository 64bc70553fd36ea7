// Package expenses stores despesas pendentes, the individual and shared
// (rateio) expenses that settlements absorb.
package expenses

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

const selectQuery = `SELECT id, descricao, valor, data_vencimento, categoria, tipo, status,
	observacoes, participante_id, used_in_acerto_id, created_at, updated_at
	FROM despesas_pendentes`

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

func scanExpense(scanner interface{ Scan(...any) error }) (models.PendingExpense, error) {
	var e models.PendingExpense
	err := scanner.Scan(&e.ID, &e.Description, &e.Value, &e.DueDate, &e.Category, &e.Kind, &e.Status,
		&e.Notes, &e.ParticipantID, &e.UsedInAcertoID, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (s *Store) Get(ctx context.Context, id string) (models.PendingExpense, error) {
	e, err := scanExpense(s.db.QueryRowContext(ctx, selectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, apperr.NotFoundf("expense not found")
	}
	if err != nil {
		return e, apperr.Wrap(err, "loading expense")
	}
	return e, nil
}

// List returns expenses matching f, earliest due date first.
func (s *Store) List(ctx context.Context, f models.PendingExpenseFilter) ([]models.PendingExpense, error) {
	query := selectQuery
	var conditions []string
	var args []any

	if f.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, f.Status)
	}
	if f.Kind != "" {
		conditions = append(conditions, "tipo = ?")
		args = append(args, f.Kind)
	}
	if f.ParticipantID != "" {
		conditions = append(conditions, "participante_id = ?")
		args = append(args, f.ParticipantID)
	}
	if f.UsedInAcertoID != "" {
		conditions = append(conditions, "used_in_acerto_id = ?")
		args = append(args, f.UsedInAcertoID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY data_vencimento IS NULL, data_vencimento, created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(err, "listing expenses")
	}
	defer rows.Close()

	out := []models.PendingExpense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, apperr.Wrap(err, "scanning expense")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, "listing expenses")
	}
	return out, nil
}

// Create inserts a pendente expense.
func (s *Store) Create(ctx context.Context, input models.PendingExpenseInput) (models.PendingExpense, error) {
	if msg := input.Validate(); msg != "" {
		return models.PendingExpense{}, apperr.Validationf("%s", msg)
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `INSERT INTO despesas_pendentes (id, descricao, valor, data_vencimento,
		categoria, tipo, status, observacoes, participante_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Description, db.Money(*input.Value), input.DueDate, input.Category, input.Kind,
		models.ExpensePending, input.Notes, input.ParticipantID, now, now)
	if err != nil {
		return models.PendingExpense{}, apperr.Wrap(err, "inserting expense")
	}
	return s.Get(ctx, id)
}

func assignments(p models.PendingExpensePatch) ([]string, []any) {
	var cols []string
	var args []any
	text := func(col string, o models.Optional[string]) {
		if o.Set {
			cols = append(cols, col+" = ?")
			args = append(args, o.Arg())
		}
	}

	text("descricao", p.Description)
	if p.Value.Set {
		cols = append(cols, "valor = ?")
		args = append(args, db.Money(p.Value.Value))
	}
	text("data_vencimento", p.DueDate)
	text("categoria", p.Category)
	text("tipo", p.Kind)
	text("status", p.Status)
	text("observacoes", p.Notes)
	text("participante_id", p.ParticipantID)
	text("used_in_acerto_id", p.UsedInAcertoID)
	return cols, args
}

// Patch writes the fields present in p. Moving an expense to usada requires
// the settlement id in the same patch.
func (s *Store) Patch(ctx context.Context, id string, p models.PendingExpensePatch) (models.PendingExpense, error) {
	if msg := p.Validate(); msg != "" {
		return models.PendingExpense{}, apperr.Validationf("%s", msg)
	}
	cols, args := assignments(p)
	if len(cols) == 0 {
		return models.PendingExpense{}, apperr.Validationf("no fields to update")
	}
	cols = append(cols, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	err := db.InTx(ctx, s.db, func(tx *sql.Tx) error {
		var usedIn sql.NullString
		err := tx.QueryRowContext(ctx, "SELECT used_in_acerto_id FROM despesas_pendentes WHERE id = ?", id).Scan(&usedIn)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("expense not found")
		}
		if err != nil {
			return apperr.Wrap(err, "loading expense")
		}
		if err := checkRelease(ctx, tx, usedIn.String, p); err != nil {
			return err
		}
		if p.Status.Set && p.Status.Value == models.ExpenseUsed {
			exists, err := settlementExists(ctx, tx, p.UsedInAcertoID.Value)
			if err != nil {
				return err
			}
			if !exists {
				return apperr.Validationf("settlement %s does not exist", p.UsedInAcertoID.Value)
			}
		}
		if _, err := tx.ExecContext(ctx, "UPDATE despesas_pendentes SET "+strings.Join(cols, ", ")+" WHERE id = ?", args...); err != nil {
			return apperr.Wrap(err, "updating expense")
		}
		return nil
	})
	if err != nil {
		return models.PendingExpense{}, err
	}
	return s.Get(ctx, id)
}

// checkRelease rejects a status change that would detach an expense from
// the settlement that absorbed it while that settlement still exists.
func checkRelease(ctx context.Context, q db.Querier, held string, p models.PendingExpensePatch) error {
	if held == "" || !p.Status.Set {
		return nil
	}
	if p.UsedInAcertoID.Set && !p.UsedInAcertoID.Null && p.UsedInAcertoID.Value == held {
		return nil
	}
	if !p.UsedInAcertoID.Set {
		return apperr.Validationf("expense is used by settlement %s; usedInAcertoId must be cleared together with status", held)
	}
	exists, err := settlementExists(ctx, q, held)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflictf("expense is used by settlement %s; cancel the settlement first", held)
	}
	return nil
}

func settlementExists(ctx context.Context, q db.Querier, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM acertos WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(err, "checking settlement")
	}
	return true, nil
}

// Delete removes an expense no settlement has absorbed.
func (s *Store) Delete(ctx context.Context, id string) error {
	var usedIn sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT used_in_acerto_id FROM despesas_pendentes WHERE id = ?", id).Scan(&usedIn)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFoundf("expense not found")
	}
	if err != nil {
		return apperr.Wrap(err, "loading expense")
	}
	if usedIn.Valid && usedIn.String != "" {
		return apperr.Conflictf("expense is used by settlement %s; cancel the settlement first", usedIn.String)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM despesas_pendentes WHERE id = ?", id); err != nil {
		return apperr.Wrap(err, "deleting expense")
	}
	return nil
}

// CountByParticipant returns how many expenses reference the participant.
func (s *Store) CountByParticipant(ctx context.Context, participantID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM despesas_pendentes WHERE participante_id = ?", participantID).Scan(&n)
	if err != nil {
		return 0, apperr.Wrap(err, "counting participant expenses")
	}
	return n, nil
}
