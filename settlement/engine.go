// Package settlement implements the acerto lifecycle: creation, reads,
// partial updates, plain deletion and the transactional cancellation that
// returns a settlement's sales lines and expenses to pending.
package settlement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

const selectQuery = `SELECT id, data, titulo, observacoes, linha_ids,
	total_lucro, total_despesas_rateio, total_despesas_individuais, total_liquido_distribuivel,
	distribuicoes, despesas, ultimo_recebimento_banco, status, created_at, updated_at
	FROM acertos`

// Engine owns every write to the acertos table and the reversal of the
// sales line and expense state a settlement holds.
type Engine struct {
	db  *sql.DB
	now func() time.Time
}

func NewEngine(database *sql.DB) *Engine {
	return &Engine{db: database, now: func() time.Time { return time.Now().UTC() }}
}

func scanSettlement(scanner interface{ Scan(...any) error }) (models.Settlement, error) {
	var (
		s             models.Settlement
		lineIDs       models.JSONColumn[models.IDSet]
		distributions models.JSONColumn[[]models.Record]
		expenses      models.JSONColumn[[]models.Record]
		receipt       models.JSONColumn[models.Record]
	)
	err := scanner.Scan(&s.ID, &s.Date, &s.Title, &s.Notes, &lineIDs,
		&s.TotalProfit, &s.TotalSharedExpenses, &s.TotalIndividualExpenses, &s.TotalNetDistributable,
		&distributions, &expenses, &receipt, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return s, err
	}

	s.LineIDs = lineIDs.V.Normalize()
	s.Distributions = distributions.V
	if s.Distributions == nil {
		s.Distributions = []models.Record{}
	}
	s.Expenses = expenses.V
	if s.Expenses == nil {
		s.Expenses = []models.Record{}
	}
	if receipt.V.IsObject() {
		s.LastBankReceipt = receipt.V
	}
	return s, nil
}

func get(ctx context.Context, q db.Querier, id string) (models.Settlement, error) {
	s, err := scanSettlement(q.QueryRowContext(ctx, selectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, apperr.NotFoundf("settlement not found")
	}
	if err != nil {
		return s, apperr.Wrap(err, "loading settlement")
	}
	return s, nil
}

// Create persists a new settlement and returns its id. Referenced sales
// lines and expenses are left untouched; marking them Settled/usada is done
// by the caller through their own endpoints.
func (e *Engine) Create(ctx context.Context, input models.SettlementInput) (string, error) {
	if msg := input.Validate(); msg != "" {
		return "", apperr.Validationf("%s", msg)
	}

	id := uuid.NewString()
	now := e.now()
	_, err := e.db.ExecContext(ctx, `INSERT INTO acertos (id, data, titulo, observacoes, linha_ids,
		total_lucro, total_despesas_rateio, total_despesas_individuais, total_liquido_distribuivel,
		distribuicoes, despesas, ultimo_recebimento_banco, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Date, input.Title, input.Notes, models.JSON(input.LineIDs),
		db.Money(input.TotalProfit), db.Money(input.TotalSharedExpenses),
		db.Money(input.TotalIndividualExpenses), db.Money(input.TotalNetDistributable),
		models.JSON(input.Distributions), models.JSON(input.Expenses), models.JSON(input.LastBankReceipt),
		input.Status, now, now)
	if err != nil {
		return "", apperr.Wrap(err, "inserting settlement")
	}

	slog.Info("settlement created", "id", id, "lines", len(input.LineIDs), "status", input.Status)
	return id, nil
}

// Get returns a single settlement.
func (e *Engine) Get(ctx context.Context, id string) (models.Settlement, error) {
	return get(ctx, e.db, id)
}

// List returns every settlement, newest date first.
func (e *Engine) List(ctx context.Context) ([]models.Settlement, error) {
	rows, err := e.db.QueryContext(ctx, selectQuery+" ORDER BY data DESC, created_at DESC")
	if err != nil {
		return nil, apperr.Wrap(err, "listing settlements")
	}
	defer rows.Close()

	settlements := []models.Settlement{}
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, apperr.Wrap(err, "scanning settlement")
		}
		settlements = append(settlements, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, "listing settlements")
	}
	return settlements, nil
}

// assignments maps the fields present in p to column assignments.
func assignments(p models.SettlementPatch) ([]string, []any) {
	var cols []string
	var args []any
	set := func(col string, v any) {
		cols = append(cols, col+" = ?")
		args = append(args, v)
	}

	if p.Date.Set {
		set("data", p.Date.Value)
	}
	if p.Title.Set {
		set("titulo", p.Title.Value)
	}
	if p.Notes.Set {
		set("observacoes", p.Notes.Arg())
	}
	if p.LineIDs.Set {
		set("linha_ids", models.JSON(p.LineIDs.Value))
	}
	if p.TotalProfit.Set {
		set("total_lucro", db.Money(p.TotalProfit.Value))
	}
	if p.TotalSharedExpenses.Set {
		set("total_despesas_rateio", db.Money(p.TotalSharedExpenses.Value))
	}
	if p.TotalIndividualExpenses.Set {
		set("total_despesas_individuais", db.Money(p.TotalIndividualExpenses.Value))
	}
	if p.TotalNetDistributable.Set {
		set("total_liquido_distribuivel", db.Money(p.TotalNetDistributable.Value))
	}
	if p.Distributions.Set {
		set("distribuicoes", models.JSON(p.Distributions.Value))
	}
	if p.Expenses.Set {
		set("despesas", models.JSON(p.Expenses.Value))
	}
	if p.LastBankReceipt.Set {
		set("ultimo_recebimento_banco", models.JSON(p.LastBankReceipt.Value))
	}
	if p.Status.Set {
		set("status", p.Status.Value)
	}
	return cols, args
}

// Update writes only the fields present in p and stamps updated_at.
func (e *Engine) Update(ctx context.Context, id string, p models.SettlementPatch) (models.Settlement, error) {
	if msg := p.Validate(); msg != "" {
		return models.Settlement{}, apperr.Validationf("%s", msg)
	}
	cols, args := assignments(p)
	if len(cols) == 0 {
		return models.Settlement{}, apperr.Validationf("no fields to update")
	}
	cols = append(cols, "updated_at = ?")
	args = append(args, e.now(), id)

	res, err := e.db.ExecContext(ctx, "UPDATE acertos SET "+strings.Join(cols, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Settlement{}, apperr.Wrap(err, "updating settlement")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Settlement{}, apperr.NotFoundf("settlement not found")
	}
	return get(ctx, e.db, id)
}

// Cancel reverses a settlement and deletes it in one transaction: its sales
// lines go back to Pendente, the expenses pointing at it go back to
// pendente, and the row is removed. Nothing is written if any step fails.
func (e *Engine) Cancel(ctx context.Context, id string) (models.CancelResult, error) {
	var result models.CancelResult
	err := db.InTx(ctx, e.db, func(tx *sql.Tx) error {
		s, err := get(ctx, tx, id)
		if err != nil {
			return err
		}

		lineIDs := s.LineIDs.Normalize()
		if len(lineIDs) > 0 {
			args := make([]any, 0, len(lineIDs)+1)
			args = append(args, models.LinePending)
			for _, lid := range lineIDs {
				args = append(args, lid)
			}
			query := "UPDATE linhas_venda SET settlement_status = ?, acerto_id = NULL WHERE id IN (" + db.Placeholders(len(lineIDs)) + ")"
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("reverting sales lines: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE despesas_pendentes SET status = ?, used_in_acerto_id = NULL, updated_at = ? WHERE used_in_acerto_id = ?",
			models.ExpensePending, e.now(), id); err != nil {
			return fmt.Errorf("reverting expenses: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM acertos WHERE id = ?", id); err != nil {
			return fmt.Errorf("deleting settlement: %w", err)
		}

		result = models.CancelResult{
			OK:               true,
			Message:          fmt.Sprintf("Acerto cancelado. %d venda(s) retornada(s) para pendente.", len(lineIDs)),
			VendasRetornadas: len(lineIDs),
		}
		return nil
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return models.CancelResult{}, err
		}
		return models.CancelResult{}, apperr.Wrap(err, "cancelling settlement")
	}

	slog.Info("settlement cancelled", "id", id, "lines", result.VendasRetornadas)
	return result, nil
}

// Delete removes a settlement without touching its sales lines or
// expenses. Use Cancel to reverse them.
func (e *Engine) Delete(ctx context.Context, id string) error {
	res, err := e.db.ExecContext(ctx, "DELETE FROM acertos WHERE id = ?", id)
	if err != nil {
		return apperr.Wrap(err, "deleting settlement")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("settlement not found")
	}
	slog.Warn("settlement deleted without reversal", "id", id)
	return nil
}

// Summary aggregates settlement counts and totals.
func (e *Engine) Summary(ctx context.Context) (models.SettlementSummary, error) {
	var (
		s           models.SettlementSummary
		profit, net float64
		lastDate    sql.NullString
	)
	err := e.db.QueryRowContext(ctx, `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(total_lucro), 0), COALESCE(SUM(total_liquido_distribuivel), 0), MAX(data)
		FROM acertos`, models.SettlementOpen).Scan(&s.Count, &s.Open, &profit, &net, &lastDate)
	if err != nil {
		return s, apperr.Wrap(err, "summarizing settlements")
	}
	s.TotalProfit = decimal.NewFromFloat(profit)
	s.TotalNetDistributable = decimal.NewFromFloat(net)
	if lastDate.Valid {
		s.LastDate = &lastDate.String
	}
	return s, nil
}
