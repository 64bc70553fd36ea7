// Package saleslines stores linhas de venda and guards their settlement
// state: a line is only marked Settled together with the settlement that
// lists it, and a line held by a settlement cannot be deleted.
package saleslines

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

const selectQuery = `SELECT id, data_pedido, cliente, produto, modalidade, valor_venda,
	taxa_capital_perc, taxa_capital_valor, taxa_imposto_perc, taxa_imposto_valor,
	custo_mercadoria, custo_final, lucro_valor, lucro_perc, data_recebimento,
	pagamento, settlement_status, acerto_id, cor, created_at
	FROM linhas_venda`

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

func scanLine(scanner interface{ Scan(...any) error }) (models.SalesLine, error) {
	var l models.SalesLine
	err := scanner.Scan(&l.ID, &l.OrderDate, &l.Client, &l.Product, &l.Modality, &l.SaleValue,
		&l.CapitalFeePercent, &l.CapitalFeeValue, &l.TaxFeePercent, &l.TaxFeeValue,
		&l.MerchandiseCost, &l.FinalCost, &l.ProfitValue, &l.ProfitPercent, &l.ReceiptDate,
		&l.PaymentStatus, &l.SettlementStatus, &l.SettlementID, &l.Color, &l.CreatedAt)
	return l, err
}

func (s *Store) Get(ctx context.Context, id string) (models.SalesLine, error) {
	l, err := scanLine(s.db.QueryRowContext(ctx, selectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return l, apperr.NotFoundf("sales line not found")
	}
	if err != nil {
		return l, apperr.Wrap(err, "loading sales line")
	}
	return l, nil
}

// List returns sales lines matching f, newest order date first.
func (s *Store) List(ctx context.Context, f models.SalesLineFilter) ([]models.SalesLine, error) {
	query := selectQuery
	var conditions []string
	var args []any

	if f.Client != "" {
		conditions = append(conditions, "cliente LIKE ?")
		args = append(args, "%"+f.Client+"%")
	}
	if f.PaymentStatus != "" {
		conditions = append(conditions, "pagamento = ?")
		args = append(args, f.PaymentStatus)
	}
	if f.SettlementStatus != "" {
		conditions = append(conditions, "settlement_status = ?")
		args = append(args, f.SettlementStatus)
	}
	if f.SettlementID != "" {
		conditions = append(conditions, "acerto_id = ?")
		args = append(args, f.SettlementID)
	}
	if f.Unsettled {
		conditions = append(conditions, "(settlement_status IS NULL OR settlement_status <> ?)")
		args = append(args, models.LineSettled)
	}
	if f.From != "" {
		conditions = append(conditions, "data_pedido >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conditions = append(conditions, "data_pedido <= ?")
		args = append(args, f.To)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY data_pedido DESC, created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(err, "listing sales lines")
	}
	defer rows.Close()

	lines := []models.SalesLine{}
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, apperr.Wrap(err, "scanning sales line")
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, "listing sales lines")
	}
	return lines, nil
}

// Create inserts an unsettled sales line.
func (s *Store) Create(ctx context.Context, input models.SalesLineInput) (models.SalesLine, error) {
	if msg := input.Validate(); msg != "" {
		return models.SalesLine{}, apperr.Validationf("%s", msg)
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO linhas_venda (id, data_pedido, cliente, produto, modalidade,
		valor_venda, taxa_capital_perc, taxa_capital_valor, taxa_imposto_perc, taxa_imposto_valor,
		custo_mercadoria, custo_final, lucro_valor, lucro_perc, data_recebimento, pagamento, cor, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.OrderDate, input.Client, input.Product, input.Modality,
		db.Money(input.SaleValue), db.Money(input.CapitalFeePercent), db.Money(input.CapitalFeeValue),
		db.Money(input.TaxFeePercent), db.Money(input.TaxFeeValue),
		db.Money(input.MerchandiseCost), db.Money(input.FinalCost), db.Money(input.ProfitValue),
		db.Money(input.ProfitPercent), input.ReceiptDate, input.PaymentStatus, input.Color, time.Now().UTC())
	if err != nil {
		return models.SalesLine{}, apperr.Wrap(err, "inserting sales line")
	}
	return s.Get(ctx, id)
}

func assignments(p models.SalesLinePatch) ([]string, []any) {
	var cols []string
	var args []any
	text := func(col string, o models.Optional[string]) {
		if o.Set {
			cols = append(cols, col+" = ?")
			args = append(args, o.Arg())
		}
	}
	num := func(col string, o models.Optional[decimal.Decimal]) {
		if o.Set {
			cols = append(cols, col+" = ?")
			args = append(args, db.Money(o.Value))
		}
	}

	text("data_pedido", p.OrderDate)
	text("cliente", p.Client)
	text("produto", p.Product)
	text("modalidade", p.Modality)
	num("valor_venda", p.SaleValue)
	num("taxa_capital_perc", p.CapitalFeePercent)
	num("taxa_capital_valor", p.CapitalFeeValue)
	num("taxa_imposto_perc", p.TaxFeePercent)
	num("taxa_imposto_valor", p.TaxFeeValue)
	num("custo_mercadoria", p.MerchandiseCost)
	num("custo_final", p.FinalCost)
	num("lucro_valor", p.ProfitValue)
	num("lucro_perc", p.ProfitPercent)
	text("data_recebimento", p.ReceiptDate)
	text("pagamento", p.PaymentStatus)
	text("settlement_status", p.SettlementStatus)
	text("acerto_id", p.SettlementID)
	text("cor", p.Color)
	return cols, args
}

// Patch writes the fields present in p. Marking a line Settled requires the
// settlement id in the same patch, and that settlement must list the line.
func (s *Store) Patch(ctx context.Context, id string, p models.SalesLinePatch) (models.SalesLine, error) {
	if msg := p.Validate(); msg != "" {
		return models.SalesLine{}, apperr.Validationf("%s", msg)
	}
	cols, args := assignments(p)
	if len(cols) == 0 {
		return models.SalesLine{}, apperr.Validationf("no fields to update")
	}
	args = append(args, id)

	err := db.InTx(ctx, s.db, func(tx *sql.Tx) error {
		var current sql.NullString
		err := tx.QueryRowContext(ctx, "SELECT acerto_id FROM linhas_venda WHERE id = ?", id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("sales line not found")
		}
		if err != nil {
			return apperr.Wrap(err, "loading sales line")
		}
		if err := checkRelease(ctx, tx, current.String, p); err != nil {
			return err
		}
		if p.SettlementStatus.Set && p.SettlementStatus.Value == models.LineSettled {
			if err := checkSettlementLists(ctx, tx, p.SettlementID.Value, id); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, "UPDATE linhas_venda SET "+strings.Join(cols, ", ")+" WHERE id = ?", args...); err != nil {
			return apperr.Wrap(err, "updating sales line")
		}
		return nil
	})
	if err != nil {
		return models.SalesLine{}, err
	}
	return s.Get(ctx, id)
}

// checkRelease rejects a patch that would detach a line from the settlement
// holding it. Only a line whose settlement no longer exists can be released
// or moved; a live settlement must be cancelled instead.
func checkRelease(ctx context.Context, q db.Querier, held string, p models.SalesLinePatch) error {
	if held == "" || !p.SettlementStatus.Set {
		return nil
	}
	if !p.SettlementID.Null && p.SettlementID.Set && p.SettlementID.Value == held {
		return nil
	}
	if !p.SettlementID.Set {
		return apperr.Validationf("sales line belongs to settlement %s; settlementId must be cleared together with settlementStatus", held)
	}
	exists, err := settlementExists(ctx, q, held)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflictf("sales line belongs to settlement %s; cancel the settlement first", held)
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
		return false, apperr.Wrap(err, "loading settlement")
	}
	return true, nil
}

func checkSettlementLists(ctx context.Context, q db.Querier, settlementID, lineID string) error {
	var raw models.JSONColumn[models.IDSet]
	err := q.QueryRowContext(ctx, "SELECT linha_ids FROM acertos WHERE id = ?", settlementID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Validationf("settlement %s does not exist", settlementID)
	}
	if err != nil {
		return apperr.Wrap(err, "loading settlement lines")
	}
	if !raw.V.Contains(lineID) {
		return apperr.Validationf("settlement %s does not list this sales line", settlementID)
	}
	return nil
}

// Delete removes a sales line that no settlement holds.
func (s *Store) Delete(ctx context.Context, id string) error {
	var settlementID sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT acerto_id FROM linhas_venda WHERE id = ?", id).Scan(&settlementID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFoundf("sales line not found")
	}
	if err != nil {
		return apperr.Wrap(err, "loading sales line")
	}
	if settlementID.Valid && settlementID.String != "" {
		return apperr.Conflictf("sales line belongs to settlement %s; cancel the settlement first", settlementID.String)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM linhas_venda WHERE id = ?", id); err != nil {
		return apperr.Wrap(err, "deleting sales line")
	}
	slog.Debug("sales line deleted", "id", id)
	return nil
}

// CountByClient returns how many sales lines reference the client name.
func (s *Store) CountByClient(ctx context.Context, name string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM linhas_venda WHERE cliente = ?", name).Scan(&n); err != nil {
		return 0, apperr.Wrap(err, "counting client sales lines")
	}
	return n, nil
}
