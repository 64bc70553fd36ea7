package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Emerchan23/sisvendas1-sub004/models"
	"github.com/Emerchan23/sisvendas1-sub004/saleslines"
	"github.com/Emerchan23/sisvendas1-sub004/settlement"
)

type dashboardData struct {
	TotalClients      int `json:"totalClients"`
	TotalParticipants int `json:"totalParticipants"`
	TotalSalesLines   int `json:"totalSalesLines"`
	TotalSettlements  int `json:"totalSettlements"`

	UnsettledLines   int             `json:"unsettledLines"`
	UnsettledProfit  decimal.Decimal `json:"unsettledProfit"`
	UnpaidSales      decimal.Decimal `json:"unpaidSales"`
	PendingExpenses  decimal.Decimal `json:"pendingExpenses"`
	OutstandingVales decimal.Decimal `json:"outstandingVales"`

	Settlements      models.SettlementSummary `json:"settlements"`
	RecentSalesLines []models.SalesLine       `json:"recentSalesLines"`
}

// DashboardHandler serves the summary screen.
type DashboardHandler struct {
	lines  *saleslines.Store
	engine *settlement.Engine
}

func NewDashboardHandler(lines *saleslines.Store, engine *settlement.Engine) *DashboardHandler {
	return &DashboardHandler{lines: lines, engine: engine}
}

// Get retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get record counts, unsettled profit, open expenses, settlement totals, and the latest sales lines.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var d dashboardData

	err := DB.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM clientes),
		(SELECT COUNT(*) FROM participantes),
		(SELECT COUNT(*) FROM linhas_venda),
		(SELECT COUNT(*) FROM acertos),
		(SELECT COUNT(*) FROM linhas_venda WHERE settlement_status IS NULL OR settlement_status <> 'Settled'),
		COALESCE((SELECT SUM(lucro_valor) FROM linhas_venda WHERE settlement_status IS NULL OR settlement_status <> 'Settled'), 0),
		COALESCE((SELECT SUM(valor_venda) FROM linhas_venda WHERE pagamento = 'Pendente'), 0),
		COALESCE((SELECT SUM(valor) FROM despesas_pendentes WHERE status = 'pendente'), 0),
		COALESCE((SELECT SUM(CASE WHEN tipo = 'credito' THEN valor ELSE -valor END) FROM vales), 0)`).Scan(
		&d.TotalClients, &d.TotalParticipants, &d.TotalSalesLines, &d.TotalSettlements,
		&d.UnsettledLines, &d.UnsettledProfit, &d.UnpaidSales, &d.PendingExpenses, &d.OutstandingVales)
	if err != nil {
		internalError(w, r, err)
		return
	}

	if d.Settlements, err = h.engine.Summary(ctx); err != nil {
		writeAppError(w, r, err)
		return
	}

	if d.RecentSalesLines, err = h.lines.List(ctx, models.SalesLineFilter{Limit: 5}); err != nil {
		writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, d)
}
