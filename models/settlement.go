package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SettlementOpen   = "aberto"
	SettlementClosed = "fechado"
)

// Settlement represents an acerto: a closing record that freezes the totals,
// distributions and expenses computed for a batch of sales lines.
type Settlement struct {
	ID                      string            `json:"id"`
	Date                    string            `json:"date"`
	Title                   string            `json:"title"`
	Notes                   *string           `json:"notes"`
	LineIDs                 IDSet             `json:"lineIds"`
	TotalProfit             decimal.Decimal   `json:"totalProfit"`
	TotalSharedExpenses     decimal.Decimal   `json:"totalSharedExpenses"`
	TotalIndividualExpenses decimal.Decimal   `json:"totalIndividualExpenses"`
	TotalNetDistributable   decimal.Decimal   `json:"totalNetDistributable"`
	Distributions           []Record          `json:"distributions" swaggertype:"array,object"`
	Expenses                []Record          `json:"expenses" swaggertype:"array,object"`
	LastBankReceipt         Record            `json:"lastBankReceipt" swaggertype:"object"`
	Status                  string            `json:"status"`
	CreatedAt               time.Time         `json:"createdAt"`
	UpdatedAt               time.Time         `json:"updatedAt"`
}

// SettlementInput is used for creating settlements.
type SettlementInput struct {
	Date                    string            `json:"date"`
	Title                   string            `json:"title"`
	Notes                   *string           `json:"notes"`
	LineIDs                 IDSet             `json:"lineIds"`
	TotalProfit             decimal.Decimal   `json:"totalProfit"`
	TotalSharedExpenses     decimal.Decimal   `json:"totalSharedExpenses"`
	TotalIndividualExpenses decimal.Decimal   `json:"totalIndividualExpenses"`
	TotalNetDistributable   decimal.Decimal   `json:"totalNetDistributable"`
	Distributions           []Record          `json:"distributions" swaggertype:"array,object"`
	Expenses                []Record          `json:"expenses" swaggertype:"array,object"`
	LastBankReceipt         Record            `json:"lastBankReceipt" swaggertype:"object"`
	Status                  string            `json:"status"`
}

// Validate checks required fields and fills defaults.
func (s *SettlementInput) Validate() string {
	s.Date = strings.TrimSpace(s.Date)
	s.Title = strings.TrimSpace(s.Title)
	if s.Date == "" {
		return "date is required"
	}
	if s.Title == "" {
		return "title is required"
	}
	s.Status = strings.TrimSpace(s.Status)
	if s.Status == "" {
		s.Status = SettlementOpen
	}
	s.LineIDs = s.LineIDs.Normalize()
	if s.Distributions == nil {
		s.Distributions = []Record{}
	}
	if s.Expenses == nil {
		s.Expenses = []Record{}
	}
	if !allObjects(s.Distributions) {
		return "distributions must be a list of objects"
	}
	if !allObjects(s.Expenses) {
		return "expenses must be a list of objects"
	}
	if s.LastBankReceipt != nil && !s.LastBankReceipt.IsObject() {
		return "lastBankReceipt must be an object"
	}
	return ""
}

// SettlementPatch is a partial update. Only fields present in the request
// body are written.
type SettlementPatch struct {
	Date                    Optional[string]            `json:"date"`
	Title                   Optional[string]            `json:"title"`
	Notes                   Optional[string]            `json:"notes"`
	LineIDs                 Optional[IDSet]             `json:"lineIds"`
	TotalProfit             Optional[decimal.Decimal]   `json:"totalProfit"`
	TotalSharedExpenses     Optional[decimal.Decimal]   `json:"totalSharedExpenses"`
	TotalIndividualExpenses Optional[decimal.Decimal]   `json:"totalIndividualExpenses"`
	TotalNetDistributable   Optional[decimal.Decimal]   `json:"totalNetDistributable"`
	Distributions           Optional[[]Record]          `json:"distributions"`
	Expenses                Optional[[]Record]          `json:"expenses"`
	LastBankReceipt         Optional[Record]            `json:"lastBankReceipt"`
	Status                  Optional[string]            `json:"status"`
}

// Validate rejects values that would break a settlement's required fields.
func (p *SettlementPatch) Validate() string {
	if p.Date.Set {
		p.Date.Value = strings.TrimSpace(p.Date.Value)
		if p.Date.Null || p.Date.Value == "" {
			return "date cannot be empty"
		}
	}
	if p.Title.Set {
		p.Title.Value = strings.TrimSpace(p.Title.Value)
		if p.Title.Null || p.Title.Value == "" {
			return "title cannot be empty"
		}
	}
	if p.Status.Set {
		p.Status.Value = strings.TrimSpace(p.Status.Value)
		if p.Status.Null || p.Status.Value == "" {
			return "status cannot be empty"
		}
	}
	for _, total := range []*Optional[decimal.Decimal]{&p.TotalProfit, &p.TotalSharedExpenses, &p.TotalIndividualExpenses, &p.TotalNetDistributable} {
		if total.Set && total.Null {
			*total = Some(decimal.Zero)
		}
	}
	if p.LineIDs.Set {
		p.LineIDs = Some(p.LineIDs.Value.Normalize())
	}
	if p.Distributions.Set {
		if p.Distributions.Value == nil {
			p.Distributions = Some([]Record{})
		}
		if !allObjects(p.Distributions.Value) {
			return "distributions must be a list of objects"
		}
	}
	if p.Expenses.Set {
		if p.Expenses.Value == nil {
			p.Expenses = Some([]Record{})
		}
		if !allObjects(p.Expenses.Value) {
			return "expenses must be a list of objects"
		}
	}
	if p.LastBankReceipt.Set && !p.LastBankReceipt.Null && !p.LastBankReceipt.Value.IsObject() {
		return "lastBankReceipt must be an object"
	}
	return ""
}

// CancelResult is returned by a successful settlement cancellation.
type CancelResult struct {
	OK               bool   `json:"ok"`
	Message          string `json:"message"`
	VendasRetornadas int    `json:"vendasRetornadas"`
}

// SettlementSummary aggregates settlements for the dashboard.
type SettlementSummary struct {
	Count                 int             `json:"count"`
	Open                  int             `json:"open"`
	TotalProfit           decimal.Decimal `json:"totalProfit"`
	TotalNetDistributable decimal.Decimal `json:"totalNetDistributable"`
	LastDate              *string         `json:"lastDate"`
}
