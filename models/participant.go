package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Participant is a partner that receives a share of each settlement.
type Participant struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Percent         decimal.Decimal `json:"percent"`
	Active          bool            `json:"active"`
	PendingExpenses decimal.Decimal `json:"pendingExpenses"` // Computed: individual expenses still pendente
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ParticipantInput is used for creating/updating participants.
type ParticipantInput struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
	Active  *bool           `json:"active"`
}

func (p *ParticipantInput) Validate() string {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return "name is required"
	}
	if p.Percent.IsNegative() || p.Percent.GreaterThan(hundred) {
		return "percent must be between 0 and 100"
	}
	if p.Active == nil {
		active := true
		p.Active = &active
	}
	return ""
}
