package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ValeCredit = "credito"
	ValeDebit  = "debito"
)

// Vale is one entry of a client's credit ledger.
type Vale struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Kind        string          `json:"kind"` // credito, debito
	Value       decimal.Decimal `json:"value"`
	Date        *string         `json:"date"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	// Computed fields
	ClientName *string `json:"clientName,omitempty"`
}

// ValeInput is used for creating vales.
type ValeInput struct {
	ClientID    string          `json:"clientId"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	Date        *string         `json:"date"`
	Description *string         `json:"description"`
}

func (v *ValeInput) Validate() string {
	v.ClientID = strings.TrimSpace(v.ClientID)
	if v.ClientID == "" {
		return "clientId is required"
	}
	if !v.Value.IsPositive() {
		return "value must be positive"
	}
	switch v.Kind {
	case ValeCredit, ValeDebit:
	default:
		return "kind must be one of: credito, debito"
	}
	return ""
}

// ValeStatement is a client's ledger with its running balance.
type ValeStatement struct {
	ClientID string          `json:"clientId"`
	Credits  decimal.Decimal `json:"credits"`
	Debits   decimal.Decimal `json:"debits"`
	Balance  decimal.Decimal `json:"balance"`
	Entries  []Vale          `json:"entries"`
}
