package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExpenseIndividual = "individual"
	ExpenseShared     = "rateio"

	ExpensePending   = "pendente"
	ExpensePaid      = "pago"
	ExpenseCancelled = "cancelado"
	ExpenseUsed      = "usada"
)

// PendingExpense is an expense awaiting settlement (despesa pendente).
type PendingExpense struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Value          decimal.Decimal `json:"value"`
	DueDate        *string         `json:"dueDate"`
	Category       *string         `json:"category"`
	Kind           string          `json:"kind"`
	Status         string          `json:"status"`
	Notes          *string         `json:"notes"`
	ParticipantID  *string         `json:"participantId"`
	UsedInAcertoID *string         `json:"usedInAcertoId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// PendingExpenseInput is used for creating pending expenses.
type PendingExpenseInput struct {
	Description   string           `json:"description"`
	Value         *decimal.Decimal `json:"value"`
	DueDate       *string          `json:"dueDate"`
	Category      *string          `json:"category"`
	Kind          string           `json:"kind"`
	Notes         *string          `json:"notes"`
	ParticipantID *string          `json:"participantId"`
}

func (e *PendingExpenseInput) Validate() string {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return "description is required"
	}
	if e.Value == nil {
		return "value is required"
	}
	if e.Value.IsNegative() {
		return "value must be non-negative"
	}
	switch e.Kind {
	case "":
		e.Kind = ExpenseIndividual
	case ExpenseIndividual, ExpenseShared:
	default:
		return "kind must be one of: individual, rateio"
	}
	return ""
}

// PendingExpensePatch is a partial update of a pending expense.
type PendingExpensePatch struct {
	Description    Optional[string]          `json:"description"`
	Value          Optional[decimal.Decimal] `json:"value"`
	DueDate        Optional[string]          `json:"dueDate"`
	Category       Optional[string]          `json:"category"`
	Kind           Optional[string]          `json:"kind"`
	Status         Optional[string]          `json:"status"`
	Notes          Optional[string]          `json:"notes"`
	ParticipantID  Optional[string]          `json:"participantId"`
	UsedInAcertoID Optional[string]          `json:"usedInAcertoId"`
}

func (p *PendingExpensePatch) Validate() string {
	if p.Description.Set {
		p.Description.Value = strings.TrimSpace(p.Description.Value)
		if p.Description.Null || p.Description.Value == "" {
			return "description cannot be empty"
		}
	}
	if p.Value.Set {
		if p.Value.Null {
			return "value cannot be empty"
		}
		if p.Value.Value.IsNegative() {
			return "value must be non-negative"
		}
	}
	if p.Kind.Set {
		if p.Kind.Null || (p.Kind.Value != ExpenseIndividual && p.Kind.Value != ExpenseShared) {
			return "kind must be one of: individual, rateio"
		}
	}
	if p.UsedInAcertoID.Set && !p.Status.Set {
		return "usedInAcertoId can only change together with status"
	}
	if p.Status.Set {
		switch {
		case p.Status.Null:
			return "status cannot be empty"
		case p.Status.Value == ExpenseUsed:
			p.UsedInAcertoID.Value = strings.TrimSpace(p.UsedInAcertoID.Value)
			if !p.UsedInAcertoID.Set || p.UsedInAcertoID.Null || p.UsedInAcertoID.Value == "" {
				return "status usada requires usedInAcertoId in the same request"
			}
		case p.Status.Value != ExpensePending && p.Status.Value != ExpensePaid && p.Status.Value != ExpenseCancelled:
			return "status must be one of: pendente, pago, cancelado, usada"
		case p.UsedInAcertoID.Set && !p.UsedInAcertoID.Null:
			return "usedInAcertoId must be null unless status is usada"
		}
	}
	return ""
}

// PendingExpenseFilter narrows List results.
type PendingExpenseFilter struct {
	Status         string
	Kind           string
	ParticipantID  string
	UsedInAcertoID string
}
