package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payment and settlement states of a sales line.
const (
	PaymentPending = "Pendente"
	PaymentPaid    = "Pago"

	LinePending = "Pendente"
	LineSettled = "Settled"
)

var hundred = decimal.NewFromInt(100)

// SalesLine is one line-item sale (linha de venda).
type SalesLine struct {
	ID                string          `json:"id"`
	OrderDate         *string         `json:"orderDate"`
	Client            *string         `json:"client"`
	Product           *string         `json:"product"`
	Modality          *string         `json:"modality"`
	SaleValue         decimal.Decimal `json:"saleValue"`
	CapitalFeePercent decimal.Decimal `json:"capitalFeePercent"`
	CapitalFeeValue   decimal.Decimal `json:"capitalFeeValue"`
	TaxFeePercent     decimal.Decimal `json:"taxFeePercent"`
	TaxFeeValue       decimal.Decimal `json:"taxFeeValue"`
	MerchandiseCost   decimal.Decimal `json:"merchandiseCost"`
	FinalCost         decimal.Decimal `json:"finalCost"`
	ProfitValue       decimal.Decimal `json:"profitValue"`
	ProfitPercent     decimal.Decimal `json:"profitPercent"`
	ReceiptDate       *string         `json:"receiptDate"`
	PaymentStatus     string          `json:"paymentStatus"`
	SettlementStatus  *string         `json:"settlementStatus"`
	SettlementID      *string         `json:"settlementId"`
	Color             *string         `json:"color"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// SalesLineInput is used for creating sales lines.
type SalesLineInput struct {
	OrderDate         *string         `json:"orderDate"`
	Client            *string         `json:"client"`
	Product           *string         `json:"product"`
	Modality          *string         `json:"modality"`
	SaleValue         decimal.Decimal `json:"saleValue"`
	CapitalFeePercent decimal.Decimal `json:"capitalFeePercent"`
	CapitalFeeValue   decimal.Decimal `json:"capitalFeeValue"`
	TaxFeePercent     decimal.Decimal `json:"taxFeePercent"`
	TaxFeeValue       decimal.Decimal `json:"taxFeeValue"`
	MerchandiseCost   decimal.Decimal `json:"merchandiseCost"`
	FinalCost         decimal.Decimal `json:"finalCost"`
	ProfitValue       decimal.Decimal `json:"profitValue"`
	ProfitPercent     decimal.Decimal `json:"profitPercent"`
	ReceiptDate       *string         `json:"receiptDate"`
	PaymentStatus     string          `json:"paymentStatus"`
	Color             *string         `json:"color"`
}

func (l *SalesLineInput) Validate() string {
	if l.OrderDate == nil || strings.TrimSpace(*l.OrderDate) == "" {
		return "orderDate is required"
	}
	if l.Client == nil || strings.TrimSpace(*l.Client) == "" {
		return "client is required"
	}
	if l.SaleValue.IsNegative() {
		return "saleValue must be non-negative"
	}
	switch l.PaymentStatus {
	case "":
		l.PaymentStatus = PaymentPending
	case PaymentPending, PaymentPaid:
	default:
		return "paymentStatus must be one of: Pendente, Pago"
	}
	l.ComputeCosts()
	return ""
}

// ComputeCosts derives fee values, final cost and profit from the sale value
// and percentages when the caller did not send a final cost.
func (l *SalesLineInput) ComputeCosts() {
	if !l.FinalCost.IsZero() {
		return
	}
	if l.CapitalFeeValue.IsZero() {
		l.CapitalFeeValue = l.SaleValue.Mul(l.CapitalFeePercent).Div(hundred).Round(2)
	}
	if l.TaxFeeValue.IsZero() {
		l.TaxFeeValue = l.SaleValue.Mul(l.TaxFeePercent).Div(hundred).Round(2)
	}
	l.FinalCost = l.MerchandiseCost.Add(l.CapitalFeeValue).Add(l.TaxFeeValue)
	if l.ProfitValue.IsZero() {
		l.ProfitValue = l.SaleValue.Sub(l.FinalCost)
	}
	if l.ProfitPercent.IsZero() && !l.SaleValue.IsZero() {
		l.ProfitPercent = l.ProfitValue.Div(l.SaleValue).Mul(hundred).Round(2)
	}
}

// SalesLinePatch is a generic field patch of a sales line.
type SalesLinePatch struct {
	OrderDate         Optional[string]          `json:"orderDate"`
	Client            Optional[string]          `json:"client"`
	Product           Optional[string]          `json:"product"`
	Modality          Optional[string]          `json:"modality"`
	SaleValue         Optional[decimal.Decimal] `json:"saleValue"`
	CapitalFeePercent Optional[decimal.Decimal] `json:"capitalFeePercent"`
	CapitalFeeValue   Optional[decimal.Decimal] `json:"capitalFeeValue"`
	TaxFeePercent     Optional[decimal.Decimal] `json:"taxFeePercent"`
	TaxFeeValue       Optional[decimal.Decimal] `json:"taxFeeValue"`
	MerchandiseCost   Optional[decimal.Decimal] `json:"merchandiseCost"`
	FinalCost         Optional[decimal.Decimal] `json:"finalCost"`
	ProfitValue       Optional[decimal.Decimal] `json:"profitValue"`
	ProfitPercent     Optional[decimal.Decimal] `json:"profitPercent"`
	ReceiptDate       Optional[string]          `json:"receiptDate"`
	PaymentStatus     Optional[string]          `json:"paymentStatus"`
	SettlementStatus  Optional[string]          `json:"settlementStatus"`
	SettlementID      Optional[string]          `json:"settlementId"`
	Color             Optional[string]          `json:"color"`
}

// Validate enforces that settlementStatus and settlementId only change
// together: Settled carries the settlement id, anything else clears it.
func (p *SalesLinePatch) Validate() string {
	if p.SettlementID.Set && !p.SettlementStatus.Set {
		return "settlementId can only change together with settlementStatus"
	}
	if p.SettlementStatus.Set {
		switch {
		case !p.SettlementStatus.Null && p.SettlementStatus.Value == LineSettled:
			p.SettlementID.Value = strings.TrimSpace(p.SettlementID.Value)
			if !p.SettlementID.Set || p.SettlementID.Null || p.SettlementID.Value == "" {
				return "settlementStatus Settled requires settlementId in the same request"
			}
		case !p.SettlementStatus.Null && p.SettlementStatus.Value != LinePending:
			return "settlementStatus must be one of: Pendente, Settled"
		case p.SettlementID.Set && !p.SettlementID.Null:
			return "settlementId must be null unless settlementStatus is Settled"
		}
	}
	if p.PaymentStatus.Set {
		switch {
		case p.PaymentStatus.Null:
			return "paymentStatus cannot be empty"
		case p.PaymentStatus.Value != PaymentPending && p.PaymentStatus.Value != PaymentPaid:
			return "paymentStatus must be one of: Pendente, Pago"
		}
	}
	if p.Client.Set && (p.Client.Null || strings.TrimSpace(p.Client.Value) == "") {
		return "client cannot be empty"
	}
	for _, v := range []*Optional[decimal.Decimal]{
		&p.SaleValue, &p.CapitalFeePercent, &p.CapitalFeeValue, &p.TaxFeePercent, &p.TaxFeeValue,
		&p.MerchandiseCost, &p.FinalCost, &p.ProfitValue, &p.ProfitPercent,
	} {
		if v.Set && v.Null {
			*v = Some(decimal.Zero)
		}
	}
	return ""
}

// SalesLineFilter narrows List results.
type SalesLineFilter struct {
	Client           string
	PaymentStatus    string
	SettlementStatus string
	SettlementID     string
	Unsettled        bool
	From, To         string

	// Limit caps the number of rows when positive.
	Limit int
}
