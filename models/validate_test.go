package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSettlementInputValidate(t *testing.T) {
	in := SettlementInput{Title: "  "}
	assert.Equal(t, "date is required", in.Validate())

	in = SettlementInput{Date: "2024-01-01", Title: "  "}
	assert.Equal(t, "title is required", in.Validate())

	in = SettlementInput{Date: "2024-01-01", Title: " Jan "}
	assert.Empty(t, in.Validate())
	assert.Equal(t, "Jan", in.Title)
	assert.Equal(t, SettlementOpen, in.Status)
	assert.NotNil(t, in.LineIDs)
	assert.NotNil(t, in.Distributions)
	assert.NotNil(t, in.Expenses)
}

func TestSettlementPatchValidate(t *testing.T) {
	p := SettlementPatch{Title: Some("   ")}
	assert.Equal(t, "title cannot be empty", p.Validate())

	p = SettlementPatch{Status: Null[string]()}
	assert.Equal(t, "status cannot be empty", p.Validate())

	p = SettlementPatch{TotalProfit: Null[decimal.Decimal](), LineIDs: Some(IDSet{"a", "a"})}
	assert.Empty(t, p.Validate())
	assert.True(t, p.TotalProfit.Value.IsZero())
	assert.False(t, p.TotalProfit.Null)
	assert.Equal(t, IDSet{"a"}, p.LineIDs.Value)
}

func TestSalesLinePatchSettledGuard(t *testing.T) {
	p := SalesLinePatch{SettlementStatus: Some(LineSettled)}
	assert.NotEmpty(t, p.Validate())

	p = SalesLinePatch{SettlementStatus: Some(LineSettled), SettlementID: Null[string]()}
	assert.NotEmpty(t, p.Validate())

	p = SalesLinePatch{SettlementStatus: Some(LineSettled), SettlementID: Some("s1")}
	assert.Empty(t, p.Validate())

	p = SalesLinePatch{SettlementStatus: Some("Whatever")}
	assert.NotEmpty(t, p.Validate())

	p = SalesLinePatch{SettlementStatus: Null[string]()}
	assert.Empty(t, p.Validate())
}

func TestSalesLinePatchIDFollowsStatus(t *testing.T) {
	p := SalesLinePatch{SettlementID: Null[string]()}
	assert.Equal(t, "settlementId can only change together with settlementStatus", p.Validate())

	p = SalesLinePatch{SettlementID: Some("s2")}
	assert.NotEmpty(t, p.Validate())

	p = SalesLinePatch{SettlementStatus: Some(LinePending), SettlementID: Some("s1")}
	assert.Equal(t, "settlementId must be null unless settlementStatus is Settled", p.Validate())

	p = SalesLinePatch{SettlementStatus: Some(LinePending), SettlementID: Null[string]()}
	assert.Empty(t, p.Validate())

	p = SalesLinePatch{SettlementStatus: Some(LineSettled), SettlementID: Some("  s1 ")}
	assert.Empty(t, p.Validate())
	assert.Equal(t, "s1", p.SettlementID.Value)
}

func TestSalesLineInputComputesCosts(t *testing.T) {
	in := SalesLineInput{
		OrderDate:         strPtr("2024-01-10"),
		Client:            strPtr("ACME"),
		SaleValue:         decimal.NewFromInt(1000),
		CapitalFeePercent: decimal.NewFromInt(10),
		TaxFeePercent:     decimal.NewFromInt(5),
		MerchandiseCost:   decimal.NewFromInt(500),
	}
	assert.Empty(t, in.Validate())
	assert.Equal(t, PaymentPending, in.PaymentStatus)
	assert.True(t, in.CapitalFeeValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, in.TaxFeeValue.Equal(decimal.NewFromInt(50)))
	assert.True(t, in.FinalCost.Equal(decimal.NewFromInt(650)))
	assert.True(t, in.ProfitValue.Equal(decimal.NewFromInt(350)))
	assert.True(t, in.ProfitPercent.Equal(decimal.NewFromInt(35)))
}

func TestSalesLineInputKeepsExplicitFinalCost(t *testing.T) {
	in := SalesLineInput{
		OrderDate:   strPtr("2024-01-10"),
		Client:      strPtr("ACME"),
		SaleValue:   decimal.NewFromInt(1000),
		FinalCost:   decimal.NewFromInt(700),
		ProfitValue: decimal.NewFromInt(300),
	}
	assert.Empty(t, in.Validate())
	assert.True(t, in.FinalCost.Equal(decimal.NewFromInt(700)))
	assert.True(t, in.ProfitPercent.IsZero())
}

func TestPendingExpenseValidate(t *testing.T) {
	in := PendingExpenseInput{Description: "Frete"}
	assert.Equal(t, "value is required", in.Validate())

	v := decimal.NewFromInt(50)
	in = PendingExpenseInput{Description: "Frete", Value: &v}
	assert.Empty(t, in.Validate())
	assert.Equal(t, ExpenseIndividual, in.Kind)

	p := PendingExpensePatch{Status: Some(ExpenseUsed)}
	assert.NotEmpty(t, p.Validate())

	p = PendingExpensePatch{Status: Some(ExpenseUsed), UsedInAcertoID: Some("s1")}
	assert.Empty(t, p.Validate())

	p = PendingExpensePatch{Kind: Some("other")}
	assert.NotEmpty(t, p.Validate())

	p = PendingExpensePatch{UsedInAcertoID: Null[string]()}
	assert.Equal(t, "usedInAcertoId can only change together with status", p.Validate())

	p = PendingExpensePatch{Status: Some(ExpensePending), UsedInAcertoID: Some("s1")}
	assert.Equal(t, "usedInAcertoId must be null unless status is usada", p.Validate())

	p = PendingExpensePatch{Status: Some(ExpensePending), UsedInAcertoID: Null[string]()}
	assert.Empty(t, p.Validate())
}

func TestValeAndUserValidate(t *testing.T) {
	v := ValeInput{ClientID: "c1", Kind: ValeCredit, Value: decimal.Zero}
	assert.Equal(t, "value must be positive", v.Validate())

	v.Value = decimal.NewFromInt(10)
	assert.Empty(t, v.Validate())

	u := UserInput{Username: "ana", Password: "123"}
	assert.NotEmpty(t, u.Validate())

	u.Password = "secret1"
	assert.Empty(t, u.Validate())
	assert.Equal(t, RoleUser, u.Role)
}
