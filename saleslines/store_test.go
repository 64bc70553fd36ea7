package saleslines_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/db/dbtest"
	"github.com/Emerchan23/sisvendas1-sub004/models"
	"github.com/Emerchan23/sisvendas1-sub004/saleslines"
	"github.com/Emerchan23/sisvendas1-sub004/settlement"
)

func ptr(s string) *string { return &s }

func newLine(t *testing.T, store *saleslines.Store, client, date string) models.SalesLine {
	t.Helper()
	l, err := store.Create(context.Background(), models.SalesLineInput{
		OrderDate:       ptr(date),
		Client:          ptr(client),
		Product:         ptr("Cadeira"),
		SaleValue:       decimal.NewFromInt(1000),
		MerchandiseCost: decimal.NewFromInt(600),
	})
	require.NoError(t, err)
	return l
}

func TestCreateAndGet(t *testing.T) {
	store := saleslines.NewStore(dbtest.New(t))
	l := newLine(t, store, "ACME", "2024-01-10")

	got, err := store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME", *got.Client)
	assert.Equal(t, models.PaymentPending, got.PaymentStatus)
	assert.Nil(t, got.SettlementStatus)
	assert.Nil(t, got.SettlementID)
	assert.True(t, got.FinalCost.Equal(decimal.NewFromInt(600)))
	assert.True(t, got.ProfitValue.Equal(decimal.NewFromInt(400)))

	_, err = store.Get(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateValidation(t *testing.T) {
	store := saleslines.NewStore(dbtest.New(t))
	_, err := store.Create(context.Background(), models.SalesLineInput{Client: ptr("ACME")})
	assert.True(t, apperr.IsValidation(err))
}

func TestListFilters(t *testing.T) {
	database := dbtest.New(t)
	store := saleslines.NewStore(database)
	ctx := context.Background()

	a := newLine(t, store, "ACME", "2024-01-10")
	newLine(t, store, "Beta", "2024-02-10")
	newLine(t, store, "ACME", "2024-03-10")
	_, err := database.Exec("UPDATE linhas_venda SET settlement_status = ?, acerto_id = 's1' WHERE id = ?", models.LineSettled, a.ID)
	require.NoError(t, err)

	all, err := store.List(ctx, models.SalesLineFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-03-10", *all[0].OrderDate)

	acme, err := store.List(ctx, models.SalesLineFilter{Client: "ACME"})
	require.NoError(t, err)
	assert.Len(t, acme, 2)

	open, err := store.List(ctx, models.SalesLineFilter{Unsettled: true})
	require.NoError(t, err)
	assert.Len(t, open, 2)

	held, err := store.List(ctx, models.SalesLineFilter{SettlementID: "s1"})
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, a.ID, held[0].ID)

	ranged, err := store.List(ctx, models.SalesLineFilter{From: "2024-02-01", To: "2024-02-28"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "Beta", *ranged[0].Client)
}

func TestPatchRejectsManualSettled(t *testing.T) {
	store := saleslines.NewStore(dbtest.New(t))
	ctx := context.Background()
	l := newLine(t, store, "ACME", "2024-01-10")

	var patch models.SalesLinePatch
	require.NoError(t, json.Unmarshal([]byte(`{"settlementStatus":"Settled","product":"Mesa"}`), &patch))
	_, err := store.Patch(ctx, l.ID, patch)
	assert.True(t, apperr.IsValidation(err))

	got, err := store.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SettlementStatus)
	assert.Equal(t, "Cadeira", *got.Product)
}

func TestPatchSettledRequiresListingSettlement(t *testing.T) {
	database := dbtest.New(t)
	store := saleslines.NewStore(database)
	engine := settlement.NewEngine(database)
	ctx := context.Background()

	l := newLine(t, store, "ACME", "2024-01-10")
	other := newLine(t, store, "ACME", "2024-01-11")
	sid, err := engine.Create(ctx, models.SettlementInput{Date: "2024-01-31", Title: "Jan", LineIDs: models.IDSet{l.ID}})
	require.NoError(t, err)

	_, err = store.Patch(ctx, l.ID, models.SalesLinePatch{
		SettlementStatus: models.Some(models.LineSettled), SettlementID: models.Some("missing"),
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = store.Patch(ctx, other.ID, models.SalesLinePatch{
		SettlementStatus: models.Some(models.LineSettled), SettlementID: models.Some(sid),
	})
	assert.True(t, apperr.IsValidation(err))

	got, err := store.Patch(ctx, l.ID, models.SalesLinePatch{
		SettlementStatus: models.Some(models.LineSettled), SettlementID: models.Some(sid),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LineSettled, *got.SettlementStatus)
	assert.Equal(t, sid, *got.SettlementID)
}

func TestPatchPartialAndEmpty(t *testing.T) {
	store := saleslines.NewStore(dbtest.New(t))
	ctx := context.Background()
	l := newLine(t, store, "ACME", "2024-01-10")

	var patch models.SalesLinePatch
	require.NoError(t, json.Unmarshal([]byte(`{"paymentStatus":"Pago","color":null,"saleValue":1200}`), &patch))
	got, err := store.Patch(ctx, l.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Nil(t, got.Color)
	assert.True(t, got.SaleValue.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "Cadeira", *got.Product)

	_, err = store.Patch(ctx, l.ID, models.SalesLinePatch{})
	assert.True(t, apperr.IsValidation(err))

	_, err = store.Patch(ctx, "missing", models.SalesLinePatch{Product: models.Some("x")})
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteBlockedBySettlement(t *testing.T) {
	database := dbtest.New(t)
	store := saleslines.NewStore(database)
	ctx := context.Background()

	held := newLine(t, store, "ACME", "2024-01-10")
	free := newLine(t, store, "ACME", "2024-01-11")
	_, err := database.Exec("UPDATE linhas_venda SET settlement_status = ?, acerto_id = 's1' WHERE id = ?", models.LineSettled, held.ID)
	require.NoError(t, err)

	err = store.Delete(ctx, held.ID)
	assert.True(t, apperr.IsConflict(err))
	_, err = store.Get(ctx, held.ID)
	assert.NoError(t, err)

	require.NoError(t, store.Delete(ctx, free.ID))
	_, err = store.Get(ctx, free.ID)
	assert.True(t, apperr.IsNotFound(err))

	assert.True(t, apperr.IsNotFound(store.Delete(ctx, "missing")))
}

func TestDeleteAllowedAfterCancel(t *testing.T) {
	database := dbtest.New(t)
	store := saleslines.NewStore(database)
	engine := settlement.NewEngine(database)
	ctx := context.Background()

	l := newLine(t, store, "ACME", "2024-01-10")
	sid, err := engine.Create(ctx, models.SettlementInput{Date: "2024-01-31", Title: "Jan", LineIDs: models.IDSet{l.ID}})
	require.NoError(t, err)
	_, err = store.Patch(ctx, l.ID, models.SalesLinePatch{
		SettlementStatus: models.Some(models.LineSettled), SettlementID: models.Some(sid),
	})
	require.NoError(t, err)
	assert.True(t, apperr.IsConflict(store.Delete(ctx, l.ID)))

	_, err = engine.Cancel(ctx, sid)
	require.NoError(t, err)
	assert.NoError(t, store.Delete(ctx, l.ID))
}

func settle(t *testing.T, store *saleslines.Store, engine *settlement.Engine, ids ...string) string {
	t.Helper()
	ctx := context.Background()
	sid, err := engine.Create(ctx, models.SettlementInput{Date: "2024-01-31", Title: "Jan", LineIDs: models.IDSet(ids)})
	require.NoError(t, err)
	for _, id := range ids {
		_, err := store.Patch(ctx, id, models.SalesLinePatch{
			SettlementStatus: models.Some(models.LineSettled), SettlementID: models.Some(sid),
		})
		require.NoError(t, err)
	}
	return sid
}

func TestPatchCannotDetachHeldLine(t *testing.T) {
	database := dbtest.New(t)
	store := saleslines.NewStore(database)
	engine := settlement.NewEngine(database)
	ctx := context.Background()

	l := newLine(t, store, "ACME", "2024-01-10")
	sid := settle(t, store, engine, l.ID)
	other, err := engine.Create(ctx, models.SettlementInput{Date: "2024-02-29", Title: "Fev", LineIDs: models.IDSet{l.ID}})
	require.NoError(t, err)

	for name, body := range map[string]string{
		"clear id only":      `{"settlementId":null}`,
		"move id only":       `{"settlementId":"` + other + `"}`,
		"pending keeps id":   `{"settlementStatus":"Pendente","settlementId":"` + sid + `"}`,
		"pending without id": `{"settlementStatus":"Pendente"}`,
		"null status":        `{"settlementStatus":null}`,
		"pending clears id":  `{"settlementStatus":"Pendente","settlementId":null}`,
		"move to other":      `{"settlementStatus":"Settled","settlementId":"` + other + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var patch models.SalesLinePatch
			require.NoError(t, json.Unmarshal([]byte(body), &patch))
			_, err := store.Patch(ctx, l.ID, patch)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err) || apperr.IsConflict(err), "got %v", err)

			got, err := store.Get(ctx, l.ID)
			require.NoError(t, err)
			assert.Equal(t, models.LineSettled, *got.SettlementStatus)
			assert.Equal(t, sid, *got.SettlementID)
			assert.True(t, apperr.IsConflict(store.Delete(ctx, l.ID)))
		})
	}

	_, err = store.Patch(ctx, l.ID, models.SalesLinePatch{
		SettlementStatus: models.Some(models.LineSettled), SettlementID: models.Some(sid), Product: models.Some("Mesa"),
	})
	require.NoError(t, err)
}

func TestPatchReleasesLineOfDeletedSettlement(t *testing.T) {
	database := dbtest.New(t)
	store := saleslines.NewStore(database)
	engine := settlement.NewEngine(database)
	ctx := context.Background()

	l := newLine(t, store, "ACME", "2024-01-10")
	sid := settle(t, store, engine, l.ID)
	require.NoError(t, engine.Delete(ctx, sid))

	var patch models.SalesLinePatch
	require.NoError(t, json.Unmarshal([]byte(`{"settlementStatus":"Pendente"}`), &patch))
	_, err := store.Patch(ctx, l.ID, patch)
	assert.True(t, apperr.IsValidation(err))

	require.NoError(t, json.Unmarshal([]byte(`{"settlementStatus":"Pendente","settlementId":null}`), &patch))
	got, err := store.Patch(ctx, l.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, models.LinePending, *got.SettlementStatus)
	assert.Nil(t, got.SettlementID)
	assert.NoError(t, store.Delete(ctx, l.ID))
}

func TestListLimit(t *testing.T) {
	store := saleslines.NewStore(dbtest.New(t))
	for _, d := range []string{"2024-01-10", "2024-01-11", "2024-01-12"} {
		newLine(t, store, "ACME", d)
	}

	got, err := store.List(context.Background(), models.SalesLineFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-12", *got[0].OrderDate)
	assert.Equal(t, "2024-01-11", *got[1].OrderDate)
}

func TestCountByClient(t *testing.T) {
	store := saleslines.NewStore(dbtest.New(t))
	newLine(t, store, "ACME", "2024-01-10")
	newLine(t, store, "ACME", "2024-01-11")
	newLine(t, store, "Beta", "2024-01-12")

	n, err := store.CountByClient(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
