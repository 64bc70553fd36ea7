package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTracksPresenceAndNull(t *testing.T) {
	var p SettlementPatch
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null,"title":"Jan"}`), &p))

	assert.True(t, p.Notes.Set)
	assert.True(t, p.Notes.Null)
	assert.Nil(t, p.Notes.Arg())

	assert.True(t, p.Title.Set)
	assert.False(t, p.Title.Null)
	assert.Equal(t, "Jan", p.Title.Arg())

	assert.False(t, p.Date.Set)
	assert.False(t, p.LineIDs.Set)
}

func TestJSONColumnScanNeverFails(t *testing.T) {
	cases := map[string]any{
		"nil":     nil,
		"empty":   "",
		"spaces":  "   ",
		"garbage": "{not json",
		"bytes":   []byte("nope"),
		"number":  int64(7),
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			var ids JSONColumn[IDSet]
			require.NoError(t, ids.Scan(src))
			assert.Empty(t, ids.V)

			var receipt JSONColumn[Record]
			require.NoError(t, receipt.Scan(src))
			assert.Nil(t, receipt.V)
		})
	}
}

func TestJSONColumnValue(t *testing.T) {
	v, err := JSON(IDSet{"a", "b"}).Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = JSON(Record(nil)).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var back JSONColumn[IDSet]
	require.NoError(t, back.Scan(`["a","b"]`))
	assert.Equal(t, IDSet{"a", "b"}, back.V)
}

func TestIDSetNormalize(t *testing.T) {
	assert.Equal(t, IDSet{"a", "b"}, IDSet{"a", "", "b", "a"}.Normalize())
	assert.NotNil(t, IDSet(nil).Normalize())
	assert.True(t, IDSet{"x"}.Contains("x"))
	assert.False(t, IDSet{"x"}.Contains("y"))
}

func TestMoneyMarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(SettlementSummary{TotalProfit: decimal.RequireFromString("12.5")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"totalProfit":12.5`)
}

func TestRecordKeepsUnknownKeys(t *testing.T) {
	var in SettlementInput
	require.NoError(t, json.Unmarshal([]byte(`{"distributions":[{"p":"X","amount":100}],
		"expenses":[{"id":"e1","value":50,"rateioPor":"2"}],"lastBankReceipt":null}`), &in))
	assert.Nil(t, in.LastBankReceipt)

	col, err := JSON(in.Expenses).Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"e1","value":50,"rateioPor":"2"}]`, col)

	var back JSONColumn[[]Record]
	require.NoError(t, back.Scan(col))
	b, err := json.Marshal(back.V)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"e1","value":50,"rateioPor":"2"}]`, string(b))

	assert.True(t, Record(` {"a":1}`).IsObject())
	assert.False(t, Record(`[1]`).IsObject())
	assert.False(t, Record(nil).IsObject())
}
