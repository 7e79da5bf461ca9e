package money_test

import (
	"encoding/json"
	"testing"

	"go-salary/internal/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantValid bool
		want      string
	}{
		{name: "number", body: `{"v":1000}`, wantValid: true, want: "1000.00"},
		{name: "fraction", body: `{"v":800.5}`, wantValid: true, want: "800.50"},
		{name: "numeric string", body: `{"v":"1200.25"}`, wantValid: true, want: "1200.25"},
		{name: "rounds to cents", body: `{"v":10.005}`, wantValid: true, want: "10.01"},
		{name: "text", body: `{"v":"abc"}`, wantValid: false},
		{name: "boolean", body: `{"v":true}`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V *money.Amount `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			require.NotNil(t, payload.V)

			assert.Equal(t, tt.wantValid, payload.V.Valid())
			if tt.wantValid {
				assert.Equal(t, tt.want, money.Format(payload.V.Decimal()))
			}
		})
	}
}

func TestAmount_NullLeavesPointerNil(t *testing.T) {
	var payload struct {
		V *money.Amount `json:"v"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"v":null}`), &payload))
	assert.Nil(t, payload.V)
}

func TestFormatNull(t *testing.T) {
	assert.Nil(t, money.FormatNull(decimal.NullDecimal{}))

	s := money.FormatNull(decimal.NewNullDecimal(decimal.RequireFromString("800")))
	require.NotNil(t, s)
	assert.Equal(t, "800.00", *s)
}

func TestAmount_ExactKeepsSubCentValue(t *testing.T) {
	a := money.MustAmount("-0.004")

	assert.True(t, a.Exact().IsNegative())
	assert.True(t, a.Decimal().IsZero())
}
