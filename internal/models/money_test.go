package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1234.56", "1234.56 CZK"},
		{"-12", "-12.00 CZK"},
		{"0", "0.00 CZK"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := Money{Amount: decimal.RequireFromString(tt.amount), Currency: "CZK"}
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	m := Money{Amount: decimal.RequireFromString("150.5"), Currency: "CZK"}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	// amount must be a JSON number, not a quoted decimal string
	assert.Equal(t, `{"amount":150.50,"currency":"CZK"}`, string(data))
}
