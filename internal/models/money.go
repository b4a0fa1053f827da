package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is an exact signed amount in a single currency.
// Negative amounts represent debits.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}

// MarshalJSON renders the amount as a JSON number, not a quoted string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   json.RawMessage `json:"amount"`
		Currency string          `json:"currency"`
	}{
		Amount:   json.RawMessage(m.Amount.StringFixed(2)),
		Currency: m.Currency,
	})
}
