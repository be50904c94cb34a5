package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value received from the backend. Values that are not
// parseable as a number decode to an invalid Amount instead of failing the
// whole payload, so one malformed row never hides the rest of a collection.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a valid Amount holding d
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// ParseAmount parses raw leniently; surrounding whitespace is ignored
func ParseAmount(raw string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// OrZero returns the value, or zero when the amount is invalid
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// Display formats the amount with two decimal places, invalid amounts as 0.00
func (a Amount) Display() string {
	return a.OrZero().StringFixed(2)
}

// UnmarshalJSON accepts JSON numbers and numeric strings. It never returns an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}

	*a = ParseAmount(string(data))
	return nil
}

// MarshalJSON writes valid amounts as JSON numbers and invalid ones as null
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}
