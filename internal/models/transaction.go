package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// dateLayouts lists the date formats the backend is known to emit, most specific first
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	"2006-01-02",
}

// Transaction is a single income or expense entry owned by the backend
type Transaction struct {
	ID              int    `json:"id"`
	UserID          int    `json:"user_id,omitempty"`
	CategoryID      int    `json:"category_id,omitempty"`
	Description     string `json:"description"`
	Amount          Amount `json:"amount"`
	TransactionType string `json:"transaction_type"`
	TransactionDate string `json:"transaction_date"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// SignedAmount is the transaction's contribution to the balance: income adds,
// expense subtracts, anything else (unknown type, invalid amount) is zero.
func (t Transaction) SignedAmount() decimal.Decimal {
	if !t.Amount.Valid {
		return decimal.Zero
	}

	switch t.TransactionType {
	case TransactionTypeIncome:
		return t.Amount.Value
	case TransactionTypeExpense:
		return t.Amount.Value.Neg()
	default:
		return decimal.Zero
	}
}

// Date parses TransactionDate. The second result is false when the value is
// empty or in an unknown format.
func (t Transaction) Date() (time.Time, bool) {
	return ParseDate(t.TransactionDate)
}

// InMonthOf reports whether the transaction date falls in the calendar month
// and year of ref. Dates are compared on their own wall-clock fields.
func (t Transaction) InMonthOf(ref time.Time) bool {
	date, ok := t.Date()
	if !ok {
		return false
	}
	return date.Year() == ref.Year() && date.Month() == ref.Month()
}

// IsValidTransactionType checks if the type is income or expense
func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

// ParseDate parses an ISO-8601 date or date-time in any of the backend formats
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
