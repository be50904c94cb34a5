package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DashboardStatusOK    = "ok"
	DashboardStatusError = "error"
)

// Dashboard data sources
const (
	DashboardSourceTransactions = "transactions"
	DashboardSourceGoals        = "goals"
	DashboardSourceCategories   = "categories"
)

// DashboardSummary is either fully computed (Status ok) or an explicit error
// state (Status error) carrying the failed source; it is never partial.
type DashboardSummary struct {
	Status                  string          `json:"status"`
	TotalBalance            decimal.Decimal `json:"total_balance"`
	MonthlyTransactionCount int             `json:"monthly_transaction_count"`
	ActiveGoalCount         int             `json:"active_goal_count"`
	CategoryCount           int             `json:"category_count"`
	CategoriesDegraded      bool            `json:"categories_degraded"`
	Error                   *DashboardError `json:"error,omitempty"`
	GeneratedAt             time.Time       `json:"generated_at"`
}

// DashboardError names the hard dependency that failed and why
type DashboardError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// IsError reports whether the summary is in the error state
func (s *DashboardSummary) IsError() bool {
	return s.Status == DashboardStatusError
}

// DisplayBalance formats the balance with two decimal places
func (s *DashboardSummary) DisplayBalance() string {
	return s.TotalBalance.StringFixed(2)
}
