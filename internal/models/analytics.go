package models

// Analytics is the backend's analytics report for a period, passed through to the UI
type Analytics struct {
	Summary            AnalyticsSummary   `json:"summary"`
	SpendingByCategory []CategorySpending `json:"spending_by_category"`
	DailyTrend         []DailyTrendPoint  `json:"daily_trend"`
	TopCategories      []CategorySpending `json:"top_categories"`
}

type AnalyticsSummary struct {
	TotalIncome      Amount `json:"total_income"`
	TotalExpenses    Amount `json:"total_expenses"`
	NetSavings       Amount `json:"net_savings"`
	TransactionCount int    `json:"transaction_count"`
	AvgTransaction   Amount `json:"avg_transaction"`
}

type CategorySpending struct {
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Type     string `json:"type,omitempty"`
}

type DailyTrendPoint struct {
	Date    string `json:"date"`
	Income  Amount `json:"income"`
	Expense Amount `json:"expense"`
}
