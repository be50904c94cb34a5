package models

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

// Category filter values accepted by the category stats view
const (
	CategoryFilterAll     = "all"
	CategoryFilterIncome  = "income"
	CategoryFilterExpense = "expense"
)

// Category groups transactions for reporting
type Category struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// CategoryStat is one row of the backend's category statistics for a period
type CategoryStat struct {
	Category
	TotalSpent         Amount                `json:"total_spent"`
	TransactionCount   int                   `json:"transaction_count"`
	AvgTransaction     Amount                `json:"avg_transaction"`
	RecentTransactions []CategoryTransaction `json:"recent_transactions,omitempty"`
}

// CategoryTransaction is a recent transaction listed under a category stat
type CategoryTransaction struct {
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Date        string `json:"date"`
}

// CategoryStatsView is the filtered stats list with per-type totals
type CategoryStatsView struct {
	Period        int            `json:"period"`
	Filter        string         `json:"filter"`
	Categories    []CategoryStat `json:"categories"`
	TotalSpending string         `json:"total_spending"`
	TotalIncome   string         `json:"total_income"`
}

// IsValidCategoryType checks if the category type is income or expense
func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeIncome || categoryType == CategoryTypeExpense
}

// IsValidCategoryFilter checks if filter is all, income or expense
func IsValidCategoryFilter(filter string) bool {
	switch filter {
	case CategoryFilterAll, CategoryFilterIncome, CategoryFilterExpense:
		return true
	default:
		return false
	}
}
