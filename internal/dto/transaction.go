package dto

import "finance-assistant/internal/models"

// TransactionRequest represents the payload for creating or updating a transaction
type TransactionRequest struct {
	Description     string        `json:"description" validate:"max=200"`
	Amount          models.Amount `json:"amount" validate:"required,money"`
	TransactionType string        `json:"transaction_type" validate:"required,transaction_type"`
	TransactionDate string        `json:"transaction_date" validate:"required,iso_date"`
	CategoryID      int           `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	UserID          int           `json:"user_id,omitempty"`
}

// ToModel returns the transaction the request describes, with the given id
func (r TransactionRequest) ToModel(id int) models.Transaction {
	return models.Transaction{
		ID:              id,
		UserID:          r.UserID,
		CategoryID:      r.CategoryID,
		Description:     r.Description,
		Amount:          r.Amount,
		TransactionType: r.TransactionType,
		TransactionDate: r.TransactionDate,
	}
}

// ListTransactionsResponse is the backend's transaction list envelope
type ListTransactionsResponse struct {
	Transactions *[]models.Transaction `json:"transactions"`
}
