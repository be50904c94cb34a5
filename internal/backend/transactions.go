package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
)

func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	const op = "list transactions"

	var envelope dto.ListTransactionsResponse
	if err := c.do(ctx, op, http.MethodGet, "/transactions", nil, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Transactions == nil {
		return nil, malformed(op, `missing "transactions" list`)
	}
	return *envelope.Transactions, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req *dto.TransactionRequest) (*models.Transaction, error) {
	const op = "create transaction"
	return c.mutateTransaction(ctx, op, http.MethodPost, "/create_transaction", 0, req)
}

func (c *Client) UpdateTransaction(ctx context.Context, id int, req *dto.TransactionRequest) (*models.Transaction, error) {
	const op = "update transaction"
	return c.mutateTransaction(ctx, op, http.MethodPatch, fmt.Sprintf("/update_transaction/%d", id), id, req)
}

// mutateTransaction falls back to the submitted payload when the reply carries no transaction
func (c *Client) mutateTransaction(ctx context.Context, op, method, path string, id int, req *dto.TransactionRequest) (*models.Transaction, error) {
	payload := *req
	if payload.UserID == 0 {
		payload.UserID = c.userID
	}

	var envelope map[string]json.RawMessage
	if err := c.do(ctx, op, method, path, nil, payload, &envelope); err != nil {
		return nil, err
	}

	var tx models.Transaction
	found, err := entityFrom(op, envelope, &tx, "transaction", "transaction updated")
	if err != nil {
		return nil, err
	}
	if !found {
		tx = payload.ToModel(id)
	}
	return &tx, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.do(ctx, "delete transaction", http.MethodDelete, fmt.Sprintf("/delete_transaction/%d", id), nil, nil, nil)
}
