package backend

import (
	"context"
	"fmt"
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
)

func (c *Client) CategoryStats(ctx context.Context, period int) ([]models.CategoryStat, error) {
	const op = "category stats"

	var envelope dto.CategoryStatsResponse
	if err := c.do(ctx, op, http.MethodGet, "/api/categories/stats", c.userQuery(period), nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Categories == nil {
		return nil, malformed(op, `missing "categories" list`)
	}
	return *envelope.Categories, nil
}

// SeedCategories asks the backend to create its default categories and returns its message
func (c *Client) SeedCategories(ctx context.Context) (string, error) {
	var msg dto.BackendMessage
	err := c.do(ctx, "seed categories", http.MethodPost, "/api/categories/seed", nil,
		dto.SeedCategoriesRequest{UserID: c.userID}, &msg)
	if err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (c *Client) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (string, error) {
	payload := *req
	if payload.UserID == 0 {
		payload.UserID = c.userID
	}

	var msg dto.BackendMessage
	if err := c.do(ctx, "create category", http.MethodPost, "/api/categories/create", nil, payload, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, "delete category", http.MethodDelete, fmt.Sprintf("/api/categories/delete/%d", id), nil, nil, nil)
}
