package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
)

func (c *Client) ListGoals(ctx context.Context) ([]models.Goal, error) {
	const op = "list goals"

	var envelope dto.ListGoalsResponse
	if err := c.do(ctx, op, http.MethodGet, "/goals", nil, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Goals == nil {
		return nil, malformed(op, `missing "goals" list`)
	}
	return *envelope.Goals, nil
}

func (c *Client) CreateGoal(ctx context.Context, req *dto.GoalRequest) (*models.Goal, error) {
	return c.mutateGoal(ctx, "create goal", http.MethodPost, "/api/create_goal", 0, req)
}

func (c *Client) UpdateGoal(ctx context.Context, id int, req *dto.GoalRequest) (*models.Goal, error) {
	return c.mutateGoal(ctx, "update goal", http.MethodPatch, fmt.Sprintf("/api/update_goal/%d", id), id, req)
}

// mutateGoal falls back to the submitted payload when the reply carries no goal
func (c *Client) mutateGoal(ctx context.Context, op, method, path string, id int, req *dto.GoalRequest) (*models.Goal, error) {
	payload := *req
	if payload.UserID == 0 {
		payload.UserID = c.userID
	}

	var envelope map[string]json.RawMessage
	if err := c.do(ctx, op, method, path, nil, payload, &envelope); err != nil {
		return nil, err
	}

	var goal models.Goal
	found, err := entityFrom(op, envelope, &goal, "goal", "Savings Goal updated")
	if err != nil {
		return nil, err
	}
	if !found {
		goal = payload.ToModel(id)
	}
	return &goal, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id int) error {
	return c.do(ctx, "delete goal", http.MethodDelete, fmt.Sprintf("/delete_goal/%d", id), nil, nil, nil)
}
