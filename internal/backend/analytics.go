package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"finance-assistant/internal/models"
)

func (c *Client) Analytics(ctx context.Context, period int) (*models.Analytics, error) {
	const op = "analytics"

	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodGet, "/api/analytics", c.userQuery(period), nil, &raw); err != nil {
		return nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, malformed(op, "response is not an object")
	}
	if summary, ok := probe["summary"]; !ok || string(summary) == "null" {
		return nil, malformed(op, `missing "summary"`)
	}

	var analytics models.Analytics
	if err := json.Unmarshal(raw, &analytics); err != nil {
		return nil, malformed(op, err.Error())
	}
	return &analytics, nil
}
