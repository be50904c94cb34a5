package backend

import (
	"context"
	"net/http"
	"strings"

	"finance-assistant/internal/dto"
)

// Chat forwards a message to the backend's reasoning endpoint
func (c *Client) Chat(ctx context.Context, message string) (*dto.ChatResponse, error) {
	const op = "chat"

	var reply dto.ChatResponse
	if err := c.do(ctx, op, http.MethodPost, "/api/chat", nil, dto.ChatRequest{Message: message}, &reply); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reply.Response) == "" {
		return nil, malformed(op, `empty "response"`)
	}
	return &reply, nil
}
