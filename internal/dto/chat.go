package dto

import "finance-assistant/internal/models"

// ChatRequest is the body of the backend chat endpoint
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the backend chat endpoint reply
type ChatResponse struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

// SendMessageRequest is the body of a chat message sent by the UI
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatReplyResponse is returned to the UI after a message was resolved
type ChatReplyResponse struct {
	SessionID     string               `json:"session_id"`
	Reply         models.ChatMessage   `json:"reply"`
	UserMessage   models.ChatMessage   `json:"user_message"`
	RemoteEnabled bool                 `json:"remote_enabled"`
	Mode          string               `json:"mode"`
	Messages      []models.ChatMessage `json:"messages,omitempty"`
}

// ChatSessionResponse describes a chat session and its transcript
type ChatSessionResponse struct {
	SessionID     string               `json:"session_id"`
	RemoteEnabled bool                 `json:"remote_enabled"`
	Mode          string               `json:"mode"`
	Pending       bool                 `json:"pending"`
	Messages      []models.ChatMessage `json:"messages"`
}
