package dto

// MutationResponse is returned to the UI after a successful create, update or delete
type MutationResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BackendMessage is the message/error envelope the backend uses for outcomes
type BackendMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns message, falling back to error
func (m BackendMessage) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
