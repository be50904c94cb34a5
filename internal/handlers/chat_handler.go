package handlers

import (
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// ChatHandler exposes the assistant chat sessions
type ChatHandler struct {
	chatService services.ChatSessionServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatSessionServiceInterface) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func toSessionResponse(session services.ChatSession, pending bool) dto.ChatSessionResponse {
	return dto.ChatSessionResponse{
		SessionID:     session.ID,
		RemoteEnabled: session.RemoteEnabled,
		Mode:          session.Mode(),
		Pending:       pending,
		Messages:      session.Messages,
	}
}

// StartSession opens a new chat session seeded with the greeting
// @Summary Start chat session
// @Tags Chat
// @Produce json
// @Success 201 {object} dto.ChatSessionResponse
// @Router /chat/sessions [post]
func (h *ChatHandler) StartSession(c echo.Context) error {
	session := h.chatService.Start()
	return c.JSON(http.StatusCreated, toSessionResponse(session, false))
}

// GetSession returns the transcript and reply mode of a session
// @Summary Get chat session
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 404 {object} errors.ErrorResponse "CHAT_001 - Session not found"
// @Router /chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(c echo.Context) error {
	session, pending, err := h.chatService.Get(c.Param("id"))
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(session, pending))
}

// SendMessage resolves one user message into a bot reply
// @Summary Send chat message
// @Description The first remote failure switches the session to built-in replies until it is reset.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 200 {object} dto.ChatReplyResponse
// @Failure 400 {object} errors.ErrorResponse "CHAT_004 - Empty message"
// @Failure 404 {object} errors.ErrorResponse "CHAT_001 - Session not found"
// @Failure 409 {object} errors.ErrorResponse "CHAT_002 - Reply pending or CHAT_003 - Session reset"
// @Router /chat/sessions/{id}/messages [post]
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	reply, session, err := h.chatService.Send(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ChatReplyResponse{
		SessionID:     session.ID,
		Reply:         reply.Message,
		UserMessage:   reply.UserMessage,
		RemoteEnabled: session.RemoteEnabled,
		Mode:          session.Mode(),
	})
}

// ResetSession clears the chat back to the greeting
// @Summary Clear chat
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 404 {object} errors.ErrorResponse "CHAT_001 - Session not found"
// @Router /chat/sessions/{id}/reset [post]
func (h *ChatHandler) ResetSession(c echo.Context) error {
	session, err := h.chatService.Reset(c.Param("id"))
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(session, false))
}

// EndSession discards a session
// @Summary End chat session
// @Tags Chat
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "CHAT_001 - Session not found"
// @Router /chat/sessions/{id} [delete]
func (h *ChatHandler) EndSession(c echo.Context) error {
	if err := h.chatService.End(c.Param("id")); err != nil {
		return SendServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
