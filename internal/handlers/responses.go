package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"finance-assistant/internal/backend"
	apierrors "finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and known failure states
//    - Validation errors: SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("..."))
//    - Chat state errors: SendError(c, apierrors.ChatReplyPending)
//    - Backend failures: SendError(c, apierrors.BackendUnreachable, apierrors.WithRetry())
//
// 2. SendServiceError - For errors returned by the services layer; maps them onto codes
//
// 3. SendSystemError - For unexpected internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apierrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError sends a VALIDATION_001 response listing each invalid field
func SendValidationError(c echo.Context, fields map[string]string) error {
	errorResponse := apierrors.NewValidationError(fields, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := apierrors.WrapSystemError(err, traceID)
	slog.Error("internal error", "trace_id", traceID, "path", c.Path(), "error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps an error from the services layer onto an API error code
func SendServiceError(c echo.Context, err error) error {
	var opts []apierrors.ErrorOption
	var submission *services.SubmissionError
	if errors.As(err, &submission) {
		opts = append(opts, apierrors.WithMessage(submission.Message))
	}

	var failure *services.ValidationFailure
	switch {
	case errors.As(err, &failure):
		return SendValidationError(c, failure.Fields)
	case errors.Is(err, services.ErrInvalidPeriod), errors.Is(err, services.ErrInvalidFilter):
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrEmptyUtterance):
		return SendError(c, apierrors.ChatEmptyMessage)
	case errors.Is(err, services.ErrSessionNotFound):
		return SendError(c, apierrors.ChatSessionNotFound)
	case errors.Is(err, services.ErrReplyPending):
		return SendError(c, apierrors.ChatReplyPending, apierrors.WithRetry())
	case errors.Is(err, services.ErrSessionGone):
		return SendError(c, apierrors.ChatSessionGone)
	case backend.IsNotFound(err):
		return sendBackendError(c, err, apierrors.BackendNotFound, opts...)
	case backend.IsTransient(err):
		return sendBackendError(c, err, apierrors.BackendUnreachable, append(opts, apierrors.WithRetry())...)
	case errors.Is(err, backend.ErrMalformedBody):
		return sendBackendError(c, err, apierrors.BackendMalformedBody, opts...)
	case errors.Is(err, backend.ErrBadStatus):
		return sendBackendError(c, err, apierrors.BackendRejected, opts...)
	default:
		return SendSystemError(c, err)
	}
}

// sendBackendError logs the cause when the backend, not the request, is at fault
func sendBackendError(c echo.Context, err error, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	errorResponse := apierrors.NewErrorResponse(code, getTraceID(c), opts...)
	if errorResponse.IsServerError() {
		slog.Warn("backend request failed",
			"response", errorResponse.String(),
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
