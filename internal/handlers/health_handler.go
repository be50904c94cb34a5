package handlers

import (
	"net/http"
	"time"

	"finance-assistant/internal/backend"
	apierrors "finance-assistant/internal/errors"

	"github.com/labstack/echo/v4"
)

// CircuitReporter exposes the backend circuit breaker state
type CircuitReporter interface {
	CircuitState() backend.BreakerState
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	backend CircuitReporter
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(client CircuitReporter) *HealthCheckHandler {
	return &HealthCheckHandler{backend: client}
}

// HealthCheck reports healthy unless the backend circuit breaker is open
//
// Method: GET /health
//
// Success Response: 200 OK {status, time, backend_circuit}
// Error Responses:
//   - 503: backend circuit open
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	state := h.backend.CircuitState()
	if state == backend.StateOpen {
		return SendError(c, apierrors.SystemServiceUnavailable,
			apierrors.WithDetails("finance backend circuit breaker is open"),
			apierrors.WithRetry(),
		)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":          "healthy",
		"time":            time.Now().UTC().Format(time.RFC3339),
		"backend_circuit": state.String(),
	})
}
