package middleware

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"finance-assistant/internal/errors"
	"finance-assistant/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorCounter counts rendered API errors by code, route and status
type ErrorCounter interface {
	Inc(code, route string, status int)
}

type promErrorCounter struct {
	errors *prometheus.CounterVec
}

// NewErrorCounter registers api_errors_total with reg
func NewErrorCounter(reg prometheus.Registerer) ErrorCounter {
	return &promErrorCounter{
		errors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

func (p *promErrorCounter) Inc(code, route string, status int) {
	p.errors.WithLabelValues(code, route, strconv.Itoa(status)).Inc()
}

// NewHTTPErrorHandler returns an echo error handler rendering every error that
// escapes a handler as a coded ErrorResponse. counter may be nil.
func NewHTTPErrorHandler(counter ErrorCounter) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, status := classifyError(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.Request().Context(), level, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", status,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		if counter != nil {
			counter.Inc(errorResponse.Error.Code, c.Path(), status)
		}

		if sendErr := c.JSON(status, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response", "trace_id", traceID, "error", sendErr.Error())
		}
	}
}

// CustomHTTPErrorHandler renders errors without counting them
func CustomHTTPErrorHandler(err error, c echo.Context) {
	NewHTTPErrorHandler(nil)(err, c)
}

// classifyError picks the response for errors raised by echo itself (routing,
// binding, body limit), by the validator or by anything unexpected.
func classifyError(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		opts := []errors.ErrorOption{}
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			opts = append(opts, errors.WithMessage(msg))
		}
		return errors.NewErrorResponse(mapHTTPStatusToErrorCode(echoErr.Code), traceID, opts...), echoErr.Code
	}

	if fields, ok := validation.FieldMessages(err); ok {
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, http.StatusInternalServerError
}

// mapHTTPStatusToErrorCode maps HTTP status codes raised by echo itself to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return errors.ValidationInvalidFormat
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
