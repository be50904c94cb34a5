package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ResponsesTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestResponsesSuite(t *testing.T) {
	suite.Run(t, new(ResponsesTestSuite))
}

func (s *ResponsesTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *ResponsesTestSuite) send(err error) (*httptest.ResponseRecorder, ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc")

	s.Require().NoError(SendServiceError(c, err))

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func (s *ResponsesTestSuite) TestSendServiceError_Mapping() {
	tests := []struct {
		name      string
		err       error
		status    int
		code      errors.ErrorCode
		retryable bool
	}{
		{"validation failure", &services.ValidationFailure{Fields: map[string]string{"amount": "is required"}}, http.StatusBadRequest, errors.ValidationGeneral, false},
		{"invalid period", fmt.Errorf("%w: got 12", services.ErrInvalidPeriod), http.StatusBadRequest, errors.ValidationOutOfRange, false},
		{"invalid filter", services.ErrInvalidFilter, http.StatusBadRequest, errors.ValidationOutOfRange, false},
		{"empty utterance", services.ErrEmptyUtterance, http.StatusBadRequest, errors.ChatEmptyMessage, false},
		{"session not found", services.ErrSessionNotFound, http.StatusNotFound, errors.ChatSessionNotFound, false},
		{"reply pending", services.ErrReplyPending, http.StatusConflict, errors.ChatReplyPending, true},
		{"session gone", services.ErrSessionGone, http.StatusConflict, errors.ChatSessionGone, false},
		{"backend not found", &backend.StatusError{Operation: "delete goal", StatusCode: 404}, http.StatusNotFound, errors.BackendNotFound, false},
		{"backend network", fmt.Errorf("list goals: %w", backend.ErrNetwork), http.StatusBadGateway, errors.BackendUnreachable, true},
		{"backend 500", &backend.StatusError{Operation: "list goals", StatusCode: 500}, http.StatusBadGateway, errors.BackendUnreachable, true},
		{"backend malformed", fmt.Errorf("list goals: %w", backend.ErrMalformedBody), http.StatusBadGateway, errors.BackendMalformedBody, false},
		{"backend rejected", &backend.StatusError{Operation: "create goal", StatusCode: 400}, http.StatusUnprocessableEntity, errors.BackendRejected, false},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, errors.SystemInternalError, false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, response := s.send(tt.err)

			s.Equal(tt.status, rec.Code)
			s.Equal(string(tt.code), response.Error.Code)
			s.Equal(tt.retryable, response.Error.Retryable)
			s.Equal("trace-abc", response.Error.TraceID)
		})
	}
}

func (s *ResponsesTestSuite) TestSendServiceError_SubmissionMessageSurfaced() {
	err := &services.SubmissionError{
		Operation: services.OpCreateTransaction,
		Message:   "Invalid category",
		Err:       &backend.StatusError{Operation: "create transaction", StatusCode: 400, Message: "Invalid category"},
	}

	rec, response := s.send(err)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(errors.BackendRejected), response.Error.Code)
	s.Equal("Invalid category", response.Error.Message)
}

func (s *ResponsesTestSuite) TestSendServiceError_ValidationFieldsListed() {
	rec, response := s.send(&services.ValidationFailure{Fields: map[string]string{
		"transaction_type": "must be income or expense",
		"amount":           "must be a positive amount",
	}})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Len(response.Error.Details, 2)
	s.Contains(response.Error.Details[0], "amount")
}

func (s *ResponsesTestSuite) TestSendSystemError_HidesInternalError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(SendSystemError(c, fmt.Errorf("dial tcp 10.0.0.3:5000: refused")))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "10.0.0.3")
}

func (s *ResponsesTestSuite) TestSendServiceError_LogsBackendFaultsOnly() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	s.send(&backend.StatusError{Operation: "delete goal", StatusCode: 404})
	s.Empty(buf.String())

	s.send(fmt.Errorf("list goals: %w", backend.ErrNetwork))
	s.Contains(buf.String(), "backend request failed")
	s.Contains(buf.String(), "BACKEND_001")
	s.Contains(buf.String(), "trace-abc")
	s.Contains(buf.String(), "list goals")
}
