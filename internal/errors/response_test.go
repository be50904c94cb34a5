package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "trace-123"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(ChatSessionNotFound, s.traceID)

	s.Equal("CHAT_001", response.Error.Code)
	s.Equal("Chat session not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
	s.False(response.Error.Retryable)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		DashboardGoalsUnavailable,
		s.traceID,
		WithMessage("goals are down"),
		WithDetails("backend returned 503"),
		WithRetry(),
	)

	s.Equal("goals are down", response.Error.Message)
	s.Equal([]string{"backend returned 503"}, response.Error.Details)
	s.True(response.Error.Retryable)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"transaction_type": "is required",
		"amount":           "must be greater than 0",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"amount: must be greater than 0", "transaction_type: is required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internal := errors.New("dial tcp 10.0.0.1:5000: connection refused")

	response, original := WrapSystemError(internal, s.traceID)

	s.Equal(internal, original)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "10.0.0.1")
}

func (s *ResponseTestSuite) TestJSONShape() {
	response := NewErrorResponse(BackendRejected, s.traceID, WithMessage("Missing required fields"))

	data, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("BACKEND_002", decoded.Error.Code)
	s.Equal("Missing required fields", decoded.Error.Message)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ChatEmptyMessage, http.StatusBadRequest},
		{ChatSessionNotFound, http.StatusNotFound},
		{BackendNotFound, http.StatusNotFound},
		{ChatReplyPending, http.StatusConflict},
		{ChatSessionGone, http.StatusConflict},
		{BackendRejected, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{BackendUnreachable, http.StatusBadGateway},
		{DashboardTransactionsUnavailable, http.StatusBadGateway},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

func (s *ResponseTestSuite) TestServerClassification() {
	s.False(NewErrorResponse(ChatReplyPending, s.traceID).IsServerError())
	s.True(NewErrorResponse(BackendUnreachable, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(ChatSessionNotFound, s.traceID).String()

	s.Contains(str, "CHAT_001")
	s.Contains(str, "Chat session not found")
	s.Contains(str, s.traceID)
}
