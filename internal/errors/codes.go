package errors

// ErrorCode represents a standardized error code returned by the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
)

// Chat error codes (CHAT_*)
const (
	ChatSessionNotFound ErrorCode = "CHAT_001"
	ChatReplyPending    ErrorCode = "CHAT_002"
	ChatSessionGone     ErrorCode = "CHAT_003"
	ChatEmptyMessage    ErrorCode = "CHAT_004"
)

// Dashboard error codes (DASHBOARD_*)
const (
	DashboardTransactionsUnavailable ErrorCode = "DASHBOARD_001"
	DashboardGoalsUnavailable        ErrorCode = "DASHBOARD_002"
)

// Backend error codes (BACKEND_*)
const (
	BackendUnreachable   ErrorCode = "BACKEND_001"
	BackendRejected      ErrorCode = "BACKEND_002"
	BackendMalformedBody ErrorCode = "BACKEND_003"
	BackendNotFound      ErrorCode = "BACKEND_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",
	ValidationInvalidID:     "Invalid identifier",

	// Chat errors
	ChatSessionNotFound: "Chat session not found",
	ChatReplyPending:    "A reply is still pending for this chat session",
	ChatSessionGone:     "Chat session was cleared before the reply arrived",
	ChatEmptyMessage:    "Message must not be empty",

	// Dashboard errors
	DashboardTransactionsUnavailable: "Transactions could not be loaded",
	DashboardGoalsUnavailable:        "Goals could not be loaded",

	// Backend errors
	BackendUnreachable:   "Finance backend is unreachable",
	BackendRejected:      "Finance backend rejected the request",
	BackendMalformedBody: "Finance backend returned an unexpected response",
	BackendNotFound:      "Resource not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
