package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthNotReunionOwner    ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Reunion error codes (REUNION_*)
const (
	ReunionNotFound    ErrorCode = "REUNION_001"
	ReunionInvalidID   ErrorCode = "REUNION_002"
	ReunionInvalidType ErrorCode = "REUNION_003"
)

// Line item error codes (LINEITEM_*)
const (
	LineItemNotFound        ErrorCode = "LINEITEM_001"
	LineItemInvalidAmount   ErrorCode = "LINEITEM_002"
	LineItemAmountTooLarge  ErrorCode = "LINEITEM_003"
	LineItemInvalidSource   ErrorCode = "LINEITEM_004"
	LineItemInvalidCategory ErrorCode = "LINEITEM_005"
)

// Sync error codes (SYNC_*)
const (
	SyncBatchTooLarge ErrorCode = "SYNC_001"
	SyncConflict      ErrorCode = "SYNC_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthNotReunionOwner:    "Reunion belongs to another user",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Reunion errors
	ReunionNotFound:    "Reunion not found",
	ReunionInvalidID:   "Invalid reunion ID format",
	ReunionInvalidType: "Invalid reunion type",

	// Line item errors
	LineItemNotFound:        "Line item not found",
	LineItemInvalidAmount:   "Amounts must be non-negative numbers",
	LineItemAmountTooLarge:  "Amount exceeds the allowed maximum",
	LineItemInvalidSource:   "Invalid source module",
	LineItemInvalidCategory: "Invalid budget category",

	// Sync errors
	SyncBatchTooLarge: "Sync batch exceeds the allowed size",
	SyncConflict:      "One or more line items changed during sync",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
