package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation and input error codes
const (
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeInvalidState is used when an operation is invalid for the
	// resource's current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

// Generation error codes
const (
	// ErrCodeEmptyGeneration is used when the model produced no usable output
	ErrCodeEmptyGeneration = "ERR_EMPTY_GENERATION"
	// ErrCodeUpstream is used when an upstream dependency failed
	ErrCodeUpstream = "ERR_UPSTREAM"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	ErrCodeEmptyGeneration: http.StatusInternalServerError,
	ErrCodeUpstream:        http.StatusInternalServerError,

	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status code for an error code, defaulting
// to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to wire codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":           ErrCodeNotFound,
	"ALREADY_EXISTS":      ErrCodeAlreadyExists,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"FORBIDDEN":           ErrCodeForbidden,
	"INVALID_STATE":       ErrCodeInvalidState,
	"EMPTY_GENERATION":    ErrCodeEmptyGeneration,
	"UPSTREAM_ERROR":      ErrCodeUpstream,
	"INTERNAL_ERROR":      ErrCodeInternal,

	// Input-shaped domain failures all surface as validation errors
	"INVALID_INPUT":       ErrCodeValidation,
	"INVALID_DATE":        ErrCodeValidation,
	"INVALID_API_KEY":     ErrCodeUnauthorized,
	"INVALID_DESCRIPTION": ErrCodeValidation,
	"INVALID_INDUSTRY":    ErrCodeValidation,
	"INVALID_JOB":         ErrCodeValidation,
	"INVALID_NOTE":        ErrCodeValidation,
	"INVALID_FILE":        ErrCodeValidation,
	"INVALID_NAME":        ErrCodeValidation,
	"INVALID_EMAIL":       ErrCodeValidation,
	"INVALID_TITLE":       ErrCodeValidation,
	"INVALID_TYPE":        ErrCodeValidation,
	"INVALID_STATUS":      ErrCodeValidation,
	"INVALID_SKU":         ErrCodeValidation,
	"INVALID_STOCK":       ErrCodeValidation,
	"INVALID_REORDER":     ErrCodeValidation,
	"INVALID_DUE_DATE":    ErrCodeValidation,
	"INVALID_AMOUNT":      ErrCodeValidation,
	"INVALID_CATEGORY":    ErrCodeValidation,
	"INVALID_SCORE":       ErrCodeValidation,
	"INVALID_MODULE":      ErrCodeValidation,
	"INVALID_PASSWORD":    ErrCodeValidation,
}

// NormalizeErrorCode converts a domain error code to its wire format.
// Codes already in wire format or unknown come back unchanged.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := domainErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
