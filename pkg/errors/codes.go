package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_012"
	ErrCodeNotImplemented     ErrorCode = "COMMON_013"
)

// Short aliases used throughout the codebase.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeUnauthorized   = ErrCodeUnauthorized
	CodeForbidden      = ErrCodeForbidden
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeRateLimit      = ErrCodeTooManyRequests
	CodeNotImplemented = ErrCodeNotImplemented
	CodeUnknown        = ErrorCode("UNKNOWN")
	CodeOK             = ErrorCode("OK")
)

// Triage Module Error Codes
const (
	ErrCodeTriageInputMissing   ErrorCode = "TRI_001"
	ErrCodeTriageFailed         ErrorCode = "TRI_002"
	ErrCodeTriageTaxonomyBroken ErrorCode = "TRI_003"
)

// Matching Module Error Codes
const (
	ErrCodeMatchInputMissing ErrorCode = "MAT_001"
	ErrCodeMatchFailed       ErrorCode = "MAT_002"
	ErrCodeMatchNoCandidates ErrorCode = "MAT_003"
)

// Document Analysis Module Error Codes
const (
	ErrCodeDocumentInputMissing ErrorCode = "DOC_001"
	ErrCodeDocumentTooLarge     ErrorCode = "DOC_002"
	ErrCodeDocumentFailed       ErrorCode = "DOC_003"
)

// Pattern Detection Module Error Codes
const (
	ErrCodePatternInputMissing   ErrorCode = "PTN_001"
	ErrCodePatternNotImplemented ErrorCode = "PTN_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeTriageInputMissing:   http.StatusBadRequest,
	ErrCodeTriageFailed:         http.StatusInternalServerError,
	ErrCodeTriageTaxonomyBroken: http.StatusInternalServerError,

	ErrCodeMatchInputMissing: http.StatusBadRequest,
	ErrCodeMatchFailed:       http.StatusInternalServerError,
	ErrCodeMatchNoCandidates: http.StatusOK,

	ErrCodeDocumentInputMissing: http.StatusBadRequest,
	ErrCodeDocumentTooLarge:     http.StatusRequestEntityTooLarge,
	ErrCodeDocumentFailed:       http.StatusInternalServerError,

	ErrCodePatternInputMissing:   http.StatusBadRequest,
	ErrCodePatternNotImplemented: http.StatusOK,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeTriageInputMissing:   "triage request is missing required fields",
	ErrCodeTriageFailed:         "triage processing failed",
	ErrCodeTriageTaxonomyBroken: "case taxonomy is misconfigured",

	ErrCodeMatchInputMissing: "match request is missing required fields",
	ErrCodeMatchFailed:       "matching failed",
	ErrCodeMatchNoCandidates: "no candidates available",

	ErrCodeDocumentInputMissing: "document analysis request is missing required fields",
	ErrCodeDocumentTooLarge:     "document content exceeds the size limit",
	ErrCodeDocumentFailed:       "document analysis failed",

	ErrCodePatternInputMissing:   "pattern detection request is missing case records",
	ErrCodePatternNotImplemented: "pattern detection will be implemented",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
