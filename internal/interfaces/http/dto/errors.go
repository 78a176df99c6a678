package dto

import (
	"net/http"
	"strings"
)

// Error codes shared with the domain layer. Handlers translate domain
// error codes to HTTP statuses through this table; codes the table does
// not know fall back by prefix.
const (
	ErrCodeInternal     = "INTERNAL"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	"UNSUPPORTED_CURRENCY": http.StatusBadRequest,

	// Missing resources
	ErrCodeNotFound:        http.StatusNotFound,
	"SHOW_NOT_FOUND":       http.StatusNotFound,
	"WHOLESALER_NOT_FOUND": http.StatusNotFound,

	// State conflicts. A settlement against a show without a snapshot is
	// a precondition failure on an existing resource, not a 404.
	ErrCodeConflict:       http.StatusConflict,
	"ALREADY_EXISTS":      http.StatusConflict,
	"PRECONDITION_FAILED": http.StatusConflict,
	"SNAPSHOT_REQUIRED":   http.StatusConflict,
	"INVALID_STATE":       http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// INVALID_* codes not in the table are client errors; everything else
// unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasSuffix(code, "_MISMATCH") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
