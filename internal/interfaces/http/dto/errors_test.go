package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus_KnownCodes(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{"SHOW_NOT_FOUND", http.StatusNotFound},
		{"WHOLESALER_NOT_FOUND", http.StatusNotFound},
		{ErrCodeValidation, http.StatusBadRequest},
		{"SNAPSHOT_REQUIRED", http.StatusConflict},
		{"PRECONDITION_FAILED", http.StatusConflict},
		{"INVALID_STATE", http.StatusConflict},
		{"UNSUPPORTED_CURRENCY", http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestGetHTTPStatus_InvalidPrefixFallback(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_AMOUNT"))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_CALCULATION"))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("CURRENCY_MISMATCH"))
}

func TestGetHTTPStatus_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.PageSize)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
