package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("TA-TEST-1000", "test message"),
			expected: "[TA-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("TA-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[TA-TEST-1001] test message: extra info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("TA-TEST-1000", "message 1")
	err2 := NewDomainError("TA-TEST-1000", "message 2")
	err3 := NewDomainError("TA-TEST-1001", "message 1")

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := ErrStorageWrite.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !errors.Is(fmt.Errorf("save: %w", err), ErrStorageWrite) {
		t.Error("errors.Is should match through fmt wrapping")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(ErrTokenNotFound.WithDetails("abc")); got != "TA-TOKN-4040" {
		t.Errorf("GetErrorCode() = %q", got)
	}
	if got := GetErrorCode(errors.New("plain")); got != "" {
		t.Errorf("GetErrorCode(plain) = %q, want empty", got)
	}
}
