// Package domain defines the core domain models for tokenadm.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "TA-TOKN-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode returns the code of the first DomainError in err's chain,
// or "" when there is none.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Token Errors (TOKN)
// ============================================================================

var (
	// ErrTokenConflict indicates the token is already registered.
	ErrTokenConflict = NewDomainError("TA-TOKN-4090", "token already exists")

	// ErrTokenNotFound indicates the token is not in the table.
	ErrTokenNotFound = NewDomainError("TA-TOKN-4040", "token not found")

	// ErrClientNameRequired indicates a blank client name.
	ErrClientNameRequired = NewDomainError("TA-TOKN-4001", "client name is required")

	// ErrInvalidDays indicates a day count that is not a non-negative integer.
	ErrInvalidDays = NewDomainError("TA-TOKN-4002", "invalid number of days")

	// ErrTokenGeneration indicates the random source failed.
	ErrTokenGeneration = NewDomainError("TA-TOKN-5000", "token generation failed")
)

// ============================================================================
// Storage Errors (STOR)
// ============================================================================

var (
	// ErrStorageParse indicates the token file is not valid JSON.
	ErrStorageParse = NewDomainError("TA-STOR-4220", "cannot parse token file")

	// ErrStorageRead indicates the token file exists but could not be read.
	ErrStorageRead = NewDomainError("TA-STOR-5000", "cannot read token file")

	// ErrStorageWrite indicates the token file could not be written.
	ErrStorageWrite = NewDomainError("TA-STOR-5001", "cannot write token file")
)
