package menu

import (
	"errors"

	"github.com/yndnr/tokenadm/internal/core/domain"
)

// describe turns an error into the line shown to the operator.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenConflict):
		return "This token already exists"
	case errors.Is(err, domain.ErrTokenNotFound):
		return "Token not found"
	case errors.Is(err, domain.ErrClientNameRequired):
		return "Client name is required"
	case errors.Is(err, domain.ErrInvalidDays):
		return "Invalid number of days"
	case errors.Is(err, domain.ErrTokenGeneration):
		return "Could not generate a token: " + causeOf(err)
	case errors.Is(err, domain.ErrStorageParse):
		return "Error reading tokens: " + causeOf(err)
	case errors.Is(err, domain.ErrStorageRead):
		return "Error reading token file: " + causeOf(err)
	case errors.Is(err, domain.ErrStorageWrite):
		return "Error saving token file: " + causeOf(err)
	default:
		return err.Error()
	}
}

func causeOf(err error) string {
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
