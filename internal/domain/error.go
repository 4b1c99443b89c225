package domain

import (
	"errors"
	"strings"
)

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidAmount      = errors.New("not a valid integer")
	ErrNoEligibleProduct  = errors.New("no eligible credit product in catalog")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidExecContext = errors.New("invalid executor passed to repository")
	ErrOperationFailed    = errors.New("database operation failed")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
)

// InvoiceValidationError carries the validation messages reported by the
// invoicing collaborator. A non-empty result means a billing misconfiguration;
// it must surface to an operator, not be recovered locally.
type InvoiceValidationError struct {
	Messages []string
}

func (e *InvoiceValidationError) Error() string {
	return "could not create invoice: " + strings.Join(e.Messages, "; ")
}
