package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)

	// Schema errors
	ErrSchemaMismatch = errors.New("table does not match expected schema")
	ErrColumnType     = errors.New("unexpected column type")

	// Statistical-domain errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrDegenerateTable  = errors.New("degenerate contingency table")
	ErrZeroVariance     = errors.New("zero variance in sample")
)

// NewColumnNotFoundError names the missing column
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w %q", ErrColumnNotFound, name)
}

// NewColumnTypeError reports a column whose kind does not fit the operation
func NewColumnTypeError(name, want, got string) error {
	return fmt.Errorf("%w: column %q is %s, want %s", ErrColumnType, name, got, want)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStatisticalDomainError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrDegenerateTable) ||
		errors.Is(err, ErrZeroVariance)
}
