package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a request that failed validation before any
// analysis work began.
var ErrInvalidInput = errors.New("domain: invalid input")

// InvalidInputError carries the offending field for a validation failure.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
