package sieve

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the offending index exactly as the caller gave it.
type InvalidInputError struct {
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input: %s is not a whole number.", e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
