package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation      = errors.New("validation error")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrItemNotFound    = errors.New("item not found")
	ErrNoPopulate      = errors.New("builder cannot populate from a transfer representation")
)

// ValidationError is returned by Create and CreateFromDTO when validation is
// required and fails. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to recover the failures without validating again.
type ValidationError struct {
	Entity string
	Errors ValidationErrorCollection
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: cannot create %s with validation errors: %s", ErrValidation.Error(), e.Entity, e.Errors)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// indexError reports an out-of-range index together with the collection size.
func indexError(op string, index, count int) error {
	return fmt.Errorf("%s: %w: index %d, count %d", op, ErrIndexOutOfRange, index, count)
}

func fmtNotFound(kc KeyCode) error {
	return fmt.Errorf("Replace: %w: %s", ErrItemNotFound, kc)
}
