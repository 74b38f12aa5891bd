package primitives

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMissingField = errors.New("missing field")

// EnumError reports a wire code that does not map to any known value of an
// enumeration.
type EnumError struct {
	Enum  string
	Value interface{}
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unrecognized %s value %v", e.Enum, e.Value)
}

// FieldError locates a decode failure on a single JSON field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Cause() error {
	return e.Err
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
