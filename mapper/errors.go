package mapper

import (
	"errors"
	"fmt"
	"strings"

	"magic-mapper/shape"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	// ErrMissingKey is matched by MissingKeyError.
	ErrMissingKey = errors.New("missing key")
	// ErrMissingVariable is matched by MissingVariableError.
	ErrMissingVariable = errors.New("missing variable")
	// ErrListValidation is matched by ListValidationError.
	ErrListValidation = errors.New("list validation failed")
	// ErrUnrecognizedSchemaType is matched by UnrecognizedSchemaTypeError.
	ErrUnrecognizedSchemaType = errors.New("unrecognized schema type")
	// ErrShape is matched by ShapeError.
	ErrShape = errors.New("unexpected data shape")
	// ErrIndex is matched by IndexError.
	ErrIndex = errors.New("list index out of range")
)

// MissingKeyError reports a key absent from the data with no default configured.
type MissingKeyError struct {
	Key       string
	Available []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s %q (available [%s])", ErrMissingKey, e.Key, strings.Join(e.Available, ", "))
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// MissingVariableError reports a Variable name absent from the variable table.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s %q", ErrMissingVariable, e.Name)
}

func (e *MissingVariableError) Unwrap() error { return ErrMissingVariable }

// ListValidationError reports a sequence violating a length bound.
type ListValidationError struct {
	Key    string
	Length int
	// Bound is "min_length" or "max_length".
	Bound string
	Limit int
}

func (e *ListValidationError) Error() string {
	return fmt.Sprintf("%s: list %q violates %s %d (length %d)", ErrListValidation, e.Key, e.Bound, e.Limit, e.Length)
}

func (e *ListValidationError) Unwrap() error { return ErrListValidation }

// IndexError reports an index outside the resolved sequence.
type IndexError struct {
	Key    string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: list %q index %d (length %d)", ErrIndex, e.Key, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// ShapeError reports data that does not have the shape a resolver needs.
type ShapeError struct {
	Resolver string
	Want     shape.KindEnum
	Got      string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s expects %s, got %s", ErrShape, e.Resolver, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

func shapeError(r Resolver, want shape.KindEnum, got any) error {
	return &ShapeError{Resolver: r.String(), Want: want, Got: shape.TypeName(got)}
}

// UnrecognizedSchemaTypeError reports a template node that is neither
// mapping, sequence nor resolver.
type UnrecognizedSchemaTypeError struct {
	Type string
}

func (e *UnrecognizedSchemaTypeError) Error() string {
	return fmt.Sprintf("%s %s", ErrUnrecognizedSchemaType, e.Type)
}

func (e *UnrecognizedSchemaTypeError) Unwrap() error { return ErrUnrecognizedSchemaType }
