// pkg/vector/errors.go
package vector

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure
type Kind int

// Failure kinds reported by constructors and operations
const (
	// NullArgument means a required vector, collection or value was absent.
	NullArgument Kind = iota + 1
	// InvalidParameter means a structural precondition other than dimension was violated.
	InvalidParameter
	// InvalidDimension means vector dimensions are incompatible with the operation.
	InvalidDimension
)

// String returns the name of the failure kind
func (k Kind) String() string {
	switch k {
	case NullArgument:
		return "null argument provided"
	case InvalidParameter:
		return "invalid parameter provided"
	case InvalidDimension:
		return "invalid vector dimension"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error is a validation failure with an optional message
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Msg == "" {
		return "vector: " + e.Kind.String()
	}
	return "vector: " + e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error of the same kind, so the
// package sentinels match any message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrNullArgument     = &Error{Kind: NullArgument}
	ErrInvalidParameter = &Error{Kind: InvalidParameter}
	ErrInvalidDimension = &Error{Kind: InvalidDimension}
)

// NewError creates a failure of the given kind with a formatted message
func NewError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the failure kind carried by err, looking through wrapped
// errors. It returns 0 when err is not a vector failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
