package membership

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella sentinel matched by every *InputError.
	ErrInvalidInput = errors.New("membership: invalid input")

	// ErrDuplicateElement indicates that the universe lists the same element twice.
	ErrDuplicateElement = errors.New("membership: duplicate universe element")

	// ErrUnknownElement indicates that a candidate set references an element
	// that is not part of the universe.
	ErrUnknownElement = errors.New("membership: element not in universe")

	// ErrSetIndex indicates a set index outside 0..M-1.
	ErrSetIndex = errors.New("membership: set index out of range")
)

// InputError describes malformed solver input detected before any search.
//
// Field names the offending input ("universe", "sets", "costs", "budget"),
// Index its position (-1 when the whole field is at fault), and Err the
// specific sentinel. errors.Is matches both Err and ErrInvalidInput.
type InputError struct {
	Field  string
	Index  int
	Detail string
	Err    error
}

// Error implements error.
func (e *InputError) Error() string {
	var where string
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Field, e.Index)
	} else {
		where = e.Field
	}
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", e.Err, where)
	}

	return fmt.Sprintf("%v: %s: %s", e.Err, where, e.Detail)
}

// Unwrap returns the specific sentinel.
func (e *InputError) Unwrap() error { return e.Err }

// Is reports whether target is the umbrella ErrInvalidInput.
func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }
