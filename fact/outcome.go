package fact

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrCompositeFact is returned when an outcome conversion is attempted on a
// Not, And, or Or node. Only leaves define an assertion outcome.
var ErrCompositeFact = errors.New("assertion outcome is not defined for composite facts")

// AssertionError is the failure outcome of a false leaf fact. Message is
// the fact's fully rendered full message, truth prefix included. File and
// Line locate the Outcome call that produced the error.
type AssertionError struct {
	Message string
	File    string
	Line    int
	Cause   error
}

func (e *AssertionError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *AssertionError) Unwrap() error {
	return e.Cause
}

// Outcome converts a leaf fact into an assertion outcome: nil for a true
// leaf, an *AssertionError for a false leaf. Composite facts have no
// defined outcome and return ErrCompositeFact.
func (f *Fact) Outcome() error {
	switch f.kind {
	case KindLeafTrue:
		return nil
	case KindLeafFalse:
		e := &AssertionError{
			Message: f.Message(),
			Cause:   f.cause,
		}
		if _, file, line, ok := runtime.Caller(1); ok {
			e.File = file
			e.Line = line
		}
		return e
	default:
		return ErrCompositeFact
	}
}
