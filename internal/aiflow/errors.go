package aiflow

import "fmt"

// Kind classifies flow failures into the three documented error classes
type Kind string

const (
	// KindInvalidInput means the input failed schema validation before any provider call
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindEmptyOutput means the provider returned no usable output
	KindEmptyOutput Kind = "EMPTY_OUTPUT"
	// KindProviderError means the provider call itself failed
	KindProviderError Kind = "PROVIDER_ERROR"
)

// Error is the error type returned by every flow. The zero error classes above
// are the only ones a flow may surface; nothing is swallowed.
type Error struct {
	Kind Kind
	Flow string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("flow %s: %s: %v", e.Flow, e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, flow string, err error) *Error {
	return &Error{Kind: kind, Flow: flow, Err: err}
}

// IsKind reports whether err is a flow error of the given kind
func IsKind(err error, kind Kind) bool {
	fe, ok := err.(*Error)
	return ok && fe.Kind == kind
}
