package report

import "fmt"

// ValidationError reports invalid report inputs: an empty service selection
// or a malformed custom period. It is fatal and raised before any
// aggregation work happens.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
