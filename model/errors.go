package model

import "fmt"

// InternalError signals an invariant violation that cannot happen on
// well-formed input: a programmer error in an upstream collaborator,
// not a runtime condition callers can recover from. Discovery
// routines panic with an InternalError rather than return one, aborting
// the step outright instead of asking a caller to handle the
// unhandleable.
type InternalError struct {
	msg string
}

func (e InternalError) Error() string {
	return e.msg
}

// Fatalf builds an InternalError with a formatted message.
func Fatalf(format string, args ...any) InternalError {
	return InternalError{msg: fmt.Sprintf(format, args...)}
}
