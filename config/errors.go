package config

import "fmt"

// Error is the single error kind surfaced by a configuration load.
// Every structure, resolution, or construction failure aborts the
// whole load and arrives wrapped in one of these; no partial
// configuration is ever returned.
type Error struct {
	msg   string
	cause error
}

// Error implements error.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// loadErrorf builds an *Error with a formatted message and an optional
// cause. Callers include the offending declared name in the message.
func loadErrorf(cause error, format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), cause: cause}
}
