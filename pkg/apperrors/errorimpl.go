package apperrors

import "errors"

// appError is the concrete implementation of Error. Derived errors keep a
// reference to their template so errors.Is matches anywhere in the chain.
type appError struct {
	msg        string  // primary error message
	base       error   // template error, for errors.Is/As
	wrapped    []error // additional attached errors
	statuscode int     // HTTP-style status code
}

// New creates a root-level error with the given message.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

// Unwrap returns the template error for compatibility with errors.Is / errors.As.
func (e *appError) Unwrap() error {
	return e.base
}

// New derives a fresh error using the current error as template.
// The derived error inherits the status code.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		statuscode: e.statuscode,
	}
}

// Msg derives an error with a new message and wraps the original.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, e.wrapped...),
		statuscode: e.statuscode,
	}
}

// Err derives an error that attaches additional errors to the current one.
// The message and status code carry over.
func (e *appError) Err(errs ...error) Error {
	return &appError{
		msg:        e.msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// SetStatusCode returns a shallow copy with an updated status code.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

// StatusCode returns the current HTTP-style status code.
func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is checks the template chain and all attached errors.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrapped {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
