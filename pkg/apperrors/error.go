// Package apperrors provides the error type used across the SDK. It extends
// the standard error interface with status codes and error chaining so that
// sentinel errors can act as templates for more specific errors while
// remaining matchable with errors.Is.
package apperrors

// Error is the application error interface. Methods return Error to support
// chaining; none of them mutate the receiver.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error    // derives a fresh error using current as template
	Msg(msg string) Error    // new message, wraps the original
	Err(errs ...error) Error // attaches additional errors
	SetStatusCode(int) Error // sets the HTTP-style status code
	StatusCode() int         // returns the current status code
}
