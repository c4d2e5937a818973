// Package transport provides the shared HTTP dispatch boundary used by all
// SDK resource facets. It defines the Dispatcher interface for making
// requests to the remote administration API, a production implementation
// over net/http, and a recording implementation for tests. The package
// performs no status-code interpretation beyond transport completion;
// classifying a response as success or failure is the caller's concern.
package transport

import (
	"context"
)

// Meta carries per-request transport metadata. The only field populated by
// the SDK today is the authentication header.
type Meta struct {
	Headers map[string]string // header name to value, copied onto the request verbatim
}

// SessionMeta builds the transport metadata for a session token. The token
// is forwarded verbatim in the Authorization header; no encoding, hashing,
// or expiry checks are applied at this layer.
func SessionMeta(session string) Meta {
	return Meta{
		Headers: map[string]string{
			"Authorization": session,
		},
	}
}

// Response is the raw result of a completed HTTP exchange: the status code
// and the unparsed response body.
type Response struct {
	Status int    // HTTP status code returned by the server
	Body   []byte // raw response body
}

// HTTPError represents a transport-level failure with an HTTP-style status
// code and message. Failures that never produced a server response (dial
// errors, cancelled contexts) are wrapped into this shape explicitly rather
// than surfaced as bare errors.
type HTTPError struct {
	StatusCode int    // HTTP-style status code of the failure
	Message    string // failure message
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return e.Message
}

// Dispatcher defines the interface for transport implementations shared by
// all resource facets. Each method performs exactly one request per
// invocation; retries, if any, are the caller's decision. Implementations
// must be safe for concurrent use.
type Dispatcher interface {
	// Get performs a GET request against the given API path.
	Get(ctx context.Context, path string, meta Meta) (*Response, error)

	// Post performs a POST request with the given body, marshaled as JSON.
	Post(ctx context.Context, path string, body any, meta Meta) (*Response, error)

	// Put performs a PUT request with the given body, marshaled as JSON.
	Put(ctx context.Context, path string, body any, meta Meta) (*Response, error)
}

// Verify that both implementations satisfy the Dispatcher interface.
var _ Dispatcher = &HTTPDispatcher{}
var _ Dispatcher = &RecorderDispatcher{}
