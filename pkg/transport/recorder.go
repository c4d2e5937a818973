package transport

import (
	"context"
	"fmt"
	"sync"
)

// RecordedCall captures a single dispatcher invocation: the HTTP method,
// the request path, the marshaled body (nil for GET), and the metadata.
type RecordedCall struct {
	Method string
	Path   string
	Body   []byte
	Meta   Meta
}

// RecorderDispatcher is a Dispatcher for tests. It records every invocation
// and replays scripted responses in order. When the script is exhausted it
// returns an empty 200 response. Safe for concurrent use.
type RecorderDispatcher struct {
	mu     sync.Mutex
	calls  []RecordedCall
	script []scriptedResult
}

type scriptedResult struct {
	resp *Response
	err  error
}

// NewRecorder creates an empty RecorderDispatcher.
func NewRecorder() *RecorderDispatcher {
	return &RecorderDispatcher{}
}

// Script queues a response or error to be returned by the next unscripted
// invocation. Responses are consumed in the order they were queued.
func (r *RecorderDispatcher) Script(resp *Response, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.script = append(r.script, scriptedResult{resp: resp, err: err})
}

// Calls returns a copy of all recorded invocations in order.
func (r *RecorderDispatcher) Calls() []RecordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]RecordedCall, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Get records a GET invocation and replays the next scripted result.
func (r *RecorderDispatcher) Get(_ context.Context, path string, meta Meta) (*Response, error) {
	return r.record("GET", path, nil, meta)
}

// Post records a POST invocation and replays the next scripted result.
func (r *RecorderDispatcher) Post(_ context.Context, path string, body any, meta Meta) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %v", err)
	}
	return r.record("POST", path, data, meta)
}

// Put records a PUT invocation and replays the next scripted result.
func (r *RecorderDispatcher) Put(_ context.Context, path string, body any, meta Meta) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %v", err)
	}
	return r.record("PUT", path, data, meta)
}

func (r *RecorderDispatcher) record(method, path string, body []byte, meta Meta) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, RecordedCall{
		Method: method,
		Path:   path,
		Body:   body,
		Meta:   meta,
	})

	if len(r.script) == 0 {
		return &Response{Status: 200, Body: []byte(`{}`)}, nil
	}
	next := r.script[0]
	r.script = r.script[1:]
	return next.resp, next.err
}
