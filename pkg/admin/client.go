// Package admin provides the client SDK for the remote administration API.
// The API is exposed as resource facets that share one request-execution
// pipeline: validate parameters, attach session authentication, dispatch
// through the shared transport, and normalize the response into resolved
// data or a structured error.
package admin

import (
	"github.com/lumeniq/adminsdk/pkg/transport"
)

// Client is the parent context for all resource facets. It owns the single
// shared transport dispatcher; facets borrow it and never construct or close
// transports of their own, so one SDK instance carries one connection
// configuration.
type Client struct {
	dispatcher transport.Dispatcher
}

// NewClient creates a client backed by an HTTP dispatcher built from the
// given configuration. A nil configurator is a construction error.
func NewClient(cfg transport.Configurator, opts ...transport.ClientOptions) (*Client, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	return &Client{
		dispatcher: transport.NewHTTPDispatcher(cfg, opts...),
	}, nil
}

// NewClientWithDispatcher creates a client around an existing dispatcher.
// This is the injection path for tests and custom transports.
func NewClientWithDispatcher(d transport.Dispatcher) (*Client, error) {
	if d == nil {
		return nil, ErrNoDispatcher
	}
	return &Client{dispatcher: d}, nil
}

// Dispatcher returns the shared transport dispatcher.
func (c *Client) Dispatcher() transport.Dispatcher {
	return c.dispatcher
}

// Users returns the user administration facet.
func (c *Client) Users() *Users {
	return &Users{dispatcher: c.dispatcher}
}
