// Package logtrace provides logging utilities for the SDK. It integrates
// with zerolog for structured logging and tags each dispatched request with
// a request id so client-side logs can be correlated with server logs.
package logtrace

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger with Unix timestamp format.
// Configures zerolog to output to stderr with timestamps. The default level
// is info; SDK request/response tracing is emitted at debug.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// NewRequestID returns a fresh request id for outbound request correlation.
func NewRequestID() string {
	return uuid.New().String()
}
