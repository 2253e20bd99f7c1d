package polyzero

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/pokt-network/wasmquerier/pkg/polylog"
)

var _ polylog.Logger = (*zerologLogger)(nil)

// zerologLogger is a thin wrapper around a zerolog logger which implements
// the polylog.Logger interface.
type zerologLogger struct {
	zerolog.Logger
}

// NewLogger constructs a zerolog-backed polylog.Logger. By default it writes
// JSON lines to os.Stderr at the Debug level.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	ze := &zerologLogger{
		Logger: zerolog.New(os.Stderr).Level(zerolog.DebugLevel),
	}

	for _, opt := range opts {
		opt(ze)
	}

	return ze
}

// NewNopLogger returns a logger which discards every event.
func NewNopLogger() polylog.Logger {
	return &zerologLogger{Logger: zerolog.Nop()}
}

// Debug starts a new message with debug level.
func (ze *zerologLogger) Debug() polylog.Event {
	return newEvent(ze.Logger.Debug())
}

// Info starts a new message with info level.
func (ze *zerologLogger) Info() polylog.Event {
	return newEvent(ze.Logger.Info())
}

// Warn starts a new message with warn level.
func (ze *zerologLogger) Warn() polylog.Event {
	return newEvent(ze.Logger.Warn())
}

// Error starts a new message with error level.
func (ze *zerologLogger) Error() polylog.Event {
	return newEvent(ze.Logger.Error())
}

// With creates a child logger with the fields constructed from keyVals added
// to its context.
func (ze *zerologLogger) With(keyVals ...any) polylog.Logger {
	return &zerologLogger{
		Logger: ze.Logger.With().Fields(keyVals).Logger(),
	}
}

// WithLevel starts a new message with level.
func (ze *zerologLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(ze.Logger.WithLevel(zerolog.Level(level.Int())))
}
