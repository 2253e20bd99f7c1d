// Package polylog defines the structured logging surface used across the module.
// Implementations live in sub-packages (e.g. polyzero) so that callers depend only
// on this interface and never on a concrete logging library.
package polylog

// Level is a logging level which a Logger implementation understands.
type Level interface {
	String() string
	Int() int
}

// LoggerOption is applied to a concrete logger at construction time.
type LoggerOption func(logger Logger)

// Logger is the structured logger interface. Every level method returns an
// Event which MUST be terminated with Msg, Msgf or Send for anything to be written.
type Logger interface {
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event

	// With returns a child logger carrying the given key/value pairs on every event.
	With(keyVals ...any) Logger

	// WithLevel starts a new event at the given level.
	WithLevel(level Level) Event
}

// Event accumulates fields for a single log line.
type Event interface {
	Str(key, value string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Uint64(key string, value uint64) Event
	Hex(key string, value []byte) Event
	Err(err error) Event

	// Enabled reports whether the event will be written at all. Callers may use
	// it to skip building expensive fields.
	Enabled() bool

	Msg(msg string)
	Msgf(format string, args ...any)
	Send()
}
