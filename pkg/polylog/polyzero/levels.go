package polyzero

import (
	"github.com/rs/zerolog"

	"github.com/pokt-network/wasmquerier/pkg/polylog"
)

const (
	// DebugLevel logs are voluminous and usually only enabled while debugging a test.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = Level(zerolog.WarnLevel)
	// ErrorLevel logs are high-priority.
	ErrorLevel = Level(zerolog.ErrorLevel)
	// Disabled drops every event.
	Disabled = Level(zerolog.Disabled)
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
type Level int

// Levels returns all levels which produce output.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// String implements polylog.Level#String().
func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

// Int implements polylog.Level#Int().
func (lvl Level) Int() int {
	return int(lvl)
}
