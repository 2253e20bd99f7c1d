package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/pokt-network/wasmquerier/pkg/polylog"
)

// WithOutput sets the writer which log lines are written to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.Output(output)
	}
}

// WithLevel sets the minimum level which is written.
func WithLevel(level Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.Level(zerolog.Level(level))
	}
}
