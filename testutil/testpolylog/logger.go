package testpolylog

import (
	"bytes"

	"github.com/pokt-network/wasmquerier/pkg/polylog"
	"github.com/pokt-network/wasmquerier/pkg/polylog/polyzero"
)

// NewLoggerWithBuffer returns a zerolog backed logger writing JSON lines at or
// above level into the returned buffer.
func NewLoggerWithBuffer(level polyzero.Level) (polylog.Logger, *bytes.Buffer) {
	output := new(bytes.Buffer)
	logger := polyzero.NewLogger(
		polyzero.WithOutput(output),
		polyzero.WithLevel(level),
	)
	return logger, output
}
