package polyzero_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/wasmquerier/pkg/polylog"
	"github.com/pokt-network/wasmquerier/pkg/polylog/polyzero"
)

func TestZerologLogger_EventFields(t *testing.T) {
	tests := []struct {
		desc                   string
		logFn                  func(polylog.Event)
		expectedOutputContains string
	}{
		{
			desc:                   "Str",
			logFn:                  func(e polylog.Event) { e.Str("Str", "str_value").Msg("msg") },
			expectedOutputContains: `"Str":"str_value"`,
		},
		{
			desc:                   "Bool",
			logFn:                  func(e polylog.Event) { e.Bool("Bool", true).Send() },
			expectedOutputContains: `"Bool":true`,
		},
		{
			desc:                   "Int",
			logFn:                  func(e polylog.Event) { e.Int("Int", 42).Send() },
			expectedOutputContains: `"Int":42`,
		},
		{
			desc:                   "Uint64",
			logFn:                  func(e polylog.Event) { e.Uint64("Uint64", 42).Send() },
			expectedOutputContains: `"Uint64":42`,
		},
		{
			desc:                   "Hex",
			logFn:                  func(e polylog.Event) { e.Hex("Hex", []byte{0x00, 0x09}).Send() },
			expectedOutputContains: `"Hex":"0009"`,
		},
		{
			desc:                   "Err",
			logFn:                  func(e polylog.Event) { e.Err(errors.New("42")).Send() },
			expectedOutputContains: `"error":"42"`,
		},
		{
			desc:                   "Msgf",
			logFn:                  func(e polylog.Event) { e.Msgf("%s-%d", "msgf", 7) },
			expectedOutputContains: `"message":"msgf-7"`,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			for _, level := range polyzero.Levels() {
				var output bytes.Buffer
				logger := polyzero.NewLogger(polyzero.WithOutput(&output))

				test.logFn(logger.WithLevel(level))

				require.Contains(t, output.String(), test.expectedOutputContains)
				require.Contains(t, output.String(), `"level":"`+level.String()+`"`)
			}
		})
	}
}

func TestZerologLogger_WithLevel_FiltersLowerLevels(t *testing.T) {
	var output bytes.Buffer
	logger := polyzero.NewLogger(
		polyzero.WithOutput(&output),
		polyzero.WithLevel(polyzero.WarnLevel),
	)

	debugEvent := logger.Debug()
	require.False(t, debugEvent.Enabled())
	debugEvent.Msg("dropped")
	logger.Info().Msg("dropped")
	require.Empty(t, output.String())

	logger.Warn().Msg("kept")
	require.Contains(t, output.String(), `"message":"kept"`)
}

func TestZerologLogger_With(t *testing.T) {
	var output bytes.Buffer
	logger := polyzero.NewLogger(polyzero.WithOutput(&output)).
		With("component", "wasm_mock_querier")

	logger.Error().Msg("child")
	require.Contains(t, output.String(), `"component":"wasm_mock_querier"`)
}

func TestNopLogger_WritesNothing(t *testing.T) {
	logger := polyzero.NewNopLogger()
	event := logger.Error()
	require.False(t, event.Enabled())
	event.Str("key", "value").Msg("nothing")
}
