package telemetry

// globalTelemetryConfig stores the telemetry configuration of the process.
// It is set once, before any query is dispatched, and read-only afterwards.
var globalTelemetryConfig TelemetryConfig

// TelemetryConfig controls which metrics are emitted and how many labels they carry.
type TelemetryConfig struct {
	// Enabled turns metric emission on. Metrics are sent to the go-metrics
	// global sink, which discards them unless the caller installs a real one.
	Enabled bool `yaml:"enabled"`
	// CardinalityLevel is one of "low", "medium" or "high".
	CardinalityLevel string `yaml:"cardinality_level"`
}

// New sets the globalTelemetryConfig for the telemetry package.
func New(cfg TelemetryConfig) {
	globalTelemetryConfig = cfg
}

func isTelemetryEnabled() bool {
	return globalTelemetryConfig.Enabled
}
