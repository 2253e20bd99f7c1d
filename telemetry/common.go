package telemetry

import (
	"github.com/hashicorp/go-metrics"
)

const metricNamePrefix = "wasm_mock_querier"

// MetricNameKeys prefixes metrics with `wasm_mock_querier` for easy identification.
// Returns a slice of strings as `go-metrics`, the underlying metrics library, expects.
func MetricNameKeys(metrics ...string) []string {
	result := make([]string, 0, len(metrics)+1)
	result = append(result, metricNamePrefix)
	result = append(result, metrics...)
	return result
}

// appendHighCardinalityLabels only creates the label if cardinality is set to "high".
// Contract addresses are unbounded, so they are only attached when explicitly asked for.
func appendHighCardinalityLabels(labels []metrics.Label, labelPairs ...metrics.Label) []metrics.Label {
	if globalTelemetryConfig.CardinalityLevel == "high" {
		return append(labels, labelPairs...)
	}
	return labels
}

// toMetricLabel takes simple key and value of the label to return metrics.Label.
func toMetricLabel(key, value string) metrics.Label {
	return metrics.Label{Name: key, Value: value}
}
