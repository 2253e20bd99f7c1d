package telemetry

import (
	"github.com/hashicorp/go-metrics"
)

// WasmQueryRouted counts dispatched queries by the route they were resolved through.
func WasmQueryRouted(route, contractAddr string) {
	if !isTelemetryEnabled() {
		return
	}

	labels := []metrics.Label{toMetricLabel("route", route)}
	labels = appendHighCardinalityLabels(labels, toMetricLabel("contract", contractAddr))

	metrics.IncrCounterWithLabels(
		MetricNameKeys("query", "routed"),
		1,
		labels,
	)
}

// WasmQueryFailed counts queries which resolved to an error, by route.
func WasmQueryFailed(route string) {
	if !isTelemetryEnabled() {
		return
	}

	metrics.IncrCounterWithLabels(
		MetricNameKeys("query", "failed"),
		1,
		[]metrics.Label{toMetricLabel("route", route)},
	)
}
