// Invariants are conditions that must hold unless there is a bug in listheap itself, e.g. the sort being
// asked to cover more positions than the list has, or a printed list state that lost or gained a value.
// A violation is logged, counted in `invariants_total`, and turned into a panic only in test-mode builds
// (see TestMode in build.go). The caller still decides how to recover, usually by clamping or skipping.
//
// Do not raise invariants for conditions that depend on the outside world, such as a failed write to stdout.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The package that detected the violation.
	"type",   // A short snake_case name of the violated condition.
})

// RaiseInvariant records a violation of `invariantType` detected in `module`.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns how many times `invariantType` has been raised in `module`.
func GetMetricValue(module, invariantType string) int {
	return CounterValue(invariantsMetric.WithLabelValues(module, invariantType))
}

// CounterValue reads the current value of a single Prometheus counter.
func CounterValue(counter prometheus.Counter) int {
	metric := new(promclient.Metric)
	if err := counter.Write(metric); err != nil {
		slog.Error("Failed to read counter.", "error", err)
		return 0
	}
	return int(metric.GetCounter().GetValue())
}
