package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	calcCounter      metric.Int64Counter
	calcHistogram    metric.Float64Histogram
	rejectionCounter metric.Int64Counter
	resultGauge      metric.Float64Gauge
)

// InitMetrics registers the lab calculation instruments. Call this once at
// startup, after observability.InitMetrics when telemetry is enabled.
func InitMetrics() error {
	meter := otel.Meter("labs")

	var err error

	calcCounter, err = meter.Int64Counter("labs.calculations.total",
		metric.WithDescription("Total number of successful lab calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("labs.calculation.duration",
		metric.WithDescription("Duration of lab calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	rejectionCounter, err = meter.Int64Counter("labs.rejections.total",
		metric.WithDescription("Total number of rejected or failed lab requests"),
		metric.WithUnit("{rejection}"),
	)
	if err != nil {
		return fmt.Errorf("creating rejection counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("labs.last_result",
		metric.WithDescription("Headline figure of the last calculation per calculator"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
