package main

import (
	"context"
	"errors"

	"energylab/internal/calculator"
	"energylab/internal/config"
	"energylab/internal/observability"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP exporters enabled in cfg and registers the
// lab metric instruments. The instruments are registered even with telemetry
// off; they then record into the global no-op provider.
func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (shutdownFunc, error) {
	var shutdowns []shutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Enabled {
		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, metricShutdown)

		if cfg.ExportLogs {
			logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
			if err != nil {
				return nil, errors.Join(err, shutdown(ctx))
			}
			shutdowns = append(shutdowns, logShutdown)
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	return shutdown, nil
}
