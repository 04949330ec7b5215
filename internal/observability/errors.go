package observability

import (
	"context"
	"net/http"

	"energylab/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Failure describes one failed request for RecordError. Op names the
// calculator or operation, Kind classifies the failure (malformed_body,
// missing_input, ...) and Message is what the caller sees.
type Failure struct {
	Op      string
	Kind    string
	Message string
	Err     error
	Status  int
}

// RecordError centralises failure handling across handlers: records the error
// on the span, increments counter, logs with trace context and writes the
// JSON error body. Client rejections (4xx) log at warn, everything else at
// error.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, f Failure, w http.ResponseWriter) {
	span.RecordError(f.Err)
	span.SetStatus(codes.Error, f.Message)
	span.SetAttributes(attribute.String("labs.rejection.kind", f.Kind))

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("calculator", f.Op),
		attribute.String("kind", f.Kind),
	))

	log := logger.Error
	if f.Status >= 400 && f.Status < 500 {
		log = logger.Warn
	}
	log("request rejected",
		zap.String("calculator", f.Op),
		zap.String("kind", f.Kind),
		zap.String("message", f.Message),
		zap.Error(f.Err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, f.Status, handlers.ErrorBody{
		Error: f.Message,
		Kind:  f.Kind,
	})
}
