package calculator

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"energylab/internal/form"
	"energylab/internal/handlers"
	"energylab/internal/labs"
	"energylab/internal/observability"
	"energylab/internal/runner"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Failure kinds that do not come from a calculator.
const (
	kindMalformedBody = "malformed_body"
	kindEmptyBatch    = "empty_batch"
)

var tracer = otel.Tracer("labs")

// FuelComposition handles POST /labs/fuel-composition
func FuelComposition(w http.ResponseWriter, r *http.Request) {
	handleLab(w, r, runner.FuelComposition)
}

// FuelOil handles POST /labs/fuel-oil
func FuelOil(w http.ResponseWriter, r *http.Request) {
	handleLab(w, r, runner.FuelOil)
}

// Emission handles POST /labs/emission/{fuel}
func Emission(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "fuel")

	fuel, err := labs.ParseFuelType(raw)
	if err != nil {
		ctx := r.Context()
		observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx), rejectionCounter,
			observability.Failure{
				Op:      "emission",
				Kind:    runner.Kind(err),
				Message: fmt.Sprintf("unknown fuel %q", raw),
				Err:     err,
				Status:  http.StatusNotFound,
			}, w)
		return
	}

	handleLab(w, r, "emission-"+fuel.String())
}

// SolarProfit handles POST /labs/solar-profit
func SolarProfit(w http.ResponseWriter, r *http.Request) {
	handleLab(w, r, runner.SolarProfit)
}

// FaultCurrent handles POST /labs/fault-current
func FaultCurrent(w http.ResponseWriter, r *http.Request) {
	handleLab(w, r, runner.FaultCurrent)
}

// Reliability handles POST /labs/reliability
func Reliability(w http.ResponseWriter, r *http.Request) {
	handleLab(w, r, runner.Reliability)
}

// ElectricalLoad handles POST /labs/electrical-load
func ElectricalLoad(w http.ResponseWriter, r *http.Request) {
	handleLab(w, r, runner.ElectricalLoad)
}

// Catalogue handles GET /labs
func Catalogue(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, CatalogueResponse{Calculators: runner.Catalogue()})
}

// handleLab is the shared implementation of every single-calculator endpoint:
// child span, form decoding, timed run, metrics, span event, trace-correlated
// log and the JSON outcome.
func handleLab(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "labs."+name,
		trace.WithAttributes(
			attribute.String("labs.calculator", name),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	values, err := decodeValues(w, r)
	if err != nil {
		observability.RecordError(ctx, span, logger, rejectionCounter, observability.Failure{
			Op:      name,
			Kind:    kindMalformedBody,
			Message: "invalid request body",
			Err:     err,
			Status:  http.StatusBadRequest,
		}, w)
		return
	}

	span.SetAttributes(attribute.Int("labs.fields", len(values)))

	start := time.Now()
	outcome, err := runner.Run(name, values)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, rejectionCounter, failureFor(name, outcome, err), w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("calculator", name))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, outcome.Headline, attrs)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("headline", outcome.Headline),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("labs.headline", outcome.Headline))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("calculator", name),
		zap.Float64("headline", outcome.Headline),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, outcome)
}

// Batch handles POST /labs/batch. Every step runs in its own child span.
// Rejected steps are reported inline; an unknown calculator aborts the batch.
func Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "labs.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, rejectionCounter, observability.Failure{
			Op:      "batch",
			Kind:    kindMalformedBody,
			Message: "invalid request body",
			Err:     err,
			Status:  http.StatusBadRequest,
		}, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, rejectionCounter, observability.Failure{
			Op:      "batch",
			Kind:    kindEmptyBatch,
			Message: "no steps provided",
			Err:     errors.New("steps array is empty"),
			Status:  http.StatusBadRequest,
		}, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.steps_count", len(req.Steps)))

	logger.Info("starting batch",
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	results := make([]BatchResult, 0, len(req.Steps))
	rejected := 0

	for i, step := range req.Steps {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("labs.batch.step.%d.%s", i, step.Calculator),
			trace.WithAttributes(
				attribute.Int("batch.step.index", i),
				attribute.String("batch.step.calculator", step.Calculator),
			),
		)

		stepStart := time.Now()
		outcome, err := runner.Run(step.Calculator, step.Values)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		if errors.Is(err, runner.ErrUnknownCalculator) {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			observability.RecordError(ctx, span, logger, rejectionCounter, observability.Failure{
				Op:      "batch",
				Kind:    runner.Kind(err),
				Message: fmt.Sprintf("step %d: %v", i, err),
				Err:     err,
				Status:  http.StatusBadRequest,
			}, w)
			return
		}

		attrs := metric.WithAttributes(attribute.String("calculator", step.Calculator))
		result := BatchResult{Outcome: outcome}

		if err != nil {
			result.Error = failureFor(step.Calculator, outcome, err).Message
			result.Kind = runner.Kind(err)
			rejected++

			rejectionCounter.Add(ctx, 1, metric.WithAttributes(
				attribute.String("calculator", step.Calculator),
				attribute.String("kind", result.Kind),
			))
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, result.Kind)

			logger.Warn("batch step rejected",
				zap.Int("step", i),
				zap.String("calculator", step.Calculator),
				zap.String("kind", result.Kind),
				zap.Error(err),
			)
		} else {
			calcCounter.Add(ctx, 1, attrs)
			calcHistogram.Record(ctx, stepElapsed, attrs)
			resultGauge.Record(ctx, outcome.Headline, attrs)

			stepSpan.AddEvent("step.complete", trace.WithAttributes(
				attribute.Float64("headline", outcome.Headline),
			))
			stepSpan.SetStatus(codes.Ok, "")

			logger.Info("batch step completed",
				zap.Int("step", i),
				zap.String("calculator", step.Calculator),
				zap.Float64("headline", outcome.Headline),
				zap.Float64("duration_ms", stepElapsed),
			)
		}
		stepSpan.End()

		results = append(results, result)
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("total_steps", len(req.Steps)),
		attribute.Int("rejected_steps", rejected),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch completed",
		zap.Int("steps", len(req.Steps)),
		zap.Int("rejected", rejected),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{Steps: results, Rejected: rejected})
}

// decodeValues reads the calculator fields from a url-encoded form post or,
// for any other content type, from a JSON object.
func decodeValues(w http.ResponseWriter, r *http.Request) (form.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return form.FromURLValues(r.PostForm), nil
	}

	var values form.Values
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

// failureFor maps a calculator error to the HTTP failure reported to the
// caller. Rejections carry the display text the calculator produced.
func failureFor(name string, outcome runner.Outcome, err error) observability.Failure {
	f := observability.Failure{
		Op:      name,
		Kind:    runner.Kind(err),
		Message: outcome.Text,
		Err:     err,
		Status:  http.StatusUnprocessableEntity,
	}

	if !runner.IsRejection(err) {
		f.Status = http.StatusInternalServerError
		f.Message = "calculation failed"
	}
	if f.Message == "" {
		f.Message = err.Error()
	}
	return f
}
