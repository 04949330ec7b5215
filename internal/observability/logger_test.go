package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	old := Logger
	t.Cleanup(func() { Logger = old })

	if err := InitLogger("chatty", false); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if Logger != old {
		t.Fatal("expected Logger to stay untouched after a failed init")
	}
}

func TestInitLoggerAppliesLevel(t *testing.T) {
	old := Logger
	t.Cleanup(func() { Logger = old })

	if err := InitLogger("warn", false); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	if Logger.Core().Enabled(zap.InfoLevel) {
		t.Fatal("expected info to be disabled at warn level")
	}
	if !Logger.Core().Enabled(zap.WarnLevel) {
		t.Fatal("expected warn to be enabled")
	}
}

func TestLoggerWithTraceAddsSpanFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = old })

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	LoggerWithTrace(ctx).Info("traced")
	LoggerWithTrace(context.Background()).Info("untraced")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["trace_id"]; got != traceID.String() {
		t.Fatalf("expected trace_id %q, got %#v", traceID.String(), got)
	}
	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Fatal("did not expect trace_id without an active span")
	}
}
