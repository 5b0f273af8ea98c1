package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNewTracer(t *testing.T) {
	tracer := NewTracer(tracenoop.NewTracerProvider())
	if tracer == nil || tracer.tracer == nil {
		t.Fatal("NewTracer() should return a usable tracer")
	}

	if NewTracer(nil).tracer == nil {
		t.Error("NewTracer(nil) should fall back to a no-op tracer")
	}
	if GlobalTracer().tracer == nil {
		t.Error("GlobalTracer() should return a usable tracer")
	}
}

func TestTracer_StartSpans(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.StartTranslate(context.Background(), "A == 1")
	span.End()
	if ctx == nil {
		t.Error("StartTranslate() should return non-nil context")
	}

	ctx, span = tracer.StartBuild(context.Background(), "http://h", QueryTopAttr(1))
	span.End()
	if ctx == nil {
		t.Error("StartBuild() should return non-nil context")
	}
}

func TestLoggerWithTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	if LoggerWithTrace(context.Background(), logger) != logger {
		t.Error("LoggerWithTrace() without span context should return the logger unchanged")
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02, 0x03},
		SpanID:  trace.SpanID{0x04, 0x05},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	LoggerWithTrace(ctx, logger).Info("hello")

	out := buf.String()
	if !strings.Contains(out, LogFieldTraceID+"="+sc.TraceID().String()) {
		t.Errorf("missing trace id in %q", out)
	}
	if !strings.Contains(out, LogFieldSpanID+"="+sc.SpanID().String()) {
		t.Errorf("missing span id in %q", out)
	}
}
