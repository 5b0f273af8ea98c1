package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Span names
const (
	SpanTranslate = "acumatica.filter.translate"
	SpanBuild     = "acumatica.query.build"
)

// Attribute keys used on spans other than the query option keys
const (
	AttrFilterTemplate = "acumatica.filter.template"
	AttrBaseURL        = "acumatica.query.base_url"
	AttrParamCount     = "acumatica.query.param_count"
)

// Log field names for trace correlation
const (
	LogFieldTraceID = "trace_id"
	LogFieldSpanID  = "span_id"
)

// Tracer wraps an OpenTelemetry tracer with span helpers for query building.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer from tp. A nil tp yields a no-op tracer.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		return NewNoopTracer()
	}
	return &Tracer{tracer: tp.Tracer(InstrumentationName)}
}

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{tracer: tracenoop.NewTracerProvider().Tracer("")}
}

// GlobalTracer creates a Tracer from the globally registered provider.
// It is resolved on every call so that providers installed after package
// initialization are picked up.
func GlobalTracer() *Tracer {
	return NewTracer(otel.GetTracerProvider())
}

// StartTranslate starts a span for translating a filter template.
func (t *Tracer) StartTranslate(ctx context.Context, template string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanTranslate, trace.WithAttributes(
		attribute.String(AttrFilterTemplate, template),
	))
}

// StartBuild starts a span for rendering query options onto baseURL.
func (t *Tracer) StartBuild(ctx context.Context, baseURL string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := make([]attribute.KeyValue, 0, len(attrs)+2)
	all = append(all, attribute.String(AttrBaseURL, baseURL), attribute.Int(AttrParamCount, len(attrs)))
	all = append(all, attrs...)
	return t.tracer.Start(ctx, SpanBuild, trace.WithAttributes(all...))
}

// LoggerWithTrace returns a logger enriched with trace context.
func LoggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return logger
	}
	return logger.With(
		slog.String(LogFieldTraceID, span.SpanContext().TraceID().String()),
		slog.String(LogFieldSpanID, span.SpanContext().SpanID().String()),
	)
}
