package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnnotateSpan sets attrs on the span carried by ctx. Nothing happens when
// ctx carries no recording span.
func AnnotateSpan(ctx context.Context, attrs ...attribute.KeyValue) {
	if ctx == nil || len(attrs) == 0 {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attrs...)
}
