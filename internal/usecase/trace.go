package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var usecaseTracer = otel.Tracer("github.com/riskibarqy/football-stats/internal/usecase")

// startUsecaseSpan only opens a child of an existing span. Calls made outside
// a traced request, such as the importer or tests, get a no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noop.Span{}
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
