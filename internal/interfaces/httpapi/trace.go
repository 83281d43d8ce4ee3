package httpapi

import (
	"context"
	"strings"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("github.com/riskibarqy/football-stats/internal/interfaces/httpapi")

// startSpan opens a child span for exported handler methods only. Middleware
// and response helpers run inside the otelhttp request span and get a no-op,
// as does anything without a parent, such as /healthz which is not traced.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !tracedSpan(name) || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noop.Span{}
	}
	return apiTracer.Start(ctx, name)
}

func tracedSpan(name string) bool {
	method, ok := strings.CutPrefix(name, handlerSpanPrefix)
	if !ok || method == "" {
		return false
	}
	return unicode.IsUpper([]rune(method)[0])
}
