package logging

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/riskibarqy/football-stats/internal/platform/id"
)

// contextFields returns request_id, trace_id and span_id when ctx carries them.
func contextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	var out []zap.Field
	if requestID := id.RequestIDFromContext(ctx); requestID != "" {
		out = append(out, zap.String("request_id", requestID))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		out = append(out,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return out
}

// zapFields turns alternating key/value args into fields. A non-string key
// becomes "arg" and a trailing key without value logs null.
func zapFields(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2+3)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}
		if i+1 == len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		switch v := args[i+1].(type) {
		case error:
			out = append(out, zap.NamedError(key, v))
		case fmt.Stringer:
			out = append(out, zap.Stringer(key, v))
		default:
			out = append(out, zap.Any(key, v))
		}
	}
	return out
}
