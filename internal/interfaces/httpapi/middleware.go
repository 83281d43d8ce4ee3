package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	requestIDHeader = "X-Request-ID"
	apiKeyHeader    = "X-API-Key"
)

// RequireAPIKey guards next with a static key sent as X-API-Key or a bearer
// token. An empty key disables the check.
func RequireAPIKey(key string, next http.Handler) http.Handler {
	expected := strings.TrimSpace(key)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		provided := strings.TrimSpace(r.Header.Get(apiKeyHeader))
		if provided == "" {
			parts := strings.SplitN(strings.TrimSpace(r.Header.Get("Authorization")), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				provided = strings.TrimSpace(parts[1])
			}
		}
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			writeError(r.Context(), w, fmt.Errorf("%w: invalid api key", usecase.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestID reuses a sane caller supplied X-Request-ID or mints a new one,
// echoes it back and stores it on the request context.
func RequestID(generator id.Generator, next http.Handler) http.Handler {
	if generator == nil {
		generator = id.NewUUIDGenerator()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := id.SanitizeRequestID(r.Header.Get(requestIDHeader))
		if requestID == "" {
			generated, err := generator.NewID()
			if err == nil {
				requestID = generated
			}
		}
		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
		}
		next.ServeHTTP(w, r.WithContext(id.WithRequestID(r.Context(), requestID)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "http request", fields...)
		case !shouldTraceRequest(r.URL.Path):
			logger.DebugContext(ctx, "http request", fields...)
		default:
			logger.InfoContext(ctx, "http request", fields...)
		}
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "football-stats-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed := allowAll
		if !allowed {
			_, allowed = allowMap[origin]
		}
		if allowed {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type,Accept,X-API-Key,X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
