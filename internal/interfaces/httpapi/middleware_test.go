package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type fixedGenerator string

func (g fixedGenerator) NewID() (string, error) {
	return string(g), nil
}

func TestRequireAPIKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAPIKey("secret", next)

	tests := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{name: "missing", want: http.StatusUnauthorized},
		{name: "wrong key", header: "X-API-Key", value: "nope", want: http.StatusUnauthorized},
		{name: "api key header", header: "X-API-Key", value: "secret", want: http.StatusOK},
		{name: "bearer token", header: "Authorization", value: "Bearer secret", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRequireAPIKey_EmptyKeyDisablesCheck(t *testing.T) {
	handler := RequireAPIKey(" ", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(fixedGenerator("generated-id"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = id.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
	if seen != "generated-id" || rec.Header().Get("X-Request-ID") != "generated-id" {
		t.Fatalf("expected generated id, ctx=%q header=%q", seen, rec.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	req.Header.Set("X-Request-ID", "client-abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "client-abc" || rec.Header().Get("X-Request-ID") != "client-abc" {
		t.Fatalf("expected caller id to be reused, ctx=%q header=%q", seen, rec.Header().Get("X-Request-ID"))
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	req.Header.Set("X-Request-ID", "has space")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "generated-id" {
		t.Fatalf("expected unsafe caller id to be replaced, got %q", seen)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/top", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"INTERNAL"`) {
		t.Fatalf("expected internal error envelope, got %s", rec.Body.String())
	}
}

func TestRequestLogging_CapturesStatus(t *testing.T) {
	handler := RequestLogging(logging.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status must pass through the recorder, got %d", rec.Code)
	}
}
