package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	const site = "https://stats.example.com"

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantCode    int
		wantOrigin  string
		wantVary    bool
		wantHeaders bool
	}{
		{name: "configured origin", allowed: []string{" " + site + " "}, method: http.MethodGet, origin: site, wantCode: http.StatusOK, wantOrigin: site, wantVary: true, wantHeaders: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: site, wantCode: http.StatusNoContent, wantOrigin: "*", wantHeaders: true},
		{name: "unknown origin", allowed: []string{"https://other.example.com"}, method: http.MethodGet, origin: site, wantCode: http.StatusOK},
		{name: "unknown origin preflight", allowed: []string{"https://other.example.com"}, method: http.MethodOptions, origin: site, wantCode: http.StatusNoContent},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodOptions, wantCode: http.StatusOK},
		{name: "no configured origins", method: http.MethodGet, origin: site, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/v1/players/top", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantVary, rec.Header().Get("Vary") == "Origin")
			if tt.wantHeaders {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-API-Key")
				assert.Equal(t, requestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /HEALTHZ "} {
		assert.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/players/top", "/v1/leagues/Serie A", "/", "/mcp"} {
		assert.True(t, shouldTraceRequest(path), path)
	}
}
