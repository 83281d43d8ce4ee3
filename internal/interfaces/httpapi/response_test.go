package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body responseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiVersion, body.APIVersion)
	return body
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, []string{"Premier League", "Serie A"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Nil(t, body.Error)
	assert.Equal(t, []any{"Premier League", "Serie A"}, body.Data)
}

func TestWriteError_MapsSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
		wantReason string
		wantMsg    string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: unsupported metric height", usecase.ErrInvalidInput),
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
			wantReason: "invalidInput",
			wantMsg:    "invalid input: unsupported metric height",
		},
		{
			name:       "unknown league",
			err:        fmt.Errorf("%w: league=Ligue 1", usecase.ErrNotFound),
			wantCode:   http.StatusNotFound,
			wantStatus: "NOT_FOUND",
			wantReason: "notFound",
			wantMsg:    "resource not found: league=Ligue 1",
		},
		{
			name:       "bad api key",
			err:        fmt.Errorf("%w: invalid api key", usecase.ErrUnauthorized),
			wantCode:   http.StatusUnauthorized,
			wantStatus: "UNAUTHENTICATED",
			wantReason: "unauthorized",
			wantMsg:    "unauthorized: invalid api key",
		},
		{
			name:       "store timeout",
			err:        fmt.Errorf("%w: list players: %w", usecase.ErrDependencyUnavailable, context.DeadlineExceeded),
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "UNAVAILABLE",
			wantReason: "dependencyUnavailable",
			wantMsg:    "dependency unavailable: list players: context deadline exceeded",
		},
		{
			name:       "internal details are masked",
			err:        errors.New("pq: password authentication failed for user stats"),
			wantCode:   http.StatusInternalServerError,
			wantStatus: "INTERNAL",
			wantReason: "internalError",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			require.Equal(t, tt.wantCode, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Nil(t, body.Data)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantStatus, body.Error.Status)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			require.Len(t, body.Error.Errors, 1)
			assert.Equal(t, errorDomain, body.Error.Errors[0].Domain)
			assert.Equal(t, tt.wantReason, body.Error.Errors[0].Reason)
		})
	}
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL", body.Error.Status)
}
