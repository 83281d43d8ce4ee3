package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	apiVersion          = "2.0"
	errorDomain         = "football-stats"
	internalServerError = "internal server error"
)

// responseEnvelope follows the Google JSON style guide: data on success,
// error otherwise, never both.
type responseEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	sentinel error
	code     int
	status   string
	reason   string
}

var (
	errorClasses = []errorClass{
		{sentinel: usecase.ErrInvalidInput, code: http.StatusBadRequest, status: "INVALID_ARGUMENT", reason: "invalidInput"},
		{sentinel: usecase.ErrNotFound, code: http.StatusNotFound, status: "NOT_FOUND", reason: "notFound"},
		{sentinel: usecase.ErrUnauthorized, code: http.StatusUnauthorized, status: "UNAUTHENTICATED", reason: "unauthorized"},
		{sentinel: usecase.ErrDependencyUnavailable, code: http.StatusServiceUnavailable, status: "UNAVAILABLE", reason: "dependencyUnavailable"},
	}
	internalClass = errorClass{code: http.StatusInternalServerError, status: "INTERNAL", reason: "internalError"}

	errPanic = errors.New("handler panicked")

	encodeFailureBody = []byte(`{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}`)
)

func classify(err error) errorClass {
	for _, class := range errorClasses {
		if errors.Is(err, class.sentinel) {
			return class
		}
	}
	return internalClass
}

// writeJSON encodes into a pooled buffer before touching the header, so an
// encoding failure can still become a 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(encodeFailureBody)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, responseEnvelope{APIVersion: apiVersion, Data: data})
}

// writeError maps err to its status. Messages of internal errors never reach
// the client; they are recorded on the request span instead.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classify(err)
	message := err.Error()
	if class.code == http.StatusInternalServerError {
		message = internalServerError
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, class.status)
	}

	writeJSON(ctx, w, class.code, responseEnvelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.code,
			Message: message,
			Status:  class.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.reason, Message: message}},
		},
	})
}
