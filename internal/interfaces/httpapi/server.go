package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type route struct {
	pattern string
	handle  http.HandlerFunc
}

func routes(h *Handler) []route {
	return []route{
		{"GET /healthz", h.Healthz},

		{"GET /v1/players/search", h.SearchPlayers},
		{"GET /v1/players/top", h.TopPlayers},
		{"POST /v1/players/compare", h.ComparePlayers},
		{"GET /v1/players/benchmark", h.PositionBenchmark},
		{"GET /v1/players/set-pieces", h.SetPieceSpecialists},
		{"GET /v1/players/{playerID}", h.GetPlayerDetail},
		{"GET /v1/players/{playerID}/percentiles", h.PositionPercentile},

		{"GET /v1/leagues", h.ListLeagues},
		{"GET /v1/leagues/stats", h.LeagueStats},
		{"GET /v1/leagues/detail", h.LeagueDetail},
	}
}

// NewRouter mounts the REST routes behind the shared middleware chain.
func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	for _, r := range routes(handler) {
		mux.HandleFunc(r.pattern, r.handle)
	}
	return Wrap(mux, logger, corsAllowedOrigins)
}

// Wrap applies the middleware chain shared by the REST and MCP listeners,
// outermost first.
func Wrap(next http.Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	requestIDs := id.NewUUIDGenerator()
	chain := []func(http.Handler) http.Handler{
		RequestTracing,
		func(h http.Handler) http.Handler { return RequestID(requestIDs, h) },
		func(h http.Handler) http.Handler { return RequestLogging(logger, h) },
		func(h http.Handler) http.Handler { return CORS(corsAllowedOrigins, h) },
		func(h http.Handler) http.Handler { return recoverPanic(logger, h) },
	}
	for i := len(chain) - 1; i >= 0; i-- {
		next = chain[i](next)
	}
	return next
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
			writeError(r.Context(), w, errPanic)
		}()
		next.ServeHTTP(w, r)
	})
}
