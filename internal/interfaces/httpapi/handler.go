package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type Handler struct {
	searchService     *usecase.SearchService
	rankingService    *usecase.RankingService
	comparisonService *usecase.ComparisonService
	benchmarkService  *usecase.BenchmarkService
	setPieceService   *usecase.SetPieceService
	leagueService     *usecase.LeagueService
	playerService     *usecase.PlayerService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	searchService *usecase.SearchService,
	rankingService *usecase.RankingService,
	comparisonService *usecase.ComparisonService,
	benchmarkService *usecase.BenchmarkService,
	setPieceService *usecase.SetPieceService,
	leagueService *usecase.LeagueService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		searchService:     searchService,
		rankingService:    rankingService,
		comparisonService: comparisonService,
		benchmarkService:  benchmarkService,
		setPieceService:   setPieceService,
		leagueService:     leagueService,
		playerService:     playerService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryInt reads an optional integer query parameter. Malformed values are
// treated as absent.
func queryInt(r *http.Request, key string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func queryIntPtr(r *http.Request, key string) *int {
	value, ok := queryInt(r, key)
	if !ok {
		return nil
	}
	return &value
}

func pathPlayerID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("playerID"))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, raw)
	}
	return value, nil
}
