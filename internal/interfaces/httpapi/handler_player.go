package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/football-stats/internal/interfaces/presenter"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type compareRequest struct {
	Player1ID int64  `json:"player1_id" validate:"required,gt=0"`
	Player2ID int64  `json:"player2_id" validate:"required,gt=0"`
	Position  string `json:"position" validate:"required,max=32"`
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := r.URL.Query().Get("q")
	position := r.URL.Query().Get("position")

	players, err := h.searchService.Search(ctx, query, position)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "query", query, "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.PlayerSummaries(players))
}

func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayers")
	defer span.End()

	limit, _ := queryInt(r, "limit")
	input := usecase.TopPlayersInput{
		Metric: r.URL.Query().Get("metric"),
		League: r.URL.Query().Get("league"),
		Age:    queryIntPtr(r, "age"),
		Limit:  limit,
	}

	result, err := h.rankingService.TopPlayers(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "top players failed", "metric", input.Metric, "league", input.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.TopPlayers(result))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	var req compareRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	req.Position = strings.TrimSpace(req.Position)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.comparisonService.Compare(ctx, usecase.CompareInput{
		Player1ID: req.Player1ID,
		Player2ID: req.Player2ID,
		Position:  req.Position,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed",
			"player1_id", req.Player1ID,
			"player2_id", req.Player2ID,
			"position", req.Position,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.Comparison(result))
}

func (h *Handler) PositionBenchmark(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PositionBenchmark")
	defer span.End()

	position := r.URL.Query().Get("position")
	league := r.URL.Query().Get("league")

	result, err := h.benchmarkService.PositionBenchmark(ctx, position, league)
	if err != nil {
		h.logger.WarnContext(ctx, "position benchmark failed", "position", position, "league", league, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.Benchmark(result))
}

func (h *Handler) PositionPercentile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PositionPercentile")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	position := r.URL.Query().Get("position")

	result, err := h.benchmarkService.PositionPercentile(ctx, playerID, position)
	if err != nil {
		h.logger.WarnContext(ctx, "position percentile failed", "player_id", playerID, "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.Percentile(result))
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.playerService.GetPlayerDetail(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.PlayerDetail(detail))
}

func (h *Handler) SetPieceSpecialists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPieceSpecialists")
	defer span.End()

	minMinutes, _ := queryInt(r, "min_minutes")
	filter := usecase.SetPieceFilter{
		League:     r.URL.Query().Get("league"),
		Position:   r.URL.Query().Get("position"),
		AgeMin:     queryIntPtr(r, "age_min"),
		AgeMax:     queryIntPtr(r, "age_max"),
		MinMinutes: minMinutes,
	}

	profiles, err := h.setPieceService.Specialists(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "set piece specialists failed", "league", filter.League, "position", filter.Position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.SetPieces(profiles))
}
