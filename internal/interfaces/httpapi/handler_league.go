package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-stats/internal/interfaces/presenter"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.Leagues(leagues))
}

func (h *Handler) LeagueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStats")
	defer span.End()

	stats, err := h.leagueService.LeagueStats(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "league stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.LeagueStats(stats))
}

func (h *Handler) LeagueDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueDetail")
	defer span.End()

	league := r.URL.Query().Get("league")
	detail, err := h.leagueService.LeagueDetail(ctx, league)
	if err != nil {
		h.logger.WarnContext(ctx, "league detail failed", "league", league, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presenter.LeagueDetail(detail))
}
