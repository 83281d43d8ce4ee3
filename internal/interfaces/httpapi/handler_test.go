package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-stats/internal/interfaces/presenter"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *errorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewSearchService(repo),
		usecase.NewRankingService(repo),
		usecase.NewComparisonService(repo, analytics.NewScorer()),
		usecase.NewBenchmarkService(repo),
		usecase.NewSetPieceService(repo),
		usecase.NewLeagueService(repo),
		usecase.NewPlayerService(repo),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func doRequest[T any](t *testing.T, router http.Handler, method, target, body string) (int, envelope[T]) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %s %s response: %v (body=%s)", method, target, err, rec.Body.String())
	}
	return rec.Code, out
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest[map[string]string](t, router, http.MethodGet, "/healthz", "")
	if code != http.StatusOK || body.Data["status"] != "ok" {
		t.Fatalf("unexpected healthz response: code=%d body=%+v", code, body)
	}
}

func TestSearchPlayers(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest[[]presenter.PlayerSummaryDTO](t, router, http.MethodGet, "/v1/players/search?q=haa", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "Erling Haaland" {
		t.Fatalf("unexpected search result: %+v", body.Data)
	}

	code, body = doRequest[[]presenter.PlayerSummaryDTO](t, router, http.MethodGet, "/v1/players/search?q=", "")
	if code != http.StatusOK || len(body.Data) != 0 {
		t.Fatalf("blank query should return an empty list, got code=%d data=%+v", code, body.Data)
	}
}

func TestTopPlayers(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest[presenter.TopPlayersDTO](t, router, http.MethodGet, "/v1/players/top?limit=abc", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body.Data.Limit != 10 || body.Data.Metric != "goals" {
		t.Fatalf("expected default metric and limit, got metric=%s limit=%d", body.Data.Metric, body.Data.Limit)
	}
	if len(body.Data.Players) == 0 || body.Data.Players[0].Name != "Harry Kane" || body.Data.Players[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", body.Data.Players)
	}
	if body.Data.TotalCount != 23 {
		t.Fatalf("players without minutes must be excluded, total_count=%d", body.Data.TotalCount)
	}
	if len(body.Data.AvailableLeagues) != 4 {
		t.Fatalf("unexpected available leagues: %v", body.Data.AvailableLeagues)
	}
}

func TestTopPlayers_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "unknown league", target: "/v1/players/top?league=Ligue%201", want: http.StatusNotFound},
		{name: "unsupported metric", target: "/v1/players/top?metric=height", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doRequest[any](t, router, http.MethodGet, tt.target, "")
			if code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, code)
			}
			if body.Error == nil || body.Error.Errors[0].Domain != errorDomain {
				t.Fatalf("expected error envelope, got %+v", body)
			}
		})
	}
}

func TestComparePlayers(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest[presenter.ComparisonDTO](t, router, http.MethodPost, "/v1/players/compare",
		`{"player1_id":1,"player2_id":19,"position":"FW"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%+v)", code, body.Error)
	}
	if body.Data.Player1.Name != "Erling Haaland" || body.Data.Player2.Name != "Harry Kane" {
		t.Fatalf("unexpected players: %+v / %+v", body.Data.Player1, body.Data.Player2)
	}
	switch body.Data.Scores.Winner {
	case "player1", "player2", "tie":
	default:
		t.Fatalf("unexpected winner tag %q", body.Data.Scores.Winner)
	}
	if len(body.Data.Scores.Breakdown) == 0 {
		t.Fatalf("expected a score breakdown")
	}

	_, swapped := doRequest[presenter.ComparisonDTO](t, router, http.MethodPost, "/v1/players/compare",
		`{"player1_id":19,"player2_id":1,"position":"FW"}`)
	if swapped.Data.Scores.Player1 != body.Data.Scores.Player2 || swapped.Data.Scores.Player2 != body.Data.Scores.Player1 {
		t.Fatalf("swapping players must swap scores: %+v vs %+v", body.Data.Scores, swapped.Data.Scores)
	}
}

func TestComparePlayers_InvalidPayload(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "unknown field", body: `{"player1_id":1,"player2_id":2,"position":"FW","extra":true}`, want: http.StatusBadRequest},
		{name: "missing position", body: `{"player1_id":1,"player2_id":2}`, want: http.StatusBadRequest},
		{name: "malformed json", body: `{"player1_id":`, want: http.StatusBadRequest},
		{name: "unknown player", body: `{"player1_id":1,"player2_id":999,"position":"FW"}`, want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := doRequest[any](t, router, http.MethodPost, "/v1/players/compare", tt.body)
			if code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, code)
			}
		})
	}
}

func TestPositionBenchmark(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest[presenter.BenchmarkDTO](t, router, http.MethodGet, "/v1/players/benchmark?position=GK", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body.Data.Category != "goalkeeper" || body.Data.CohortSize != 5 {
		t.Fatalf("unexpected benchmark cohort: category=%s size=%d", body.Data.Category, body.Data.CohortSize)
	}
	if _, ok := body.Data.LeagueAverages["saves_per90"]; !ok {
		t.Fatalf("expected saves_per90 in league averages: %v", body.Data.LeagueAverages)
	}
	if len(body.Data.TopPlayers["saves_per90"]) != 5 {
		t.Fatalf("expected every keeper in the top list, got %d", len(body.Data.TopPlayers["saves_per90"]))
	}

	code, _ = doRequest[any](t, router, http.MethodGet, "/v1/players/benchmark", "")
	if code != http.StatusBadRequest {
		t.Fatalf("missing position should be rejected, got %d", code)
	}
}

func TestPlayerDetailAndPercentiles(t *testing.T) {
	router := newTestRouter(t)

	code, detail := doRequest[presenter.PlayerDetailDTO](t, router, http.MethodGet, "/v1/players/1", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if detail.Data.LeagueContext.Competition != memory.CompetitionPremierLeague || len(detail.Data.LeagueContext.TopPlayers) == 0 {
		t.Fatalf("unexpected league context: %+v", detail.Data.LeagueContext)
	}
	if detail.Data.Category != "forward" || len(detail.Data.EstimatedMetrics) == 0 {
		t.Fatalf("unexpected derived metrics: category=%s estimated=%v", detail.Data.Category, detail.Data.EstimatedMetrics)
	}

	code, pct := doRequest[presenter.PercentileDTO](t, router, http.MethodGet, "/v1/players/1/percentiles", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if pct.Data.PlayerID != 1 || pct.Data.Position != "FW" {
		t.Fatalf("blank position should fall back to the player's own: %+v", pct.Data)
	}
	for metric, value := range pct.Data.Percentiles {
		if value < 0 || value > 100 {
			t.Fatalf("percentile %s out of range: %v", metric, value)
		}
	}

	for target, want := range map[string]int{
		"/v1/players/abc":             http.StatusBadRequest,
		"/v1/players/999":             http.StatusNotFound,
		"/v1/players/0":               http.StatusBadRequest,
		"/v1/players/999/percentiles": http.StatusNotFound,
	} {
		code, _ := doRequest[any](t, router, http.MethodGet, target, "")
		if code != want {
			t.Fatalf("%s: expected %d, got %d", target, want, code)
		}
	}
}

func TestSetPieceSpecialists(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest[[]presenter.SetPieceDTO](t, router, http.MethodGet, "/v1/players/set-pieces?age_min=x", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(body.Data) == 0 {
		t.Fatalf("expected set piece takers")
	}
	first := body.Data[0]
	if first.PenaltyAccuracy == nil || *first.PenaltyAccuracy != 100 {
		t.Fatalf("expected a perfect penalty taker first, got %+v", first)
	}

	seenNull := false
	for _, item := range body.Data {
		if item.PenaltyAccuracy == nil {
			seenNull = true
			continue
		}
		if seenNull {
			t.Fatalf("unknown accuracy must sort last: %+v", body.Data)
		}
	}
}

func TestLeagueRoutes(t *testing.T) {
	router := newTestRouter(t)

	code, leagues := doRequest[[]presenter.LeagueSummaryDTO](t, router, http.MethodGet, "/v1/leagues", "")
	if code != http.StatusOK || len(leagues.Data) != 4 {
		t.Fatalf("unexpected leagues: code=%d data=%+v", code, leagues.Data)
	}

	code, stats := doRequest[[]presenter.LeagueLeadersDTO](t, router, http.MethodGet, "/v1/leagues/stats", "")
	if code != http.StatusOK || len(stats.Data) != 4 {
		t.Fatalf("unexpected league stats: code=%d data=%+v", code, stats.Data)
	}

	code, detail := doRequest[presenter.LeagueDetailDTO](t, router, http.MethodGet, "/v1/leagues/detail?league=Serie%20A", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if detail.Data.Overview.Teams != 1 || detail.Data.Overview.TopScorerName != "Lautaro Martínez" {
		t.Fatalf("unexpected overview: %+v", detail.Data.Overview)
	}
	if detail.Data.GoalsByPosition["forward"] != 24 {
		t.Fatalf("unexpected goals by position: %v", detail.Data.GoalsByPosition)
	}

	code, _ = doRequest[any](t, router, http.MethodGet, "/v1/leagues/detail", "")
	if code != http.StatusBadRequest {
		t.Fatalf("missing league should be rejected, got %d", code)
	}
}
