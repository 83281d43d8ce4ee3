package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

func TestSeedPlayersAreValid(t *testing.T) {
	t.Parallel()

	for _, p := range SeedPlayers() {
		if err := p.Validate(); err != nil {
			t.Fatalf("invalid seed row %q: %v", p.Name, err)
		}
	}
}

func TestPlayerRepository_ListFilterOrderLimit(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	items, err := repo.List(ctx, player.Filter{
		Competition: CompetitionPremierLeague,
		OrderBy:     []player.Order{{Field: player.OrderByGoals, Desc: true}},
		Limit:       2,
	})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("unexpected count: got=%d want=2", len(items))
	}
	if items[0].Name != "Erling Haaland" || items[1].Name != "Cole Palmer" {
		t.Fatalf("unexpected order: got=%s,%s", items[0].Name, items[1].Name)
	}

	played, err := repo.List(ctx, player.Filter{Competition: CompetitionBundesliga, OnlyPlayed: true})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, p := range played {
		if p.MinutesPlayed == 0 {
			t.Fatalf("only played filter returned %q", p.Name)
		}
	}
}

func TestPlayerRepository_CompetitionsAndAges(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	competitions, err := repo.ListCompetitions(ctx)
	if err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	want := []string{CompetitionBundesliga, CompetitionLaLiga, CompetitionPremierLeague, CompetitionSerieA}
	if len(competitions) != len(want) {
		t.Fatalf("unexpected competitions: got=%v want=%v", competitions, want)
	}
	for i := range want {
		if competitions[i] != want[i] {
			t.Fatalf("unexpected competitions: got=%v want=%v", competitions, want)
		}
	}

	ages, err := repo.ListAges(ctx, CompetitionSerieA)
	if err != nil {
		t.Fatalf("list ages: %v", err)
	}
	if len(ages) != 4 || ages[0] != 25 || ages[3] != 35 {
		t.Fatalf("unexpected ages: got=%v", ages)
	}
}

func TestPlayerRepository_ReplaceAllBumpsVersion(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	before, _ := repo.DatasetVersion(ctx)
	version, err := repo.ReplaceAll(ctx, []player.Player{{ID: 1, Name: "Solo", Squad: "Club"}})
	if err != nil {
		t.Fatalf("replace all: %v", err)
	}
	if version != before+1 {
		t.Fatalf("unexpected version: got=%d want=%d", version, before+1)
	}

	if _, ok, _ := repo.GetByID(ctx, 2); ok {
		t.Fatalf("old rows should be gone")
	}
	got, ok, _ := repo.GetByID(ctx, 1)
	if !ok || got.Name != "Solo" {
		t.Fatalf("unexpected player after replace: %+v", got)
	}
}

func TestPlayerRepository_Summarize(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	summary, err := repo.Summarize(context.Background(), player.Filter{Competition: CompetitionSerieA, Limit: 1})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Players != 4 || summary.Teams != 1 || summary.Goals != 38 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.TopScorerName != "Lautaro Martínez" {
		t.Fatalf("unexpected top scorer: got=%s", summary.TopScorerName)
	}
}
