package analytics

import (
	"maps"
	"math"
	"testing"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

func TestGenerateIsDeterministicPerPlayer(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()
	categories := []player.Category{
		player.CategoryGoalkeeper,
		player.CategoryDefender,
		player.CategoryMidfielder,
		player.CategoryForward,
	}
	p := player.Player{ID: 42, MatchesPlayed: 30, Minutes90s: 27.5, ProgressivePasses: 120}

	for _, category := range categories {
		first := gen.Generate(p, category)
		other := gen.Generate(player.Player{ID: 7, MatchesPlayed: 12}, category)
		second := gen.Generate(p, category)
		if !maps.Equal(first, second) {
			t.Fatalf("bundle for %s changed between calls: %v vs %v", category, first, second)
		}
		if len(other) == 0 {
			t.Fatalf("expected bundle for %s", category)
		}
	}
}

func TestGenerateZeroMinutesStaysFinite(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()
	p := player.Player{ID: 9, ProgressivePasses: 5, ProgressiveCarries: 2}

	for _, category := range player.AllCategories {
		bundle := gen.Generate(p, category)
		for metric, v := range bundle {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("metric %s for %s is not finite: %v", metric, category, v)
			}
		}
	}

	defender := gen.Generate(p, player.CategoryDefender)
	if got := defender[MetricProgressivePassesP90]; got != 50 {
		t.Fatalf("unexpected clamped progressive passes per90: got=%v want=50", got)
	}
	attacker := gen.Generate(p, player.CategoryForward)
	if got := attacker[MetricKeyPassesPer90]; got < 0.5 || got > 2.0 {
		t.Fatalf("key passes fallback out of range: got=%v", got)
	}
}

func TestGenerateGoalkeeperRanges(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()
	for id := int64(1); id <= 50; id++ {
		p := player.Player{ID: id, MatchesPlayed: 25, Minutes90s: 24}
		bundle := gen.Generate(p, player.CategoryGoalkeeper)

		if v := bundle[MetricSavesPer90]; v < 2.5 || v > 4.5 {
			t.Fatalf("saves_per90 out of range for id=%d: %v", id, v)
		}
		if v := bundle[MetricCleanSheets]; v < 0 || v > 25 {
			t.Fatalf("clean_sheets out of range for id=%d: %v", id, v)
		}
		if v := bundle[MetricPenaltySaves]; v < 0 || v > 2 {
			t.Fatalf("penalty_saves out of range for id=%d: %v", id, v)
		}
		if v := bundle[MetricGoalsPrevented]; v != 0 {
			t.Fatalf("goals_prevented should be zero without expected goals, id=%d: %v", id, v)
		}
	}

	idle := gen.Generate(player.Player{ID: 3}, player.CategoryGoalkeeper)
	if idle[MetricCleanSheetPercentage] != 0 || idle[MetricPenaltySaves] != 0 {
		t.Fatalf("unexpected idle goalkeeper bundle: %v", idle)
	}
}

func TestGenerateAttackerUsesStoredRates(t *testing.T) {
	t.Parallel()

	p := player.Player{ID: 11, Minutes90s: 10, ExpectedAssists: 3, ProgressiveDribbles: 25, ProgressivePasses: 40}
	bundle := NewGenerator().Generate(p, player.CategoryMidfielder)

	if got := bundle[MetricKeyPassesPer90]; got != 0.3 {
		t.Fatalf("unexpected key_passes_per90: got=%v want=0.3", got)
	}
	if got := bundle[MetricDribblesPer90]; got != 2.5 {
		t.Fatalf("unexpected dribbles_per90: got=%v want=2.5", got)
	}
	if got := bundle[MetricProgressivePassesP90]; got != 4 {
		t.Fatalf("unexpected progressive_passes_per90: got=%v want=4", got)
	}
	if got := bundle[MetricDribbleSuccessRate]; got < 50 || got > 70 {
		t.Fatalf("dribble_success_rate out of range: got=%v", got)
	}
}

func TestGenerateUnknownCategoryIsEmpty(t *testing.T) {
	t.Parallel()

	if bundle := NewGenerator().Generate(player.Player{ID: 1}, player.CategoryUnknown); len(bundle) != 0 {
		t.Fatalf("expected empty bundle, got=%v", bundle)
	}
}

func TestResolverFallsBackToGenerator(t *testing.T) {
	t.Parallel()

	p := player.Player{ID: 5, Position: "DF", Goals: 4, Minutes90s: 10}
	resolver := NewResolver("")

	if got := resolver.Value(p, MetricGoals); got != 4 {
		t.Fatalf("unexpected stored value: got=%v", got)
	}
	want := NewGenerator().Generate(p, player.CategoryDefender)[MetricTacklesPer90]
	if got := resolver.Value(p, MetricTacklesPer90); got != want {
		t.Fatalf("unexpected synthetic value: got=%v want=%v", got, want)
	}
	if got := resolver.Value(p, MetricSavesPer90); got != 0 {
		t.Fatalf("metric outside category bundle should be zero, got=%v", got)
	}
	if got := NewResolver(player.CategoryGoalkeeper).Value(p, MetricSavesPer90); got == 0 {
		t.Fatalf("expected goalkeeper bundle value when category forced")
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	if m, ok := ParseMetric(" Goals "); !ok || m != MetricGoals {
		t.Fatalf("unexpected parse: %q %v", m, ok)
	}
	if _, ok := ParseMetric("shirt_number"); ok {
		t.Fatalf("expected unknown metric")
	}
	if !MetricCleanSheets.IsCount() {
		t.Fatalf("clean sheets should be a count")
	}
	if MetricGoalsPer90.IsCount() {
		t.Fatalf("goals_per90 should be a rate")
	}
}
