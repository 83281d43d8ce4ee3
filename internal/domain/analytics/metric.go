// Package analytics holds the pure player analytics: derived metric generation,
// cohort statistics, weighted comparison scores, tie-aware ranking and search.
// Nothing in here touches storage; callers pass the cohort snapshot in.
package analytics

import (
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// Metric is a named numeric attribute of a player, stored or synthetic.
type Metric string

// Stored metrics read straight from the player row.
const (
	MetricGoals                 Metric = "goals"
	MetricAssists               Metric = "assists"
	MetricGoalsAssists          Metric = "goals_assists"
	MetricGoalsNoPenalty        Metric = "goals_no_penalty"
	MetricMatchesPlayed         Metric = "matches_played"
	MetricMatchesStarted        Metric = "matches_started"
	MetricMinutesPlayed         Metric = "minutes_played"
	MetricMinutes90s            Metric = "minutes_90s"
	MetricPenaltiesMade         Metric = "penalties_made"
	MetricPenaltiesAttempted    Metric = "penalties_attempted"
	MetricYellowCards           Metric = "yellow_cards"
	MetricRedCards              Metric = "red_cards"
	MetricExpectedGoals         Metric = "expected_goals"
	MetricExpectedAssists       Metric = "expected_assists"
	MetricProgressivePasses     Metric = "progressive_passes"
	MetricProgressiveCarries    Metric = "progressive_carries"
	MetricProgressiveDribbles   Metric = "progressive_dribbles"
	MetricGoalsPer90            Metric = "goals_per90"
	MetricAssistsPer90          Metric = "assists_per90"
	MetricGoalsAssistsPer90     Metric = "goals_assists_per90"
	MetricGoalsNoPenaltyPer90   Metric = "goals_no_penalty_per90"
	MetricExpectedGoalsPer90    Metric = "expected_goals_per90"
	MetricExpectedAssistsPer90  Metric = "expected_assists_per90"
	MetricProgressivePassesP90  Metric = "progressive_passes_per90"
	MetricProgressiveCarriesP90 Metric = "progressive_carries_per90"
	MetricCardsPer90            Metric = "cards_per90"
)

// Synthetic metrics produced by the Generator.
const (
	MetricSavesPer90           Metric = "saves_per90"
	MetricTotalSaves           Metric = "total_saves"
	MetricCleanSheets          Metric = "clean_sheets"
	MetricCleanSheetPercentage Metric = "clean_sheet_percentage"
	MetricGoalsPrevented       Metric = "goals_prevented"
	MetricPenaltySaves         Metric = "penalty_saves"
	MetricTacklesPer90         Metric = "tackles_per90"
	MetricInterceptionsPer90   Metric = "interceptions_per90"
	MetricAerialDuelsPer90     Metric = "aerial_duels_per90"
	MetricAerialDuelWinRate    Metric = "aerial_duel_win_rate"
	MetricPassingAccuracy      Metric = "passing_accuracy"
	MetricKeyPassesPer90       Metric = "key_passes_per90"
	MetricDribblesPer90        Metric = "dribbles_per90"
	MetricDribbleSuccessRate   Metric = "dribble_success_rate"
)

// MetricFunc resolves one metric for one player.
type MetricFunc func(player.Player) float64

var storedMetrics = map[Metric]MetricFunc{
	MetricGoals:                func(p player.Player) float64 { return float64(p.Goals) },
	MetricAssists:              func(p player.Player) float64 { return float64(p.Assists) },
	MetricGoalsAssists:         func(p player.Player) float64 { return float64(p.Goals + p.Assists) },
	MetricGoalsNoPenalty:       func(p player.Player) float64 { return float64(p.GoalsNoPenalty) },
	MetricMatchesPlayed:        func(p player.Player) float64 { return float64(p.MatchesPlayed) },
	MetricMatchesStarted:       func(p player.Player) float64 { return float64(p.MatchesStarted) },
	MetricMinutesPlayed:        func(p player.Player) float64 { return float64(p.MinutesPlayed) },
	MetricMinutes90s:           func(p player.Player) float64 { return p.Minutes90s },
	MetricPenaltiesMade:        func(p player.Player) float64 { return float64(p.PenaltiesMade) },
	MetricPenaltiesAttempted:   func(p player.Player) float64 { return float64(p.PenaltiesAttempted) },
	MetricYellowCards:          func(p player.Player) float64 { return float64(p.YellowCards) },
	MetricRedCards:             func(p player.Player) float64 { return float64(p.RedCards) },
	MetricExpectedGoals:        func(p player.Player) float64 { return p.ExpectedGoals },
	MetricExpectedAssists:      func(p player.Player) float64 { return p.ExpectedAssists },
	MetricProgressivePasses:    func(p player.Player) float64 { return float64(p.ProgressivePasses) },
	MetricProgressiveCarries:   func(p player.Player) float64 { return float64(p.ProgressiveCarries) },
	MetricProgressiveDribbles:  func(p player.Player) float64 { return float64(p.ProgressiveDribbles) },
	MetricGoalsPer90:           func(p player.Player) float64 { return p.GoalsPer90 },
	MetricAssistsPer90:         func(p player.Player) float64 { return p.AssistsPer90 },
	MetricGoalsAssistsPer90:    func(p player.Player) float64 { return p.GoalsAssistsPer90 },
	MetricGoalsNoPenaltyPer90:  func(p player.Player) float64 { return p.GoalsNoPenaltyPer90 },
	MetricExpectedGoalsPer90:   func(p player.Player) float64 { return p.ExpectedGoalsPer90 },
	MetricExpectedAssistsPer90: func(p player.Player) float64 { return p.ExpectedAssistsPer90 },
	MetricProgressivePassesP90: func(p player.Player) float64 {
		return clampedPer90(float64(p.ProgressivePasses), p.Minutes90s)
	},
	MetricProgressiveCarriesP90: func(p player.Player) float64 {
		return clampedPer90(float64(p.ProgressiveCarries), p.Minutes90s)
	},
	MetricCardsPer90: func(p player.Player) float64 {
		return clampedPer90(float64(p.YellowCards+p.RedCards), p.Minutes90s)
	},
}

var syntheticMetrics = map[Metric]struct{}{
	MetricSavesPer90:           {},
	MetricTotalSaves:           {},
	MetricCleanSheets:          {},
	MetricCleanSheetPercentage: {},
	MetricGoalsPrevented:       {},
	MetricPenaltySaves:         {},
	MetricTacklesPer90:         {},
	MetricInterceptionsPer90:   {},
	MetricAerialDuelsPer90:     {},
	MetricAerialDuelWinRate:    {},
	MetricPassingAccuracy:      {},
	MetricKeyPassesPer90:       {},
	MetricDribblesPer90:        {},
	MetricDribbleSuccessRate:   {},
}

var countMetrics = map[Metric]struct{}{
	MetricGoals:               {},
	MetricAssists:             {},
	MetricGoalsAssists:        {},
	MetricGoalsNoPenalty:      {},
	MetricMatchesPlayed:       {},
	MetricMatchesStarted:      {},
	MetricMinutesPlayed:       {},
	MetricPenaltiesMade:       {},
	MetricPenaltiesAttempted:  {},
	MetricYellowCards:         {},
	MetricRedCards:            {},
	MetricProgressivePasses:   {},
	MetricProgressiveCarries:  {},
	MetricProgressiveDribbles: {},
	MetricCleanSheets:         {},
	MetricPenaltySaves:        {},
}

// ParseMetric normalizes a user supplied metric name.
func ParseMetric(raw string) (Metric, bool) {
	m := Metric(strings.ToLower(strings.TrimSpace(raw)))
	if m.IsStored() || m.IsSynthetic() {
		return m, true
	}
	return "", false
}

func (m Metric) IsStored() bool {
	_, ok := storedMetrics[m]
	return ok
}

func (m Metric) IsSynthetic() bool {
	_, ok := syntheticMetrics[m]
	return ok
}

// IsCount reports whether values of m are whole counts rather than rates.
func (m Metric) IsCount() bool {
	_, ok := countMetrics[m]
	return ok
}

// Resolver turns metric names into values. Stored metrics come from the row,
// synthetic ones from a freshly generated bundle for the resolver's category.
// A zero category means "use each player's own category".
type Resolver struct {
	generator Generator
	category  player.Category
}

func NewResolver(category player.Category) Resolver {
	return Resolver{generator: NewGenerator(), category: category}
}

func (r Resolver) Value(p player.Player, m Metric) float64 {
	if fn, ok := storedMetrics[m]; ok {
		return fn(p)
	}
	if !m.IsSynthetic() {
		return 0
	}
	return r.generator.Generate(p, r.categoryFor(p))[m]
}

// Func binds the resolver to one metric.
func (r Resolver) Func(m Metric) MetricFunc {
	if fn, ok := storedMetrics[m]; ok {
		return fn
	}
	return func(p player.Player) float64 {
		return r.Value(p, m)
	}
}

// Bundle returns the full synthetic bundle for p.
func (r Resolver) Bundle(p player.Player) Bundle {
	return r.generator.Generate(p, r.categoryFor(p))
}

func (r Resolver) categoryFor(p player.Player) player.Category {
	if r.category == "" || r.category == player.CategoryUnknown {
		return p.Category()
	}
	return r.category
}
