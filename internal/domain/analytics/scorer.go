package analytics

import (
	"math"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

type Winner string

const (
	WinnerPlayer1 Winner = "player1"
	WinnerPlayer2 Winner = "player2"
	WinnerTie     Winner = "tie"
)

// ScoringMode selects how raw values become 0..100 scores.
type ScoringMode int

const (
	// ScoringModeZScore normalizes against the cohort distribution.
	ScoringModeZScore ScoringMode = iota
	// ScoringModeLegacy scales raw values linearly by 10 with no cohort.
	ScoringModeLegacy
)

const (
	neutralScore    = 50.0
	zScoreScale     = 10.0
	legacyScale     = 10.0
	zScoreTieMargin = 0.1
	legacyTieMargin = 0.5
	maxNormalized   = 100.0
	minNormalized   = 0.0
)

// MetricScore is one row of a comparison breakdown.
type MetricScore struct {
	Metric     Metric
	Weight     float64
	Player1    float64
	Player2    float64
	Player1Raw float64
	Player2Raw float64
	Player1Z   float64
	Player2Z   float64
}

type Comparison struct {
	Player1Score float64
	Player2Score float64
	Winner       Winner
	Breakdown    []MetricScore
}

// PlayerScore is a single player's weighted score against a cohort.
type PlayerScore struct {
	Total      float64
	Normalized map[Metric]float64
	Raw        map[Metric]float64
	ZScores    map[Metric]float64
}

type Scorer struct {
	mode    ScoringMode
	weights func(player.Category) WeightTable
}

type ScorerOption func(*Scorer)

func WithScoringMode(mode ScoringMode) ScorerOption {
	return func(s *Scorer) {
		s.mode = mode
	}
}

// WithWeights overrides the per-category weight lookup.
func WithWeights(fn func(player.Category) WeightTable) ScorerOption {
	return func(s *Scorer) {
		if fn != nil {
			s.weights = fn
		}
	}
}

func NewScorer(opts ...ScorerOption) Scorer {
	s := Scorer{mode: ScoringModeZScore, weights: WeightsFor}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Scorer) Mode() ScoringMode {
	return s.mode
}

// Score weighs p's metrics for category against the cohort held by table.
func (s Scorer) Score(p player.Player, category player.Category, table *StatsTable) PlayerScore {
	weights := s.weights(category)
	out := PlayerScore{
		Normalized: make(map[Metric]float64, len(weights)),
		Raw:        make(map[Metric]float64, len(weights)),
		ZScores:    make(map[Metric]float64, len(weights)),
	}
	resolver := table.Resolver()

	for _, w := range weights {
		raw := resolver.Value(p, w.Metric)
		normalized, z := s.normalize(raw, w, table)

		out.Raw[w.Metric] = raw
		out.ZScores[w.Metric] = z
		out.Normalized[w.Metric] = normalized
		out.Total += normalized * math.Abs(w.Value)
	}
	return out
}

// Compare scores both players against the same cohort. Swapping the players
// swaps the winner tag and leaves both totals unchanged.
func (s Scorer) Compare(p1, p2 player.Player, category player.Category, cohort []player.Player) Comparison {
	table := NewStatsTable(cohort, NewResolver(category))
	first := s.Score(p1, category, table)
	second := s.Score(p2, category, table)

	weights := s.weights(category)
	breakdown := make([]MetricScore, 0, len(weights))
	for _, w := range weights {
		breakdown = append(breakdown, MetricScore{
			Metric:     w.Metric,
			Weight:     w.Value,
			Player1:    round2(first.Normalized[w.Metric]),
			Player2:    round2(second.Normalized[w.Metric]),
			Player1Raw: round2(first.Raw[w.Metric]),
			Player2Raw: round2(second.Raw[w.Metric]),
			Player1Z:   round2(first.ZScores[w.Metric]),
			Player2Z:   round2(second.ZScores[w.Metric]),
		})
	}

	return Comparison{
		Player1Score: round2(first.Total),
		Player2Score: round2(second.Total),
		Winner:       s.winner(first.Total, second.Total),
		Breakdown:    breakdown,
	}
}

func (s Scorer) normalize(raw float64, w Weight, table *StatsTable) (float64, float64) {
	if s.mode == ScoringModeLegacy {
		return LegacyNormalize(raw, w.Value), 0
	}

	stats, ok := table.Stats(w.Metric)
	if !ok || stats.N <= 1 {
		return neutralScore, 0
	}
	z := stats.ZScore(raw)
	if w.Value < 0 {
		z = -z
	}
	return NormalizeZ(z), z
}

// NormalizeZ maps a z-score onto 0..100 with the cohort mean at 50.
func NormalizeZ(z float64) float64 {
	return clamp(neutralScore+z*zScoreScale, minNormalized, maxNormalized)
}

// LegacyNormalize is the cohort-free linear mode: raw×10 clamped to 0..100,
// inverted for negative weights.
func LegacyNormalize(raw, weight float64) float64 {
	normalized := clamp(raw*legacyScale, minNormalized, maxNormalized)
	if weight < 0 {
		return maxNormalized - normalized
	}
	return normalized
}

func (s Scorer) winner(score1, score2 float64) Winner {
	margin := zScoreTieMargin
	if s.mode == ScoringModeLegacy {
		margin = legacyTieMargin
	}
	switch {
	case math.Abs(score1-score2) < margin:
		return WinnerTie
	case score1 > score2:
		return WinnerPlayer1
	default:
		return WinnerPlayer2
	}
}
