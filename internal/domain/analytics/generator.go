package analytics

import (
	"math"
	"math/rand/v2"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// minDivisor is the floor for every minutes_90s divisor in generated metrics.
const minDivisor = 0.1

// bundleStream separates bundle draws from other per-player seeded sequences.
const bundleStream uint64 = 0x9e3779b97f4a7c15

// Bundle is the derived metric set for one player. Synthetic values are
// plausible estimates, not measured data.
type Bundle map[Metric]float64

// Generator derives position specific metrics. It holds no random state: every
// Generate call seeds its own source from the player id, so the same player
// always yields the same bundle regardless of call order or concurrency.
type Generator struct{}

func NewGenerator() Generator {
	return Generator{}
}

func (g Generator) Generate(p player.Player, category player.Category) Bundle {
	rng := newPlayerRand(p.ID, bundleStream)

	switch category {
	case player.CategoryGoalkeeper:
		return goalkeeperBundle(p, rng)
	case player.CategoryDefender:
		return defenderBundle(p, rng)
	case player.CategoryMidfielder, player.CategoryForward:
		return attackerBundle(p, rng)
	default:
		return Bundle{}
	}
}

func goalkeeperBundle(p player.Player, rng *rand.Rand) Bundle {
	savesPer90 := uniform(rng, 2.5, 4.5)

	concededPer90 := p.GoalsPer90
	if concededPer90 == 0 {
		concededPer90 = uniform(rng, 0.8, 1.5)
	}

	cleanSheetRate := clamp(0.5-(concededPer90-1.0)*0.2, 0.1, 0.5)
	cleanSheets := math.Round(float64(p.MatchesPlayed) * cleanSheetRate)

	cleanSheetPct := 0.0
	if p.MatchesPlayed > 0 {
		cleanSheetPct = cleanSheets / float64(p.MatchesPlayed) * 100
	}

	expectedAgainst := p.ExpectedGoalsPer90
	if expectedAgainst == 0 {
		expectedAgainst = concededPer90
	}
	prevented := math.Max(0, (expectedAgainst-concededPer90)*p.Minutes90s)

	maxPenaltySaves := min(3, p.MatchesPlayed/10)
	penaltySaves := rng.IntN(maxPenaltySaves + 1)

	return Bundle{
		MetricSavesPer90:           round2(savesPer90),
		MetricTotalSaves:           round2(savesPer90 * p.Minutes90s),
		MetricCleanSheets:          cleanSheets,
		MetricCleanSheetPercentage: round2(cleanSheetPct),
		MetricGoalsPrevented:       round2(prevented),
		MetricPenaltySaves:         float64(penaltySaves),
	}
}

func defenderBundle(p player.Player, rng *rand.Rand) Bundle {
	tackles := uniform(rng, 1.5, 3.5)
	interceptions := uniform(rng, 1.0, 2.5)
	aerials := uniform(rng, 2.0, 4.5)
	aerialWinRate := uniform(rng, 55, 70)

	base := 80.0
	switch {
	case p.ProgressivePasses > 100:
		base += 5
	case p.ProgressivePasses < 30:
		base -= 5
	}
	passing := clamp(uniform(rng, base-5, base+5), 75, 90)

	return Bundle{
		MetricTacklesPer90:          round2(tackles),
		MetricInterceptionsPer90:    round2(interceptions),
		MetricAerialDuelsPer90:      round2(aerials),
		MetricAerialDuelWinRate:     round2(aerialWinRate),
		MetricPassingAccuracy:       round2(passing),
		MetricProgressivePassesP90:  round2(clampedPer90(float64(p.ProgressivePasses), p.Minutes90s)),
		MetricProgressiveCarriesP90: round2(clampedPer90(float64(p.ProgressiveCarries), p.Minutes90s)),
	}
}

func attackerBundle(p player.Player, rng *rand.Rand) Bundle {
	var keyPasses float64
	if p.Minutes90s > 0 {
		keyPasses = clampedPer90(p.ExpectedAssists, p.Minutes90s)
	} else {
		keyPasses = uniform(rng, 0.5, 2.0)
	}

	var dribbles float64
	if p.Minutes90s > 0 {
		dribbles = clampedPer90(float64(p.ProgressiveDribbles), p.Minutes90s)
	} else {
		dribbles = uniform(rng, 1.0, 3.0)
	}

	return Bundle{
		MetricKeyPassesPer90:        round2(keyPasses),
		MetricDribblesPer90:         round2(dribbles),
		MetricDribbleSuccessRate:    round2(uniform(rng, 50, 70)),
		MetricProgressivePassesP90:  round2(clampedPer90(float64(p.ProgressivePasses), p.Minutes90s)),
		MetricProgressiveCarriesP90: round2(clampedPer90(float64(p.ProgressiveCarries), p.Minutes90s)),
	}
}

func newPlayerRand(id int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(id), stream))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampedPer90(total, minutes90s float64) float64 {
	return total / math.Max(minutes90s, minDivisor)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return roundTo(v, 2)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
