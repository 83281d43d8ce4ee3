package analytics

import (
	"math"
	"slices"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// Stats is the population summary of one metric over a cohort.
type Stats struct {
	Mean   float64
	StdDev float64
	N      int
}

// ComputeStats returns mean and population standard deviation. ok is false for
// an empty cohort, meaning "insufficient data".
func ComputeStats(values []float64) (Stats, bool) {
	n := len(values)
	if n == 0 {
		return Stats{}, false
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	squares := 0.0
	for _, v := range values {
		d := v - mean
		squares += d * d
	}

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(squares / float64(n)),
		N:      n,
	}, true
}

// ZScore is 0 when the cohort carries no signal.
func (s Stats) ZScore(v float64) float64 {
	if s.N <= 1 || s.StdDev == 0 {
		return 0
	}
	return (v - s.Mean) / s.StdDev
}

// Percentile is the inclusive rank of v: share of values <= v, in percent, 1 dp.
func Percentile(values []float64, v float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, x := range values {
		if x <= v {
			count++
		}
	}
	return roundTo(float64(count)/float64(len(values))*100, 1)
}

// CohortValues resolves fn for every cohort member, preserving order.
func CohortValues(cohort []player.Player, fn MetricFunc) []float64 {
	out := make([]float64, len(cohort))
	for i, p := range cohort {
		out[i] = fn(p)
	}
	return out
}

func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Min(values)
}

func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values)
}

// StatsTable memoizes per-metric values and stats for one cohort. It belongs to
// a single request and is not safe for concurrent use.
type StatsTable struct {
	cohort   []player.Player
	resolver Resolver
	values   map[Metric][]float64
	stats    map[Metric]Stats
}

func NewStatsTable(cohort []player.Player, resolver Resolver) *StatsTable {
	return &StatsTable{
		cohort:   cohort,
		resolver: resolver,
		values:   make(map[Metric][]float64),
		stats:    make(map[Metric]Stats),
	}
}

func (t *StatsTable) Resolver() Resolver {
	return t.resolver
}

func (t *StatsTable) Len() int {
	return len(t.cohort)
}

func (t *StatsTable) Values(m Metric) []float64 {
	if values, ok := t.values[m]; ok {
		return values
	}
	values := CohortValues(t.cohort, t.resolver.Func(m))
	t.values[m] = values
	return values
}

func (t *StatsTable) Stats(m Metric) (Stats, bool) {
	if s, ok := t.stats[m]; ok {
		return s, true
	}
	s, ok := ComputeStats(t.Values(m))
	if !ok {
		return Stats{}, false
	}
	t.stats[m] = s
	return s, true
}

func (t *StatsTable) Percentile(m Metric, v float64) float64 {
	return Percentile(t.Values(m), v)
}
