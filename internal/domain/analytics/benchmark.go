package analytics

import "github.com/riskibarqy/football-stats/internal/domain/player"

// Distribution is the descriptive summary shown in a position benchmark.
type Distribution struct {
	Average float64
	Median  float64
	Min     float64
	Max     float64
	StdDev  float64
}

// Describe summarizes values; an empty slice yields zeros.
func Describe(values []float64) Distribution {
	stats, ok := ComputeStats(values)
	if !ok {
		return Distribution{}
	}
	return Distribution{
		Average: round2(stats.Mean),
		Median:  round2(Median(values)),
		Min:     round2(Min(values)),
		Max:     round2(Max(values)),
		StdDev:  round2(stats.StdDev),
	}
}

// BenchmarkMetrics lists the metrics reported for a position category.
func BenchmarkMetrics(category player.Category) []Metric {
	return WeightsFor(category).Metrics()
}

// Round2 rounds to two decimals for presentation.
func Round2(v float64) float64 {
	return round2(v)
}
