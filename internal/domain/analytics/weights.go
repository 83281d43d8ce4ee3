package analytics

import (
	"math"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// Weight ties a metric to its share of the final score. Negative weights mark
// "lower is better" metrics.
type Weight struct {
	Metric Metric
	Value  float64
}

// WeightTable is ordered so breakdowns come out in a stable order.
type WeightTable []Weight

var defaultWeights = map[player.Category]WeightTable{
	player.CategoryGoalkeeper: {
		{Metric: MetricSavesPer90, Value: 0.25},
		{Metric: MetricCleanSheetPercentage, Value: 0.25},
		{Metric: MetricGoalsPrevented, Value: 0.20},
		{Metric: MetricCleanSheets, Value: 0.15},
		{Metric: MetricPenaltySaves, Value: 0.10},
		{Metric: MetricMinutesPlayed, Value: 0.05},
	},
	player.CategoryDefender: {
		{Metric: MetricTacklesPer90, Value: 0.20},
		{Metric: MetricInterceptionsPer90, Value: 0.20},
		{Metric: MetricAerialDuelWinRate, Value: 0.15},
		{Metric: MetricPassingAccuracy, Value: 0.15},
		{Metric: MetricProgressivePassesP90, Value: 0.10},
		{Metric: MetricProgressiveCarriesP90, Value: 0.10},
		{Metric: MetricCardsPer90, Value: -0.10},
	},
	player.CategoryMidfielder: {
		{Metric: MetricKeyPassesPer90, Value: 0.20},
		{Metric: MetricProgressivePassesP90, Value: 0.20},
		{Metric: MetricAssistsPer90, Value: 0.15},
		{Metric: MetricDribblesPer90, Value: 0.10},
		{Metric: MetricDribbleSuccessRate, Value: 0.10},
		{Metric: MetricProgressiveCarriesP90, Value: 0.10},
		{Metric: MetricExpectedAssistsPer90, Value: 0.10},
		{Metric: MetricCardsPer90, Value: -0.05},
	},
	player.CategoryForward: {
		{Metric: MetricGoalsPer90, Value: 0.30},
		{Metric: MetricExpectedGoalsPer90, Value: 0.15},
		{Metric: MetricAssistsPer90, Value: 0.15},
		{Metric: MetricKeyPassesPer90, Value: 0.10},
		{Metric: MetricDribblesPer90, Value: 0.10},
		{Metric: MetricDribbleSuccessRate, Value: 0.10},
		{Metric: MetricProgressiveCarriesP90, Value: 0.10},
	},
	player.CategoryUnknown: {
		{Metric: MetricGoalsPer90, Value: 0.20},
		{Metric: MetricAssistsPer90, Value: 0.20},
		{Metric: MetricProgressivePassesP90, Value: 0.20},
		{Metric: MetricProgressiveCarriesP90, Value: 0.20},
		{Metric: MetricMatchesPlayed, Value: 0.20},
	},
}

// WeightsFor returns a copy of the table for category, falling back to the
// blended unknown table.
func WeightsFor(category player.Category) WeightTable {
	table, ok := defaultWeights[category]
	if !ok {
		table = defaultWeights[player.CategoryUnknown]
	}
	out := make(WeightTable, len(table))
	copy(out, table)
	return out
}

// Metrics lists the table's metrics in order.
func (t WeightTable) Metrics() []Metric {
	out := make([]Metric, len(t))
	for i, w := range t {
		out[i] = w.Metric
	}
	return out
}

// TotalMagnitude is the sum of absolute weights.
func (t WeightTable) TotalMagnitude() float64 {
	total := 0.0
	for _, w := range t {
		total += math.Abs(w.Value)
	}
	return total
}
