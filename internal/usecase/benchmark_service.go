package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const benchmarkTopSize = 10

type MetricLeader struct {
	Rank   int
	Player player.Player
	Value  float64
}

type MetricBenchmark struct {
	Metric       analytics.Metric
	Distribution analytics.Distribution
	Leaders      []MetricLeader
}

type BenchmarkResult struct {
	Position   string
	Category   player.Category
	League     string
	CohortSize int
	Metrics    []MetricBenchmark
}

type PercentileResult struct {
	Player        player.Player
	Position      string
	Category      player.Category
	CohortSize    int
	Metrics       []analytics.Metric
	Percentiles   map[analytics.Metric]float64
	PlayerMetrics map[analytics.Metric]float64
}

type BenchmarkService struct {
	playerRepo player.Repository
}

func NewBenchmarkService(playerRepo player.Repository) *BenchmarkService {
	return &BenchmarkService{playerRepo: playerRepo}
}

// PositionBenchmark describes each scoring metric of a position across the
// cohort and lists its top ten.
func (s *BenchmarkService) PositionBenchmark(ctx context.Context, position, league string) (BenchmarkResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BenchmarkService.PositionBenchmark",
		attribute.String("position", position),
		attribute.String("league", league),
	)
	defer span.End()

	position = strings.TrimSpace(position)
	if position == "" {
		return BenchmarkResult{}, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	league = normalizeLeague(league)
	if _, err := ensureLeague(ctx, s.playerRepo, league); err != nil {
		return BenchmarkResult{}, err
	}

	category := player.ParseCategory(position)
	cohort, err := loadCohort(ctx, s.playerRepo, player.Filter{Competition: league, OnlyPlayed: true})
	if err != nil {
		return BenchmarkResult{}, err
	}
	cohort = filterByCategory(cohort, category)

	resolver := analytics.NewResolver(category)
	// Each metric reads the shared snapshot only.
	metrics := iter.Map(analytics.BenchmarkMetrics(category), func(metric *analytics.Metric) MetricBenchmark {
		fn := resolver.Func(*metric)
		ranked := analytics.TopN(cohort, fn, benchmarkTopSize)
		leaders := make([]MetricLeader, 0, len(ranked))
		for _, item := range ranked {
			leaders = append(leaders, MetricLeader{Rank: item.Rank, Player: item.Player, Value: analytics.Round2(item.Value)})
		}
		return MetricBenchmark{
			Metric:       *metric,
			Distribution: analytics.Describe(analytics.CohortValues(cohort, fn)),
			Leaders:      leaders,
		}
	})

	return BenchmarkResult{
		Position:   position,
		Category:   category,
		League:     league,
		CohortSize: len(cohort),
		Metrics:    metrics,
	}, nil
}

// PositionPercentile ranks one player against every played player of the
// position. A blank position falls back to the player's own.
func (s *BenchmarkService) PositionPercentile(ctx context.Context, playerID int64, position string) (PercentileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BenchmarkService.PositionPercentile", attribute.Int64("player_id", playerID))
	defer span.End()

	item, err := getPlayer(ctx, s.playerRepo, playerID)
	if err != nil {
		return PercentileResult{}, err
	}

	position = strings.TrimSpace(position)
	if position == "" {
		position = item.Position
	}
	category := player.ParseCategory(position)

	cohort, err := loadCohort(ctx, s.playerRepo, player.Filter{OnlyPlayed: true})
	if err != nil {
		return PercentileResult{}, err
	}
	cohort = filterByCategory(cohort, category)

	table := analytics.NewStatsTable(cohort, analytics.NewResolver(category))
	metrics := analytics.BenchmarkMetrics(category)
	out := PercentileResult{
		Player:        item,
		Position:      position,
		Category:      category,
		CohortSize:    len(cohort),
		Metrics:       metrics,
		Percentiles:   make(map[analytics.Metric]float64, len(metrics)),
		PlayerMetrics: make(map[analytics.Metric]float64, len(metrics)),
	}
	for _, metric := range metrics {
		value := table.Resolver().Value(item, metric)
		out.PlayerMetrics[metric] = analytics.Round2(value)
		out.Percentiles[metric] = table.Percentile(metric, value)
	}
	return out, nil
}
