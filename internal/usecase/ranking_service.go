package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const (
	// RankingTopGoalkeepers ranks goalkeepers by generated clean sheets.
	RankingTopGoalkeepers = "top_goalkeepers"

	defaultTopLimit = 10
	maxTopLimit     = 50
)

type TopPlayersInput struct {
	Metric string
	League string
	Age    *int
	Limit  int
}

type TopPlayerRow struct {
	Rank   int
	Player player.Player
	Value  float64
	// Goalkeeper is set only for the goalkeeper ranking.
	Goalkeeper analytics.Bundle
}

type TopPlayersResult struct {
	Players          []TopPlayerRow
	Metric           string
	CountMetric      bool
	League           string
	Age              *int
	Limit            int
	AvailableLeagues []string
	AvailableAges    []int
	TotalCount       int
}

type RankingService struct {
	playerRepo player.Repository
}

func NewRankingService(playerRepo player.Repository) *RankingService {
	return &RankingService{playerRepo: playerRepo}
}

// ClampTopLimit applies the default and bounds of the top players limit.
func ClampTopLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultTopLimit
	case limit > maxTopLimit:
		return maxTopLimit
	default:
		return limit
	}
}

func (s *RankingService) TopPlayers(ctx context.Context, input TopPlayersInput) (TopPlayersResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.TopPlayers",
		attribute.String("metric", input.Metric),
		attribute.String("league", input.League),
	)
	defer span.End()

	metricName := strings.ToLower(strings.TrimSpace(input.Metric))
	if metricName == "" {
		metricName = string(analytics.MetricGoals)
	}

	var (
		metric     analytics.Metric
		goalkeeper = metricName == RankingTopGoalkeepers
	)
	if goalkeeper {
		metric = analytics.MetricCleanSheets
	} else {
		parsed, ok := analytics.ParseMetric(metricName)
		if !ok || !parsed.IsStored() {
			return TopPlayersResult{}, fmt.Errorf("%w: unsupported metric %q", ErrInvalidInput, input.Metric)
		}
		metric = parsed
	}

	league := normalizeLeague(input.League)
	leagues, err := ensureLeague(ctx, s.playerRepo, league)
	if err != nil {
		return TopPlayersResult{}, err
	}
	ages, err := s.playerRepo.ListAges(ctx, league)
	if err != nil {
		return TopPlayersResult{}, storeError("list ages", err)
	}

	cohort, err := loadCohort(ctx, s.playerRepo, player.Filter{
		Competition: league,
		Age:         input.Age,
		OnlyPlayed:  true,
	})
	if err != nil {
		return TopPlayersResult{}, err
	}

	resolver := analytics.NewResolver("")
	if goalkeeper {
		cohort = filterByCategory(cohort, player.CategoryGoalkeeper)
		resolver = analytics.NewResolver(player.CategoryGoalkeeper)
	}

	limit := ClampTopLimit(input.Limit)
	ranked := analytics.TopN(cohort, resolver.Func(metric), limit)

	rows := make([]TopPlayerRow, 0, len(ranked))
	for _, item := range ranked {
		row := TopPlayerRow{Rank: item.Rank, Player: item.Player, Value: item.Value}
		if goalkeeper {
			row.Goalkeeper = resolver.Bundle(item.Player)
		}
		rows = append(rows, row)
	}

	return TopPlayersResult{
		Players:          rows,
		Metric:           metricName,
		CountMetric:      metric.IsCount(),
		League:           league,
		Age:              input.Age,
		Limit:            limit,
		AvailableLeagues: leagues,
		AvailableAges:    ages,
		TotalCount:       len(cohort),
	}, nil
}
