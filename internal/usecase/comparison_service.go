package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

type CompareInput struct {
	Player1ID int64
	Player2ID int64
	Position  string
}

type ComparisonResult struct {
	Player1    player.Player
	Player2    player.Player
	Position   string
	Category   player.Category
	CohortSize int
	Scores     analytics.Comparison
}

type ComparisonService struct {
	playerRepo player.Repository
	scorer     analytics.Scorer
}

func NewComparisonService(playerRepo player.Repository, scorer analytics.Scorer) *ComparisonService {
	return &ComparisonService{
		playerRepo: playerRepo,
		scorer:     scorer,
	}
}

// Compare scores two players under the weights of position against every
// player of that position who has minutes.
func (s *ComparisonService) Compare(ctx context.Context, input CompareInput) (ComparisonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Compare")
	defer span.End()

	position := strings.TrimSpace(input.Position)
	if input.Player1ID <= 0 || input.Player2ID <= 0 {
		return ComparisonResult{}, fmt.Errorf("%w: both player ids are required", ErrInvalidInput)
	}
	if position == "" {
		return ComparisonResult{}, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}

	first, err := getPlayer(ctx, s.playerRepo, input.Player1ID)
	if err != nil {
		return ComparisonResult{}, err
	}
	second, err := getPlayer(ctx, s.playerRepo, input.Player2ID)
	if err != nil {
		return ComparisonResult{}, err
	}

	category := player.ParseCategory(position)
	cohort, err := loadCohort(ctx, s.playerRepo, player.Filter{OnlyPlayed: true})
	if err != nil {
		return ComparisonResult{}, err
	}
	cohort = filterByCategory(cohort, category)

	return ComparisonResult{
		Player1:    first,
		Player2:    second,
		Position:   position,
		Category:   category,
		CohortSize: len(cohort),
		Scores:     s.scorer.Compare(first, second, category, cohort),
	}, nil
}
