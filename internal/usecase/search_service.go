package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

type SearchService struct {
	playerRepo player.Repository
}

func NewSearchService(playerRepo player.Repository) *SearchService {
	return &SearchService{playerRepo: playerRepo}
}

// Search returns at most ten players for a type-ahead box. A blank query is
// not an error; it simply matches nothing.
func (s *SearchService) Search(ctx context.Context, query, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.Search")
	defer span.End()

	if strings.TrimSpace(query) == "" {
		return []player.Player{}, nil
	}

	cohort, err := loadCohort(ctx, s.playerRepo, player.Filter{})
	if err != nil {
		return nil, err
	}

	return analytics.Search(cohort, query, position), nil
}
