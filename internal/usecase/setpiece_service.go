package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const maxSetPieceResults = 50

type SetPieceFilter struct {
	League     string
	Position   string
	AgeMin     *int
	AgeMax     *int
	MinMinutes int
}

type SetPieceService struct {
	playerRepo player.Repository
}

func NewSetPieceService(playerRepo player.Repository) *SetPieceService {
	return &SetPieceService{playerRepo: playerRepo}
}

// Specialists lists players with any dead ball involvement, best penalty
// takers first.
func (s *SetPieceService) Specialists(ctx context.Context, filter SetPieceFilter) ([]analytics.SetPieceProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SetPieceService.Specialists")
	defer span.End()

	league := normalizeLeague(filter.League)
	if _, err := ensureLeague(ctx, s.playerRepo, league); err != nil {
		return nil, err
	}

	cohort, err := loadCohort(ctx, s.playerRepo, player.Filter{
		Competition: league,
		AgeMin:      filter.AgeMin,
		AgeMax:      filter.AgeMax,
		MinMinutes:  filter.MinMinutes,
		OnlyPlayed:  true,
	})
	if err != nil {
		return nil, err
	}

	position := strings.TrimSpace(filter.Position)
	profiles := make([]analytics.SetPieceProfile, 0, len(cohort))
	for _, p := range cohort {
		if !player.MatchesPositionFilter(p.Position, position) {
			continue
		}
		profile := analytics.NewSetPieceProfile(p)
		if profile.PenaltiesAttempted == 0 && profile.FreeKickGoals == 0 && profile.CornerAssists == 0 {
			continue
		}
		profiles = append(profiles, profile)
	}

	analytics.SortSetPieceProfiles(profiles)
	if len(profiles) > maxSetPieceResults {
		profiles = profiles[:maxSetPieceResults]
	}
	return profiles, nil
}
