package usecase

import (
	"context"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const leagueContextSize = 10

type PlayerDetail struct {
	Player   player.Player
	Category player.Category
	Metrics  analytics.Bundle
	SetPiece analytics.SetPieceProfile
	// LeagueTopPlayers is the player's competition ordered by goals.
	LeagueTopPlayers []player.Player
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) GetPlayerDetail(ctx context.Context, playerID int64) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerDetail")
	defer span.End()

	item, err := getPlayer(ctx, s.playerRepo, playerID)
	if err != nil {
		return PlayerDetail{}, err
	}

	top := []player.Player{}
	if item.Competition != "" {
		top, err = loadCohort(ctx, s.playerRepo, player.Filter{
			Competition: item.Competition,
			OrderBy:     []player.Order{{Field: player.OrderByGoals, Desc: true}},
			Limit:       leagueContextSize,
		})
		if err != nil {
			return PlayerDetail{}, err
		}
	}

	category := item.Category()
	return PlayerDetail{
		Player:           item,
		Category:         category,
		Metrics:          analytics.NewGenerator().Generate(item, category),
		SetPiece:         analytics.NewSetPieceProfile(item),
		LeagueTopPlayers: top,
	}, nil
}
