package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// allLeagues is the sentinel the front end sends for "no league filter".
const allLeagues = "all"

func loadCohort(ctx context.Context, repo player.Repository, filter player.Filter) ([]player.Player, error) {
	players, err := repo.List(ctx, filter)
	if err != nil {
		return nil, storeError("list players", err)
	}
	return players, nil
}

// filterByCategory keeps players whose position resolves to category. Unknown
// category keeps everyone.
func filterByCategory(players []player.Player, category player.Category) []player.Player {
	if category == player.CategoryUnknown || category == "" {
		return players
	}
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.Category() == category {
			out = append(out, p)
		}
	}
	return out
}

func normalizeLeague(league string) string {
	league = strings.TrimSpace(league)
	if strings.EqualFold(league, allLeagues) {
		return ""
	}
	return league
}

// ensureLeague returns ErrNotFound when league is set but unknown to the repository.
func ensureLeague(ctx context.Context, repo player.Repository, league string) ([]string, error) {
	leagues, err := repo.ListCompetitions(ctx)
	if err != nil {
		return nil, storeError("list competitions", err)
	}
	if league != "" && !slices.Contains(leagues, league) {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, league)
	}
	return leagues, nil
}

func getPlayer(ctx context.Context, repo player.Repository, id int64) (player.Player, error) {
	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	item, exists, err := repo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, storeError("get player by id", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return item, nil
}
