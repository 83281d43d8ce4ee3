package analytics

import (
	"sort"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const (
	nameStartCap    = 5
	nameContainsCap = 3
	teamStartCap    = 2
	searchLimit     = 10
)

// Search resolves a free text query in three tiers: names starting with the
// query, names containing it, then teams starting with it. An empty query
// returns nothing. position narrows the cohort first unless empty or "ALL".
func Search(cohort []player.Player, query, position string) []player.Player {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []player.Player{}
	}

	candidates := make([]player.Player, 0, len(cohort))
	for _, p := range cohort {
		if player.MatchesPositionFilter(p.Position, position) {
			candidates = append(candidates, p)
		}
	}

	var startsWith, contains []player.Player
	for _, p := range candidates {
		name := strings.ToLower(p.Name)
		switch {
		case strings.HasPrefix(name, q):
			startsWith = append(startsWith, p)
		case strings.Contains(name, q):
			contains = append(contains, p)
		}
	}
	sortByName(startsWith)
	sortByName(contains)
	startsWith = capPlayers(startsWith, nameStartCap)
	contains = capPlayers(contains, nameContainsCap)

	nameMatched := make(map[int64]struct{}, len(startsWith)+len(contains))
	for _, p := range startsWith {
		nameMatched[p.ID] = struct{}{}
	}
	for _, p := range contains {
		nameMatched[p.ID] = struct{}{}
	}

	var teamStarts []player.Player
	for _, p := range candidates {
		if _, ok := nameMatched[p.ID]; ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(p.Squad), q) {
			teamStarts = append(teamStarts, p)
		}
	}
	sort.SliceStable(teamStarts, func(i, j int) bool {
		a, b := strings.ToLower(teamStarts[i].Squad), strings.ToLower(teamStarts[j].Squad)
		if a != b {
			return a < b
		}
		return lessByName(teamStarts[i], teamStarts[j])
	})
	teamStarts = capPlayers(teamStarts, teamStartCap)

	out := make([]player.Player, 0, searchLimit)
	seen := make(map[int64]struct{}, searchLimit)
	for _, tier := range [][]player.Player{startsWith, contains, teamStarts} {
		for _, p := range tier {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
			if len(out) == searchLimit {
				return out
			}
		}
	}
	return out
}

func sortByName(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return lessByName(players[i], players[j])
	})
}

func lessByName(a, b player.Player) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

func capPlayers(players []player.Player, limit int) []player.Player {
	if len(players) > limit {
		return players[:limit]
	}
	return players
}
