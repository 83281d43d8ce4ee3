package player

import (
	"sort"
	"strings"
)

// SortPlayers orders players in place by the given keys, falling back to id.
func SortPlayers(players []Player, orders []Order) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		for _, o := range orders {
			cmp := compareField(a, b, o.Field)
			if cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

func compareField(a, b Player, field OrderField) int {
	switch field {
	case OrderByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case OrderByGoals:
		return compareInt(a.Goals, b.Goals)
	case OrderByAssists:
		return compareInt(a.Assists, b.Assists)
	case OrderByMatchesPlayed:
		return compareInt(a.MatchesPlayed, b.MatchesPlayed)
	case OrderByMinutesPlayed:
		return compareInt(a.MinutesPlayed, b.MinutesPlayed)
	case OrderByGoalsPer90:
		return compareFloat(a.GoalsPer90, b.GoalsPer90)
	case OrderByAssistsPer90:
		return compareFloat(a.AssistsPer90, b.AssistsPer90)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Summarize aggregates players in memory with the same semantics as the SQL backend.
func Summarize(players []Player) Summary {
	out := Summary{Players: len(players)}
	if len(players) == 0 {
		return out
	}

	teams := make(map[string]struct{}, len(players))
	ageTotal := 0
	for _, p := range players {
		teams[p.Squad] = struct{}{}
		out.Matches += p.MatchesPlayed
		out.Goals += p.Goals
		out.Assists += p.Assists
		out.PenaltyGoals += p.PenaltiesMade
		out.YellowCards += p.YellowCards
		out.RedCards += p.RedCards
		ageTotal += p.Age
		if p.Goals > out.MaxGoals || out.TopScorerName == "" {
			out.MaxGoals = p.Goals
			out.TopScorerName = p.Name
		}
	}
	out.Teams = len(teams)
	out.AverageAge = float64(ageTotal) / float64(len(players))
	return out
}
