package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// rankEpsilon is the largest gap still treated as a tie.
const rankEpsilon = 0.0001

type RankedPlayer struct {
	Rank   int
	Player player.Player
	Value  float64
}

// TopN orders the cohort by value descending and returns the first n rows,
// extended past n while the boundary row is tied with the next one. Tied rows
// share the rank of the group head; the next group's rank skips ahead by the
// group size.
func TopN(cohort []player.Player, value MetricFunc, n int) []RankedPlayer {
	if n <= 0 || len(cohort) == 0 {
		return []RankedPlayer{}
	}

	rows := make([]RankedPlayer, len(cohort))
	for i, p := range cohort {
		rows[i] = RankedPlayer{Player: p, Value: value(p)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if a.Player.MatchesPlayed != b.Player.MatchesPlayed {
			return a.Player.MatchesPlayed > b.Player.MatchesPlayed
		}
		an, bn := strings.ToLower(a.Player.Name), strings.ToLower(b.Player.Name)
		if an != bn {
			return an < bn
		}
		return a.Player.ID < b.Player.ID
	})

	out := make([]RankedPlayer, 0, min(n, len(rows)))
	rank := 1
	for i := range rows {
		if i > 0 && math.Abs(rows[i].Value-rows[i-1].Value) >= rankEpsilon {
			if len(out) >= n {
				break
			}
			rank = i + 1
		}
		row := rows[i]
		row.Rank = rank
		out = append(out, row)
	}
	return out
}
