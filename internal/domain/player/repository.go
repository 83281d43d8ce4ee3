package player

import "context"

// OrderField names a sortable column. Values map to storage columns in the repositories.
type OrderField string

const (
	OrderByName          OrderField = "name"
	OrderByGoals         OrderField = "goals"
	OrderByAssists       OrderField = "assists"
	OrderByMatchesPlayed OrderField = "matches_played"
	OrderByMinutesPlayed OrderField = "minutes_played"
	OrderByGoalsPer90    OrderField = "goals_per90"
	OrderByAssistsPer90  OrderField = "assists_per90"
)

type Order struct {
	Field OrderField
	Desc  bool
}

// Filter narrows List and Summarize. Zero values mean "not applied".
type Filter struct {
	Competition string
	Squad       string
	Age         *int
	AgeMin      *int
	AgeMax      *int
	MinMinutes  int
	Position    string
	OnlyPlayed  bool
	ExcludeIDs  []int64
	OrderBy     []Order
	Limit       int
}

// Repository is the read/bulk-load contract for player season rows.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	ListCompetitions(ctx context.Context) ([]string, error)
	ListAges(ctx context.Context, competition string) ([]int, error)
	Summarize(ctx context.Context, filter Filter) (Summary, error)
	ReplaceAll(ctx context.Context, players []Player) (int64, error)
	DatasetVersion(ctx context.Context) (int64, error)
}

// Matches applies the non-ordering parts of the filter to one player. Storage
// backends that cannot push a predicate down reuse it.
func (f Filter) Matches(p Player) bool {
	if f.Competition != "" && p.Competition != f.Competition {
		return false
	}
	if f.Squad != "" && p.Squad != f.Squad {
		return false
	}
	if f.Age != nil && p.Age != *f.Age {
		return false
	}
	if f.AgeMin != nil && p.Age < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && p.Age > *f.AgeMax {
		return false
	}
	if f.MinMinutes > 0 && p.MinutesPlayed < f.MinMinutes {
		return false
	}
	if f.OnlyPlayed && p.MinutesPlayed <= 0 {
		return false
	}
	if f.Position != "" && !containsFold(p.Position, f.Position) {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if id == p.ID {
			return false
		}
	}
	return true
}

// IntPtr is a small helper for optional filter fields.
func IntPtr(v int) *int {
	return &v
}
