package player

import (
	"fmt"
	"strings"
)

// Category is the coarse position bucket used for metrics and weighting.
type Category string

const (
	CategoryGoalkeeper Category = "goalkeeper"
	CategoryDefender   Category = "defender"
	CategoryMidfielder Category = "midfielder"
	CategoryForward    Category = "forward"
	CategoryUnknown    Category = "unknown"
)

var AllCategories = []Category{
	CategoryGoalkeeper,
	CategoryDefender,
	CategoryMidfielder,
	CategoryForward,
}

// Player is one season row of the imported statistics table.
type Player struct {
	ID          int64
	Name        string
	Nation      string
	Position    string
	Squad       string
	Competition string
	Age         int

	MatchesPlayed  int
	MatchesStarted int
	MinutesPlayed  int
	Minutes90s     float64

	Goals              int
	Assists            int
	GoalsAssists       int
	GoalsNoPenalty     int
	PenaltiesMade      int
	PenaltiesAttempted int
	YellowCards        int
	RedCards           int

	ExpectedGoals          float64
	ExpectedGoalsNoPenalty float64
	ExpectedAssists        float64
	ExpectedGoalsAssists   float64

	ProgressiveCarries  int
	ProgressivePasses   int
	ProgressiveDribbles int

	GoalsPer90                         float64
	AssistsPer90                       float64
	GoalsAssistsPer90                  float64
	GoalsNoPenaltyPer90                float64
	GoalsAssistsNoPenaltyPer90         float64
	ExpectedGoalsPer90                 float64
	ExpectedAssistsPer90               float64
	ExpectedGoalsAssistsPer90          float64
	ExpectedGoalsNoPenaltyPer90        float64
	ExpectedGoalsAssistsNoPenaltyPer90 float64
}

// Per90 normalizes a season total to a 90 minute rate. Zero playing time yields zero.
func Per90(total, minutes90s float64) float64 {
	if minutes90s <= 0 {
		return 0
	}
	return total / minutes90s
}

// FillPer90 recomputes the stored per-90 columns from the raw counters.
func (p *Player) FillPer90() {
	if p.Minutes90s <= 0 && p.MinutesPlayed > 0 {
		p.Minutes90s = float64(p.MinutesPlayed) / 90
	}
	m := p.Minutes90s

	p.GoalsPer90 = Per90(float64(p.Goals), m)
	p.AssistsPer90 = Per90(float64(p.Assists), m)
	p.GoalsAssistsPer90 = Per90(float64(p.Goals+p.Assists), m)
	p.GoalsNoPenaltyPer90 = Per90(float64(p.GoalsNoPenalty), m)
	p.GoalsAssistsNoPenaltyPer90 = Per90(float64(p.GoalsNoPenalty+p.Assists), m)
	p.ExpectedGoalsPer90 = Per90(p.ExpectedGoals, m)
	p.ExpectedAssistsPer90 = Per90(p.ExpectedAssists, m)
	p.ExpectedGoalsAssistsPer90 = Per90(p.ExpectedGoals+p.ExpectedAssists, m)
	p.ExpectedGoalsNoPenaltyPer90 = Per90(p.ExpectedGoalsNoPenalty, m)
	p.ExpectedGoalsAssistsNoPenaltyPer90 = Per90(p.ExpectedGoalsNoPenalty+p.ExpectedAssists, m)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Squad) == "" {
		return fmt.Errorf("player squad is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("player age must be >= 0")
	}

	counters := []struct {
		name  string
		value int
	}{
		{"matches_played", p.MatchesPlayed},
		{"matches_started", p.MatchesStarted},
		{"minutes_played", p.MinutesPlayed},
		{"goals", p.Goals},
		{"assists", p.Assists},
		{"goals_assists", p.GoalsAssists},
		{"goals_no_penalty", p.GoalsNoPenalty},
		{"penalties_made", p.PenaltiesMade},
		{"penalties_attempted", p.PenaltiesAttempted},
		{"yellow_cards", p.YellowCards},
		{"red_cards", p.RedCards},
		{"progressive_carries", p.ProgressiveCarries},
		{"progressive_passes", p.ProgressivePasses},
		{"progressive_dribbles", p.ProgressiveDribbles},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("player %s must be >= 0", c.name)
		}
	}
	if p.Minutes90s < 0 {
		return fmt.Errorf("player minutes_90s must be >= 0")
	}
	if p.PenaltiesAttempted > 0 && p.PenaltiesMade > p.PenaltiesAttempted {
		return fmt.Errorf("player penalties_made (%d) exceeds penalties_attempted (%d)", p.PenaltiesMade, p.PenaltiesAttempted)
	}

	return nil
}

// Category resolves the position bucket from the stored position string.
func (p Player) Category() Category {
	return ClassifyPosition(p.Position)
}

// Summary is the aggregate view over a filtered set of players.
type Summary struct {
	Players       int
	Teams         int
	Matches       int
	Goals         int
	Assists       int
	PenaltyGoals  int
	YellowCards   int
	RedCards      int
	AverageAge    float64
	MaxGoals      int
	TopScorerName string
}
