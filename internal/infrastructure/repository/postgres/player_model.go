package postgres

import "github.com/riskibarqy/football-stats/internal/domain/player"

type playerTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Nation      string `db:"nation"`
	Position    string `db:"position"`
	Squad       string `db:"squad"`
	Competition string `db:"competition"`
	Age         int    `db:"age"`

	MatchesPlayed  int     `db:"matches_played"`
	MatchesStarted int     `db:"matches_started"`
	MinutesPlayed  int     `db:"minutes_played"`
	Minutes90s     float64 `db:"minutes_90s"`

	Goals              int `db:"goals"`
	Assists            int `db:"assists"`
	GoalsAssists       int `db:"goals_assists"`
	GoalsNoPenalty     int `db:"goals_no_penalty"`
	PenaltiesMade      int `db:"penalties_made"`
	PenaltiesAttempted int `db:"penalties_attempted"`
	YellowCards        int `db:"yellow_cards"`
	RedCards           int `db:"red_cards"`

	ExpectedGoals          float64 `db:"expected_goals"`
	ExpectedGoalsNoPenalty float64 `db:"expected_goals_no_penalty"`
	ExpectedAssists        float64 `db:"expected_assists"`
	ExpectedGoalsAssists   float64 `db:"expected_goals_assists"`

	ProgressiveCarries  int `db:"progressive_carries"`
	ProgressivePasses   int `db:"progressive_passes"`
	ProgressiveDribbles int `db:"progressive_dribbles"`

	GoalsPer90                         float64 `db:"goals_per90"`
	AssistsPer90                       float64 `db:"assists_per90"`
	GoalsAssistsPer90                  float64 `db:"goals_assists_per90"`
	GoalsNoPenaltyPer90                float64 `db:"goals_no_penalty_per90"`
	GoalsAssistsNoPenaltyPer90         float64 `db:"goals_assists_no_penalty_per90"`
	ExpectedGoalsPer90                 float64 `db:"expected_goals_per90"`
	ExpectedAssistsPer90               float64 `db:"expected_assists_per90"`
	ExpectedGoalsAssistsPer90          float64 `db:"expected_goals_assists_per90"`
	ExpectedGoalsNoPenaltyPer90        float64 `db:"expected_goals_no_penalty_per90"`
	ExpectedGoalsAssistsNoPenaltyPer90 float64 `db:"expected_goals_assists_no_penalty_per90"`
}

var playerSelectColumns = []string{
	"id", "name", "nation", "position", "squad", "competition", "age",
	"matches_played", "matches_started", "minutes_played", "minutes_90s",
	"goals", "assists", "goals_assists", "goals_no_penalty",
	"penalties_made", "penalties_attempted", "yellow_cards", "red_cards",
	"expected_goals", "expected_goals_no_penalty", "expected_assists", "expected_goals_assists",
	"progressive_carries", "progressive_passes", "progressive_dribbles",
	"goals_per90", "assists_per90", "goals_assists_per90", "goals_no_penalty_per90",
	"goals_assists_no_penalty_per90", "expected_goals_per90", "expected_assists_per90",
	"expected_goals_assists_per90", "expected_goals_no_penalty_per90",
	"expected_goals_assists_no_penalty_per90",
}

type summaryModel struct {
	Players     int     `db:"players"`
	Teams       int     `db:"teams"`
	Matches     int     `db:"matches"`
	Goals       int     `db:"goals"`
	Assists     int     `db:"assists"`
	PenaltyGoal int     `db:"penalty_goals"`
	YellowCards int     `db:"yellow_cards"`
	RedCards    int     `db:"red_cards"`
	AverageAge  float64 `db:"average_age"`
	MaxGoals    int     `db:"max_goals"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                                 m.ID,
		Name:                               m.Name,
		Nation:                             m.Nation,
		Position:                           m.Position,
		Squad:                              m.Squad,
		Competition:                        m.Competition,
		Age:                                m.Age,
		MatchesPlayed:                      m.MatchesPlayed,
		MatchesStarted:                     m.MatchesStarted,
		MinutesPlayed:                      m.MinutesPlayed,
		Minutes90s:                         m.Minutes90s,
		Goals:                              m.Goals,
		Assists:                            m.Assists,
		GoalsAssists:                       m.GoalsAssists,
		GoalsNoPenalty:                     m.GoalsNoPenalty,
		PenaltiesMade:                      m.PenaltiesMade,
		PenaltiesAttempted:                 m.PenaltiesAttempted,
		YellowCards:                        m.YellowCards,
		RedCards:                           m.RedCards,
		ExpectedGoals:                      m.ExpectedGoals,
		ExpectedGoalsNoPenalty:             m.ExpectedGoalsNoPenalty,
		ExpectedAssists:                    m.ExpectedAssists,
		ExpectedGoalsAssists:               m.ExpectedGoalsAssists,
		ProgressiveCarries:                 m.ProgressiveCarries,
		ProgressivePasses:                  m.ProgressivePasses,
		ProgressiveDribbles:                m.ProgressiveDribbles,
		GoalsPer90:                         m.GoalsPer90,
		AssistsPer90:                       m.AssistsPer90,
		GoalsAssistsPer90:                  m.GoalsAssistsPer90,
		GoalsNoPenaltyPer90:                m.GoalsNoPenaltyPer90,
		GoalsAssistsNoPenaltyPer90:         m.GoalsAssistsNoPenaltyPer90,
		ExpectedGoalsPer90:                 m.ExpectedGoalsPer90,
		ExpectedAssistsPer90:               m.ExpectedAssistsPer90,
		ExpectedGoalsAssistsPer90:          m.ExpectedGoalsAssistsPer90,
		ExpectedGoalsNoPenaltyPer90:        m.ExpectedGoalsNoPenaltyPer90,
		ExpectedGoalsAssistsNoPenaltyPer90: m.ExpectedGoalsAssistsNoPenaltyPer90,
	}
}

func playerModelFromDomain(p player.Player) playerTableModel {
	return playerTableModel{
		ID:                                 p.ID,
		Name:                               p.Name,
		Nation:                             p.Nation,
		Position:                           p.Position,
		Squad:                              p.Squad,
		Competition:                        p.Competition,
		Age:                                p.Age,
		MatchesPlayed:                      p.MatchesPlayed,
		MatchesStarted:                     p.MatchesStarted,
		MinutesPlayed:                      p.MinutesPlayed,
		Minutes90s:                         p.Minutes90s,
		Goals:                              p.Goals,
		Assists:                            p.Assists,
		GoalsAssists:                       p.GoalsAssists,
		GoalsNoPenalty:                     p.GoalsNoPenalty,
		PenaltiesMade:                      p.PenaltiesMade,
		PenaltiesAttempted:                 p.PenaltiesAttempted,
		YellowCards:                        p.YellowCards,
		RedCards:                           p.RedCards,
		ExpectedGoals:                      p.ExpectedGoals,
		ExpectedGoalsNoPenalty:             p.ExpectedGoalsNoPenalty,
		ExpectedAssists:                    p.ExpectedAssists,
		ExpectedGoalsAssists:               p.ExpectedGoalsAssists,
		ProgressiveCarries:                 p.ProgressiveCarries,
		ProgressivePasses:                  p.ProgressivePasses,
		ProgressiveDribbles:                p.ProgressiveDribbles,
		GoalsPer90:                         p.GoalsPer90,
		AssistsPer90:                       p.AssistsPer90,
		GoalsAssistsPer90:                  p.GoalsAssistsPer90,
		GoalsNoPenaltyPer90:                p.GoalsNoPenaltyPer90,
		GoalsAssistsNoPenaltyPer90:         p.GoalsAssistsNoPenaltyPer90,
		ExpectedGoalsPer90:                 p.ExpectedGoalsPer90,
		ExpectedAssistsPer90:               p.ExpectedAssistsPer90,
		ExpectedGoalsAssistsPer90:          p.ExpectedGoalsAssistsPer90,
		ExpectedGoalsNoPenaltyPer90:        p.ExpectedGoalsNoPenaltyPer90,
		ExpectedGoalsAssistsNoPenaltyPer90: p.ExpectedGoalsAssistsNoPenaltyPer90,
	}
}
