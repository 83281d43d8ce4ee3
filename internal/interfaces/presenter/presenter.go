// Package presenter maps use case results onto the JSON shapes shared by the
// HTTP API and the MCP tool server.
package presenter

import (
	"math"
	"sort"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type PlayerSummaryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Nation   string `json:"nation"`
}

type PlayerDTO struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Nation               string  `json:"nation"`
	Position             string  `json:"position"`
	Team                 string  `json:"team"`
	League               string  `json:"league"`
	Age                  int     `json:"age"`
	MatchesPlayed        int     `json:"matches_played"`
	MatchesStarted       int     `json:"matches_started"`
	MinutesPlayed        int     `json:"minutes_played"`
	Minutes90s           float64 `json:"minutes_90s"`
	Goals                int     `json:"goals"`
	Assists              int     `json:"assists"`
	GoalsAssists         int     `json:"goals_assists"`
	GoalsNoPenalty       int     `json:"goals_no_penalty"`
	PenaltiesMade        int     `json:"penalties_made"`
	PenaltiesAttempted   int     `json:"penalties_attempted"`
	YellowCards          int     `json:"yellow_cards"`
	RedCards             int     `json:"red_cards"`
	ExpectedGoals        float64 `json:"expected_goals"`
	ExpectedAssists      float64 `json:"expected_assists"`
	ProgressiveCarries   int     `json:"progressive_carries"`
	ProgressivePasses    int     `json:"progressive_passes"`
	ProgressiveDribbles  int     `json:"progressive_dribbles"`
	GoalsPer90           float64 `json:"goals_per90"`
	AssistsPer90         float64 `json:"assists_per90"`
	GoalsAssistsPer90    float64 `json:"goals_assists_per90"`
	ExpectedGoalsPer90   float64 `json:"expected_goals_per90"`
	ExpectedAssistsPer90 float64 `json:"expected_assists_per90"`
}

type RankedPlayerDTO struct {
	Rank          int     `json:"rank"`
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Position      string  `json:"position"`
	Nation        string  `json:"nation"`
	League        string  `json:"league"`
	Age           int     `json:"age"`
	MatchesPlayed int     `json:"matches_played"`
	Value         any     `json:"value"`
	Goalkeeper    *GKStat `json:"goalkeeper,omitempty"`
}

// GKStat is the synthetic goalkeeper line attached to goalkeeper rankings.
type GKStat struct {
	CleanSheets          int     `json:"clean_sheets"`
	CleanSheetPercentage float64 `json:"clean_sheet_percentage"`
	SavesPer90           float64 `json:"saves_per90"`
	GoalsPrevented       float64 `json:"goals_prevented"`
}

type TopPlayersDTO struct {
	Players          []RankedPlayerDTO `json:"players"`
	Metric           string            `json:"metric"`
	League           string            `json:"league"`
	Age              *int              `json:"age"`
	Limit            int               `json:"limit"`
	AvailableLeagues []string          `json:"available_leagues"`
	AvailableAges    []int             `json:"available_ages"`
	TotalCount       int               `json:"total_count"`
}

type BreakdownDTO struct {
	Metric     string  `json:"metric"`
	Weight     float64 `json:"weight"`
	Player1    float64 `json:"player1"`
	Player2    float64 `json:"player2"`
	Player1Raw float64 `json:"player1_raw"`
	Player2Raw float64 `json:"player2_raw"`
	Player1Z   float64 `json:"player1_z"`
	Player2Z   float64 `json:"player2_z"`
}

type ScoresDTO struct {
	Player1   float64        `json:"player1"`
	Player2   float64        `json:"player2"`
	Winner    string         `json:"winner"`
	Breakdown []BreakdownDTO `json:"breakdown"`
}

type ComparisonDTO struct {
	Player1    PlayerSummaryDTO `json:"player1"`
	Player2    PlayerSummaryDTO `json:"player2"`
	Position   string           `json:"position"`
	Category   string           `json:"category"`
	CohortSize int              `json:"cohort_size"`
	Scores     ScoresDTO        `json:"scores"`
}

type DistributionDTO struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
}

type BenchmarkDTO struct {
	Position       string                       `json:"position"`
	Category       string                       `json:"category"`
	League         string                       `json:"league"`
	CohortSize     int                          `json:"cohort_size"`
	LeagueAverages map[string]DistributionDTO   `json:"league_averages"`
	TopPlayers     map[string][]RankedPlayerDTO `json:"top_10_players"`
}

type PercentileDTO struct {
	PlayerID         int64              `json:"player_id"`
	PlayerName       string             `json:"player_name"`
	Position         string             `json:"position"`
	Category         string             `json:"category"`
	CohortSize       int                `json:"cohort_size"`
	Percentiles      map[string]float64 `json:"percentiles"`
	PlayerMetrics    map[string]any     `json:"player_metrics"`
	EstimatedMetrics []string           `json:"estimated_metrics"`
}

type SetPieceDTO struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Team               string   `json:"team"`
	Position           string   `json:"position"`
	League             string   `json:"league"`
	Age                int      `json:"age"`
	PenaltyAccuracy    *float64 `json:"penalty_accuracy"`
	PenaltiesMade      int      `json:"penalties_made"`
	PenaltiesAttempted int      `json:"penalties_attempted"`
	FreeKickGoals      int      `json:"free_kick_goals"`
	FreeKickGoalsPer90 float64  `json:"free_kick_goals_per90"`
	CornerAssists      int      `json:"corner_assists"`
	CornerAssistsPer90 float64  `json:"corner_assists_per90"`
	SetPieceScore      float64  `json:"set_piece_score"`
}

type LeagueSummaryDTO struct {
	Name       string  `json:"name"`
	Players    int     `json:"players"`
	Teams      int     `json:"teams"`
	Goals      int     `json:"goals"`
	Assists    int     `json:"assists"`
	AverageAge float64 `json:"average_age"`
}

type LeaderDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Position     string  `json:"position"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	GoalsPer90   float64 `json:"goals_per90"`
	AssistsPer90 float64 `json:"assists_per90"`
}

type LeagueLeadersDTO struct {
	Competition string      `json:"competition"`
	TopScorers  []LeaderDTO `json:"top_scorers"`
	TopAssists  []LeaderDTO `json:"top_assists"`
}

type LeagueOverviewDTO struct {
	Teams             int     `json:"teams"`
	TotalMatches      int     `json:"total_matches"`
	TotalGoals        int     `json:"total_goals"`
	AvgGoalsPerMatch  float64 `json:"avg_goals_per_match"`
	TotalAssists      int     `json:"total_assists"`
	TotalCleanSheets  int     `json:"total_clean_sheets"`
	TotalPenaltyGoals int     `json:"total_penalty_goals"`
	TopScorerName     string  `json:"top_scorer_name"`
	TopScorerGoals    int     `json:"top_scorer_goals"`
}

type TeamDisciplineDTO struct {
	Team        string `json:"team"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
}

type DisciplineDTO struct {
	YellowCards int                 `json:"yellow_cards"`
	RedCards    int                 `json:"red_cards"`
	Teams       []TeamDisciplineDTO `json:"teams"`
}

type LeagueDetailDTO struct {
	Name            string            `json:"name"`
	Overview        LeagueOverviewDTO `json:"overview"`
	TopScorers      []RankedPlayerDTO `json:"top_scorers"`
	TopAssists      []RankedPlayerDTO `json:"top_assists"`
	MostMatches     []RankedPlayerDTO `json:"most_matches"`
	BestGoalkeepers []RankedPlayerDTO `json:"best_goalkeepers"`
	GoalsByPosition map[string]int    `json:"goals_by_position"`
	Discipline      DisciplineDTO     `json:"discipline"`
}

type LeagueContextDTO struct {
	Competition string             `json:"competition"`
	TopPlayers  []PlayerSummaryDTO `json:"top_players"`
}

type PlayerDetailDTO struct {
	Player           PlayerDTO        `json:"player"`
	Category         string           `json:"category"`
	Metrics          map[string]any   `json:"metrics"`
	EstimatedMetrics []string         `json:"estimated_metrics"`
	SetPiece         SetPieceDTO      `json:"set_piece"`
	LeagueContext    LeagueContextDTO `json:"league_context"`
}

type ImportResultDTO struct {
	Received int   `json:"received"`
	Imported int   `json:"imported"`
	Rejected int   `json:"rejected"`
	Version  int64 `json:"version"`
}

// MetricValue renders count metrics as integers and rates with two decimals.
func MetricValue(metric analytics.Metric, v float64) any {
	if metric.IsCount() {
		return int(math.Round(v))
	}
	return analytics.Round2(v)
}

func PlayerSummary(p player.Player) PlayerSummaryDTO {
	return PlayerSummaryDTO{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.Squad,
		Position: p.Position,
		Nation:   p.Nation,
	}
}

func PlayerSummaries(players []player.Player) []PlayerSummaryDTO {
	out := make([]PlayerSummaryDTO, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerSummary(p))
	}
	return out
}

func Player(p player.Player) PlayerDTO {
	return PlayerDTO{
		ID:                   p.ID,
		Name:                 p.Name,
		Nation:               p.Nation,
		Position:             p.Position,
		Team:                 p.Squad,
		League:               p.Competition,
		Age:                  p.Age,
		MatchesPlayed:        p.MatchesPlayed,
		MatchesStarted:       p.MatchesStarted,
		MinutesPlayed:        p.MinutesPlayed,
		Minutes90s:           p.Minutes90s,
		Goals:                p.Goals,
		Assists:              p.Assists,
		GoalsAssists:         p.GoalsAssists,
		GoalsNoPenalty:       p.GoalsNoPenalty,
		PenaltiesMade:        p.PenaltiesMade,
		PenaltiesAttempted:   p.PenaltiesAttempted,
		YellowCards:          p.YellowCards,
		RedCards:             p.RedCards,
		ExpectedGoals:        p.ExpectedGoals,
		ExpectedAssists:      p.ExpectedAssists,
		ProgressiveCarries:   p.ProgressiveCarries,
		ProgressivePasses:    p.ProgressivePasses,
		ProgressiveDribbles:  p.ProgressiveDribbles,
		GoalsPer90:           analytics.Round2(p.GoalsPer90),
		AssistsPer90:         analytics.Round2(p.AssistsPer90),
		GoalsAssistsPer90:    analytics.Round2(p.GoalsAssistsPer90),
		ExpectedGoalsPer90:   analytics.Round2(p.ExpectedGoalsPer90),
		ExpectedAssistsPer90: analytics.Round2(p.ExpectedAssistsPer90),
	}
}

func rankedPlayer(rank int, p player.Player, value any) RankedPlayerDTO {
	return RankedPlayerDTO{
		Rank:          rank,
		ID:            p.ID,
		Name:          p.Name,
		Team:          p.Squad,
		Position:      p.Position,
		Nation:        p.Nation,
		League:        p.Competition,
		Age:           p.Age,
		MatchesPlayed: p.MatchesPlayed,
		Value:         value,
	}
}

func rankedRows(rows []analytics.RankedPlayer, metric analytics.Metric) []RankedPlayerDTO {
	out := make([]RankedPlayerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, rankedPlayer(row.Rank, row.Player, MetricValue(metric, row.Value)))
	}
	return out
}

func goalkeeperStat(bundle analytics.Bundle) *GKStat {
	if bundle == nil {
		return nil
	}
	return &GKStat{
		CleanSheets:          int(math.Round(bundle[analytics.MetricCleanSheets])),
		CleanSheetPercentage: analytics.Round2(bundle[analytics.MetricCleanSheetPercentage]),
		SavesPer90:           analytics.Round2(bundle[analytics.MetricSavesPer90]),
		GoalsPrevented:       analytics.Round2(bundle[analytics.MetricGoalsPrevented]),
	}
}

func topRows(rows []usecase.TopPlayerRow, metric analytics.Metric) []RankedPlayerDTO {
	out := make([]RankedPlayerDTO, 0, len(rows))
	for _, row := range rows {
		item := rankedPlayer(row.Rank, row.Player, MetricValue(metric, row.Value))
		item.Goalkeeper = goalkeeperStat(row.Goalkeeper)
		out = append(out, item)
	}
	return out
}

func TopPlayers(result usecase.TopPlayersResult) TopPlayersDTO {
	metric := analytics.Metric(result.Metric)
	if result.Metric == usecase.RankingTopGoalkeepers {
		metric = analytics.MetricCleanSheets
	}

	leagues := result.AvailableLeagues
	if leagues == nil {
		leagues = []string{}
	}
	ages := result.AvailableAges
	if ages == nil {
		ages = []int{}
	}

	return TopPlayersDTO{
		Players:          topRows(result.Players, metric),
		Metric:           result.Metric,
		League:           result.League,
		Age:              result.Age,
		Limit:            result.Limit,
		AvailableLeagues: leagues,
		AvailableAges:    ages,
		TotalCount:       result.TotalCount,
	}
}

func Comparison(result usecase.ComparisonResult) ComparisonDTO {
	breakdown := make([]BreakdownDTO, 0, len(result.Scores.Breakdown))
	for _, row := range result.Scores.Breakdown {
		breakdown = append(breakdown, BreakdownDTO{
			Metric:     string(row.Metric),
			Weight:     row.Weight,
			Player1:    row.Player1,
			Player2:    row.Player2,
			Player1Raw: row.Player1Raw,
			Player2Raw: row.Player2Raw,
			Player1Z:   row.Player1Z,
			Player2Z:   row.Player2Z,
		})
	}

	return ComparisonDTO{
		Player1:    PlayerSummary(result.Player1),
		Player2:    PlayerSummary(result.Player2),
		Position:   result.Position,
		Category:   string(result.Category),
		CohortSize: result.CohortSize,
		Scores: ScoresDTO{
			Player1:   result.Scores.Player1Score,
			Player2:   result.Scores.Player2Score,
			Winner:    string(result.Scores.Winner),
			Breakdown: breakdown,
		},
	}
}

func Benchmark(result usecase.BenchmarkResult) BenchmarkDTO {
	out := BenchmarkDTO{
		Position:       result.Position,
		Category:       string(result.Category),
		League:         result.League,
		CohortSize:     result.CohortSize,
		LeagueAverages: make(map[string]DistributionDTO, len(result.Metrics)),
		TopPlayers:     make(map[string][]RankedPlayerDTO, len(result.Metrics)),
	}
	for _, item := range result.Metrics {
		key := string(item.Metric)
		out.LeagueAverages[key] = DistributionDTO{
			Average: item.Distribution.Average,
			Median:  item.Distribution.Median,
			Min:     item.Distribution.Min,
			Max:     item.Distribution.Max,
			StdDev:  item.Distribution.StdDev,
		}
		leaders := make([]RankedPlayerDTO, 0, len(item.Leaders))
		for _, leader := range item.Leaders {
			leaders = append(leaders, rankedPlayer(leader.Rank, leader.Player, MetricValue(item.Metric, leader.Value)))
		}
		out.TopPlayers[key] = leaders
	}
	return out
}

func Percentile(result usecase.PercentileResult) PercentileDTO {
	out := PercentileDTO{
		PlayerID:         result.Player.ID,
		PlayerName:       result.Player.Name,
		Position:         result.Position,
		Category:         string(result.Category),
		CohortSize:       result.CohortSize,
		Percentiles:      make(map[string]float64, len(result.Metrics)),
		PlayerMetrics:    make(map[string]any, len(result.Metrics)),
		EstimatedMetrics: estimated(result.Metrics),
	}
	for _, metric := range result.Metrics {
		out.Percentiles[string(metric)] = result.Percentiles[metric]
		out.PlayerMetrics[string(metric)] = MetricValue(metric, result.PlayerMetrics[metric])
	}
	return out
}

func estimated(metrics []analytics.Metric) []string {
	out := []string{}
	for _, metric := range metrics {
		if metric.IsSynthetic() {
			out = append(out, string(metric))
		}
	}
	sort.Strings(out)
	return out
}

func SetPiece(profile analytics.SetPieceProfile) SetPieceDTO {
	p := profile.Player
	return SetPieceDTO{
		ID:                 p.ID,
		Name:               p.Name,
		Team:               p.Squad,
		Position:           p.Position,
		League:             p.Competition,
		Age:                p.Age,
		PenaltyAccuracy:    profile.PenaltyAccuracy,
		PenaltiesMade:      profile.PenaltiesMade,
		PenaltiesAttempted: profile.PenaltiesAttempted,
		FreeKickGoals:      profile.FreeKickGoals,
		FreeKickGoalsPer90: profile.FreeKickGoalsPer90,
		CornerAssists:      profile.CornerAssists,
		CornerAssistsPer90: profile.CornerAssistsPer90,
		SetPieceScore:      profile.SetPieceScore,
	}
}

func SetPieces(profiles []analytics.SetPieceProfile) []SetPieceDTO {
	out := make([]SetPieceDTO, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, SetPiece(profile))
	}
	return out
}

func Leagues(items []usecase.LeagueSummary) []LeagueSummaryDTO {
	out := make([]LeagueSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, LeagueSummaryDTO{
			Name:       item.Name,
			Players:    item.Summary.Players,
			Teams:      item.Summary.Teams,
			Goals:      item.Summary.Goals,
			Assists:    item.Summary.Assists,
			AverageAge: analytics.Round2(item.Summary.AverageAge),
		})
	}
	return out
}

func leaders(players []player.Player) []LeaderDTO {
	out := make([]LeaderDTO, 0, len(players))
	for _, p := range players {
		out = append(out, LeaderDTO{
			ID:           p.ID,
			Name:         p.Name,
			Team:         p.Squad,
			Position:     p.Position,
			Goals:        p.Goals,
			Assists:      p.Assists,
			GoalsPer90:   analytics.Round2(p.GoalsPer90),
			AssistsPer90: analytics.Round2(p.AssistsPer90),
		})
	}
	return out
}

func LeagueStats(items []usecase.LeagueLeaders) []LeagueLeadersDTO {
	out := make([]LeagueLeadersDTO, 0, len(items))
	for _, item := range items {
		out = append(out, LeagueLeadersDTO{
			Competition: item.Competition,
			TopScorers:  leaders(item.TopScorers),
			TopAssists:  leaders(item.TopAssists),
		})
	}
	return out
}

func LeagueDetail(detail usecase.LeagueDetail) LeagueDetailDTO {
	goals := make(map[string]int, len(detail.GoalsByPosition))
	for category, total := range detail.GoalsByPosition {
		goals[string(category)] = total
	}
	teams := make([]TeamDisciplineDTO, 0, len(detail.TeamDiscipline))
	for _, item := range detail.TeamDiscipline {
		teams = append(teams, TeamDisciplineDTO{
			Team:        item.Squad,
			YellowCards: item.YellowCards,
			RedCards:    item.RedCards,
		})
	}

	return LeagueDetailDTO{
		Name: detail.Name,
		Overview: LeagueOverviewDTO{
			Teams:             detail.Overview.Teams,
			TotalMatches:      detail.Overview.TotalMatches,
			TotalGoals:        detail.Overview.TotalGoals,
			AvgGoalsPerMatch:  detail.Overview.AvgGoalsPerMatch,
			TotalAssists:      detail.Overview.TotalAssists,
			TotalCleanSheets:  detail.Overview.TotalCleanSheets,
			TotalPenaltyGoals: detail.Overview.TotalPenaltyGoals,
			TopScorerName:     detail.Overview.TopScorerName,
			TopScorerGoals:    detail.Overview.TopScorerGoals,
		},
		TopScorers:      rankedRows(detail.TopScorers, analytics.MetricGoals),
		TopAssists:      rankedRows(detail.TopAssists, analytics.MetricAssists),
		MostMatches:     rankedRows(detail.MostMatches, analytics.MetricMatchesPlayed),
		BestGoalkeepers: topRows(detail.BestGoalkeepers, analytics.MetricCleanSheets),
		GoalsByPosition: goals,
		Discipline: DisciplineDTO{
			YellowCards: detail.YellowCards,
			RedCards:    detail.RedCards,
			Teams:       teams,
		},
	}
}

func PlayerDetail(detail usecase.PlayerDetail) PlayerDetailDTO {
	metrics := make(map[string]any, len(detail.Metrics))
	names := make([]analytics.Metric, 0, len(detail.Metrics))
	for metric, value := range detail.Metrics {
		metrics[string(metric)] = MetricValue(metric, value)
		names = append(names, metric)
	}

	return PlayerDetailDTO{
		Player:           Player(detail.Player),
		Category:         string(detail.Category),
		Metrics:          metrics,
		EstimatedMetrics: estimated(names),
		SetPiece:         SetPiece(detail.SetPiece),
		LeagueContext: LeagueContextDTO{
			Competition: detail.Player.Competition,
			TopPlayers:  PlayerSummaries(detail.LeagueTopPlayers),
		},
	}
}

func ImportResult(result usecase.ImportResult) ImportResultDTO {
	return ImportResultDTO{
		Received: result.Received,
		Imported: result.Imported,
		Rejected: result.Rejected,
		Version:  result.Version,
	}
}
