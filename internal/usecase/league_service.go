package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const (
	leagueLeadersSize = 5
	leagueDetailSize  = 10
)

type LeagueSummary struct {
	Name    string
	Summary player.Summary
}

type LeagueLeaders struct {
	Competition string
	TopScorers  []player.Player
	TopAssists  []player.Player
}

type TeamDiscipline struct {
	Squad       string
	YellowCards int
	RedCards    int
}

type LeagueOverview struct {
	Teams             int
	TotalMatches      int
	TotalGoals        int
	AvgGoalsPerMatch  float64
	TotalAssists      int
	TotalCleanSheets  int
	TotalPenaltyGoals int
	TopScorerName     string
	TopScorerGoals    int
}

type LeagueDetail struct {
	Name            string
	Overview        LeagueOverview
	TopScorers      []analytics.RankedPlayer
	TopAssists      []analytics.RankedPlayer
	MostMatches     []analytics.RankedPlayer
	BestGoalkeepers []TopPlayerRow
	GoalsByPosition map[player.Category]int
	YellowCards     int
	RedCards        int
	TeamDiscipline  []TeamDiscipline
}

type LeagueService struct {
	playerRepo player.Repository
}

func NewLeagueService(playerRepo player.Repository) *LeagueService {
	return &LeagueService{playerRepo: playerRepo}
}

// ListLeagues returns every competition with its aggregate numbers.
func (s *LeagueService) ListLeagues(ctx context.Context) ([]LeagueSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.playerRepo.ListCompetitions(ctx)
	if err != nil {
		return nil, storeError("list competitions", err)
	}

	out := make([]LeagueSummary, 0, len(leagues))
	for _, name := range leagues {
		summary, err := s.playerRepo.Summarize(ctx, player.Filter{Competition: name})
		if err != nil {
			return nil, storeError("summarize league="+name, err)
		}
		out = append(out, LeagueSummary{Name: name, Summary: summary})
	}
	return out, nil
}

// LeagueStats lists the per-90 leaders of every competition.
func (s *LeagueService) LeagueStats(ctx context.Context) ([]LeagueLeaders, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.LeagueStats")
	defer span.End()

	leagues, err := s.playerRepo.ListCompetitions(ctx)
	if err != nil {
		return nil, storeError("list competitions", err)
	}

	out := make([]LeagueLeaders, 0, len(leagues))
	for _, name := range leagues {
		scorers, err := loadCohort(ctx, s.playerRepo, player.Filter{
			Competition: name,
			OrderBy:     []player.Order{{Field: player.OrderByGoalsPer90, Desc: true}},
			Limit:       leagueLeadersSize,
		})
		if err != nil {
			return nil, err
		}
		assisters, err := loadCohort(ctx, s.playerRepo, player.Filter{
			Competition: name,
			OrderBy:     []player.Order{{Field: player.OrderByAssistsPer90, Desc: true}},
			Limit:       leagueLeadersSize,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, LeagueLeaders{Competition: name, TopScorers: scorers, TopAssists: assisters})
	}
	return out, nil
}

// LeagueDetail builds the league dashboard from one snapshot of its players.
func (s *LeagueService) LeagueDetail(ctx context.Context, league string) (LeagueDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.LeagueDetail", attribute.String("league", league))
	defer span.End()

	league = normalizeLeague(league)
	if league == "" {
		return LeagueDetail{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}
	if _, err := ensureLeague(ctx, s.playerRepo, league); err != nil {
		return LeagueDetail{}, err
	}

	players, err := loadCohort(ctx, s.playerRepo, player.Filter{Competition: league})
	if err != nil {
		return LeagueDetail{}, err
	}
	summary, err := s.playerRepo.Summarize(ctx, player.Filter{Competition: league})
	if err != nil {
		return LeagueDetail{}, storeError("summarize league="+league, err)
	}

	detail := LeagueDetail{Name: league}
	resolver := analytics.NewResolver("")
	goalkeeperResolver := analytics.NewResolver(player.CategoryGoalkeeper)
	keepers := filterByCategory(players, player.CategoryGoalkeeper)

	var wg conc.WaitGroup
	wg.Go(func() {
		detail.TopScorers = analytics.TopN(players, resolver.Func(analytics.MetricGoals), leagueDetailSize)
	})
	wg.Go(func() {
		detail.TopAssists = analytics.TopN(players, resolver.Func(analytics.MetricAssists), leagueDetailSize)
	})
	wg.Go(func() {
		detail.MostMatches = analytics.TopN(players, resolver.Func(analytics.MetricMatchesPlayed), leagueDetailSize)
	})
	wg.Go(func() {
		ranked := analytics.TopN(keepers, goalkeeperResolver.Func(analytics.MetricCleanSheets), leagueDetailSize)
		rows := make([]TopPlayerRow, 0, len(ranked))
		for _, item := range ranked {
			rows = append(rows, TopPlayerRow{
				Rank:       item.Rank,
				Player:     item.Player,
				Value:      item.Value,
				Goalkeeper: goalkeeperResolver.Bundle(item.Player),
			})
		}
		detail.BestGoalkeepers = rows
	})
	wg.Go(func() {
		detail.GoalsByPosition, detail.TeamDiscipline = positionAndDiscipline(players)
	})
	wg.Wait()

	cleanSheets := 0.0
	for _, keeper := range keepers {
		cleanSheets += goalkeeperResolver.Value(keeper, analytics.MetricCleanSheets)
	}

	matches := teamMatches(players)
	detail.Overview = LeagueOverview{
		Teams:             summary.Teams,
		TotalMatches:      matches,
		TotalGoals:        summary.Goals,
		TotalAssists:      summary.Assists,
		TotalCleanSheets:  int(cleanSheets),
		TotalPenaltyGoals: summary.PenaltyGoals,
		TopScorerName:     summary.TopScorerName,
		TopScorerGoals:    summary.MaxGoals,
	}
	if matches > 0 {
		detail.Overview.AvgGoalsPerMatch = analytics.Round2(float64(summary.Goals) / float64(matches))
	}
	detail.YellowCards = summary.YellowCards
	detail.RedCards = summary.RedCards

	return detail, nil
}

// teamMatches estimates fixtures played: each squad's busiest player stands in
// for the squad's match count, and every match involves two squads.
func teamMatches(players []player.Player) int {
	perSquad := make(map[string]int)
	for _, p := range players {
		if p.MatchesPlayed > perSquad[p.Squad] {
			perSquad[p.Squad] = p.MatchesPlayed
		}
	}
	total := 0
	for _, matches := range perSquad {
		total += matches
	}
	return total / 2
}

func positionAndDiscipline(players []player.Player) (map[player.Category]int, []TeamDiscipline) {
	goals := make(map[player.Category]int, len(player.AllCategories)+1)
	for _, category := range player.AllCategories {
		goals[category] = 0
	}
	bySquad := make(map[string]*TeamDiscipline)
	for _, p := range players {
		goals[p.Category()] += p.Goals

		item, ok := bySquad[p.Squad]
		if !ok {
			item = &TeamDiscipline{Squad: p.Squad}
			bySquad[p.Squad] = item
		}
		item.YellowCards += p.YellowCards
		item.RedCards += p.RedCards
	}

	teams := make([]TeamDiscipline, 0, len(bySquad))
	for _, item := range bySquad {
		teams = append(teams, *item)
	}
	sort.Slice(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.YellowCards+a.RedCards != b.YellowCards+b.RedCards {
			return a.YellowCards+a.RedCards > b.YellowCards+b.RedCards
		}
		return strings.ToLower(a.Squad) < strings.ToLower(b.Squad)
	})
	return goals, teams
}
