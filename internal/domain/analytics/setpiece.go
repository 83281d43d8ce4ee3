package analytics

import (
	"math"
	"sort"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

const setPieceStream uint64 = 0x5851f42d4c957f2d

const (
	penaltyVolumeCap     = 10
	penaltyScoreWeight   = 1.5
	freeKickScoreWeight  = 5.0
	cornerScoreWeight    = 3.0
	freeKickShareMin     = 0.0
	freeKickShareMax     = 0.15
	cornerAssistShareMin = 0.05
	cornerAssistShareMax = 0.25
)

// SetPieceProfile is a player's dead ball record. Free kick goals and corner
// assists are seeded estimates; penalties are measured.
type SetPieceProfile struct {
	Player             player.Player
	PenaltyAccuracy    *float64
	PenaltiesMade      int
	PenaltiesAttempted int
	FreeKickGoals      int
	FreeKickGoalsPer90 float64
	CornerAssists      int
	CornerAssistsPer90 float64
	SetPieceScore      float64
}

func NewSetPieceProfile(p player.Player) SetPieceProfile {
	rng := newPlayerRand(p.ID, setPieceStream)

	freeKicks := int(math.Round(float64(p.GoalsNoPenalty) * uniform(rng, freeKickShareMin, freeKickShareMax)))
	corners := int(math.Round(float64(p.Assists) * uniform(rng, cornerAssistShareMin, cornerAssistShareMax)))

	profile := SetPieceProfile{
		Player:             p,
		PenaltiesMade:      p.PenaltiesMade,
		PenaltiesAttempted: p.PenaltiesAttempted,
		FreeKickGoals:      freeKicks,
		FreeKickGoalsPer90: round2(player.Per90(float64(freeKicks), p.Minutes90s)),
		CornerAssists:      corners,
		CornerAssistsPer90: round2(player.Per90(float64(corners), p.Minutes90s)),
	}

	penaltyComponent := 0.0
	if p.PenaltiesAttempted > 0 {
		accuracy := roundTo(float64(p.PenaltiesMade)/float64(p.PenaltiesAttempted)*100, 1)
		profile.PenaltyAccuracy = &accuracy
		volume := float64(min(p.PenaltiesAttempted, penaltyVolumeCap)) / penaltyVolumeCap
		penaltyComponent = accuracy / 100 * volume * penaltyScoreWeight
	}

	profile.SetPieceScore = round2(penaltyComponent +
		profile.FreeKickGoalsPer90*freeKickScoreWeight +
		profile.CornerAssistsPer90*cornerScoreWeight)
	return profile
}

// SortSetPieceProfiles orders by penalty accuracy desc with unknown accuracy
// last, then by set piece score desc.
func SortSetPieceProfiles(profiles []SetPieceProfile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		switch {
		case a.PenaltyAccuracy != nil && b.PenaltyAccuracy == nil:
			return true
		case a.PenaltyAccuracy == nil && b.PenaltyAccuracy != nil:
			return false
		case a.PenaltyAccuracy != nil && *a.PenaltyAccuracy != *b.PenaltyAccuracy:
			return *a.PenaltyAccuracy > *b.PenaltyAccuracy
		}
		if a.SetPieceScore != b.SetPieceScore {
			return a.SetPieceScore > b.SetPieceScore
		}
		return a.Player.ID < b.Player.ID
	})
}
