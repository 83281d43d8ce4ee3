package analytics

import (
	"testing"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestSortSetPieceProfiles(t *testing.T) {
	t.Parallel()

	profiles := []SetPieceProfile{
		{Player: player.Player{ID: 1}, PenaltyAccuracy: nil, SetPieceScore: 3},
		{Player: player.Player{ID: 2}, PenaltyAccuracy: floatPtr(80), SetPieceScore: 0.5},
		{Player: player.Player{ID: 3}, PenaltyAccuracy: floatPtr(80), SetPieceScore: 1.2},
		{Player: player.Player{ID: 4}, PenaltyAccuracy: floatPtr(100), SetPieceScore: 0.1},
		{Player: player.Player{ID: 5}, PenaltyAccuracy: nil, SetPieceScore: 4},
	}
	SortSetPieceProfiles(profiles)

	want := []int64{4, 3, 2, 5, 1}
	for i, id := range want {
		if profiles[i].Player.ID != id {
			t.Fatalf("unexpected order at %d: got=%d want=%d", i, profiles[i].Player.ID, id)
		}
	}
}

func TestNewSetPieceProfile(t *testing.T) {
	t.Parallel()

	p := player.Player{ID: 21, Goals: 12, GoalsNoPenalty: 10, Assists: 8, PenaltiesMade: 2, PenaltiesAttempted: 3, Minutes90s: 20}
	profile := NewSetPieceProfile(p)

	if profile.PenaltyAccuracy == nil || *profile.PenaltyAccuracy != 66.7 {
		t.Fatalf("unexpected penalty accuracy: %v", profile.PenaltyAccuracy)
	}
	if profile.FreeKickGoals < 0 || profile.FreeKickGoals > 2 {
		t.Fatalf("free kick goals out of range: %d", profile.FreeKickGoals)
	}
	if profile.CornerAssists < 0 || profile.CornerAssists > 2 {
		t.Fatalf("corner assists out of range: %d", profile.CornerAssists)
	}
	if profile.SetPieceScore <= 0 {
		t.Fatalf("expected positive set piece score, got=%v", profile.SetPieceScore)
	}

	again := NewSetPieceProfile(p)
	if again.FreeKickGoals != profile.FreeKickGoals || again.CornerAssists != profile.CornerAssists || again.SetPieceScore != profile.SetPieceScore {
		t.Fatalf("set piece profile should be deterministic")
	}

	noPens := NewSetPieceProfile(player.Player{ID: 22})
	if noPens.PenaltyAccuracy != nil {
		t.Fatalf("accuracy should be nil without attempts")
	}
	if noPens.FreeKickGoalsPer90 != 0 || noPens.CornerAssistsPer90 != 0 || noPens.SetPieceScore != 0 {
		t.Fatalf("zero minutes should give zero rates: %+v", noPens)
	}
}
