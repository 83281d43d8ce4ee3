package csvimport

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const header = "Player,Nation,Position,Squad,Competition,Age,Playing Time_MP,Playing Time_Starts,Playing Time_Min,Playing Time_90s," +
	"Performance_Gls,Performance_Ast,Performance_G+A,Performance_G-PK,Performance_PK,Performance_PKatt,Performance_CrdY,Performance_CrdR," +
	"Expected_xG,Expected_npxG,Expected_xAG,Expected_npxG+xAG,Progression_PrgC,Progression_PrgP,Progression_PrgR\n"

func newTestReader() *Reader {
	return NewReader(WithWorkers(2), WithLogger(logging.NewNop()))
}

func TestParse_ReadsRowsInOrder(t *testing.T) {
	input := header +
		"Erling Haaland,no NOR,FW,Manchester City,Premier League,23-214,31.0,29,2552,28.4,27,5,32,20,7,8,1,0,29.2,23.6,4.1,27.7,38,31,161\n" +
		"Bukayo Saka,eng ENG,\"FW,MF\",Arsenal,Premier League,22,35,35,2929,32.5,16,9,25,11,5,5,4,0,14.3,10.4,9.9,20.3,176,184,487\n"

	result, err := newTestReader().Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Players, 2)
	assert.Equal(t, 2, result.Rows)
	assert.Zero(t, result.Skipped)

	haaland := result.Players[0]
	assert.Equal(t, "Erling Haaland", haaland.Name)
	assert.Equal(t, 23, haaland.Age)
	assert.Equal(t, 31, haaland.MatchesPlayed)
	assert.Equal(t, 27, haaland.Goals)
	assert.Equal(t, 8, haaland.PenaltiesAttempted)
	assert.InDelta(t, 28.4, haaland.Minutes90s, 1e-9)
	assert.InDelta(t, 27.7, haaland.ExpectedGoalsAssists, 1e-9)

	saka := result.Players[1]
	assert.Equal(t, "FW,MF", saka.Position)
	assert.Equal(t, 487, saka.ProgressiveDribbles)
}

func TestParse_SkipsRepeatedHeadersAndIncompleteRows(t *testing.T) {
	input := header +
		"Cole Palmer,eng ENG,MF,Chelsea,Premier League,21,34,33,2618,29.1,22,11,33,13,9,9,5,0,17.7,10.8,10.9,21.7,72,207,373\n" +
		strings.TrimSuffix(header, "\n") + "\n" +
		",,FW,Chelsea,Premier League,21,1,0,10,0.1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0\n" +
		"No Squad,fr FRA,DF,,Ligue 1,25,1,1,90,1.0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0\n" +
		"Bad Number,fr FRA,DF,Lille,Ligue 1,25,abc,1,90,1.0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0\n" +
		"Short Row,fr FRA,DF,Lille,Ligue 1\n"

	result, err := newTestReader().Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Players, 2)
	assert.Equal(t, "Cole Palmer", result.Players[0].Name)
	assert.Equal(t, "Short Row", result.Players[1].Name)
	assert.Zero(t, result.Players[1].MinutesPlayed)
	assert.Equal(t, 5, result.Rows)
	assert.Equal(t, 3, result.Skipped)
}

func TestParse_HeaderErrors(t *testing.T) {
	_, err := newTestReader().Parse(context.Background(), strings.NewReader(""))
	require.Error(t, err)

	_, err = newTestReader().Parse(context.Background(), strings.NewReader("Name,Team\nA,B\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Player")
}

func TestParse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := header + "Cole Palmer,eng ENG,MF,Chelsea,Premier League,21,34,33,2618,29.1,22,11,33,13,9,9,5,0,17.7,10.8,10.9,21.7,72,207,373\n"
	_, err := newTestReader().Parse(ctx, strings.NewReader(input))
	require.ErrorIs(t, err, context.Canceled)
}
