package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/football-stats/internal/mocks/domain/player"
)

func seededRepository() *memory.PlayerRepository {
	return memory.NewPlayerRepository(memory.SeedPlayers())
}

func newMockRepository(t *testing.T) *playermock.Repository {
	t.Helper()
	return playermock.NewRepository(t)
}

func anyContext() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}
