package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type ImportResult struct {
	Received int
	Imported int
	Rejected int
	Version  int64
}

// ImportService replaces the stored dataset with a freshly parsed one.
type ImportService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewImportService(playerRepo player.Repository, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{playerRepo: playerRepo, logger: logger}
}

// ReplaceAll recomputes per-90 columns, drops invalid rows and swaps the table.
// Ids are reassigned in input order.
func (s *ImportService) ReplaceAll(ctx context.Context, players []player.Player) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ReplaceAll", attribute.Int("rows", len(players)))
	defer span.End()

	result := ImportResult{Received: len(players)}
	if len(players) == 0 {
		return result, fmt.Errorf("%w: no player rows to import", ErrInvalidInput)
	}

	valid := make([]player.Player, 0, len(players))
	for i, p := range players {
		p.FillPer90()
		if err := p.Validate(); err != nil {
			result.Rejected++
			s.logger.WarnContext(ctx, "rejecting player row", "row", i, "name", p.Name, "error", err)
			continue
		}
		p.ID = int64(len(valid) + 1)
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return result, fmt.Errorf("%w: every player row was rejected", ErrInvalidInput)
	}

	version, err := s.playerRepo.ReplaceAll(ctx, valid)
	if err != nil {
		return result, storeError("replace players", err)
	}
	result.Imported = len(valid)
	result.Version = version

	s.logger.InfoContext(ctx, "player dataset replaced",
		"received", result.Received,
		"imported", result.Imported,
		"rejected", result.Rejected,
		"version", version,
	)
	return result, nil
}
