package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

// PlayerRepository keeps the dataset in process. ReplaceAll swaps the whole
// slice under the write lock so readers always see one consistent version.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[int64]int
	version int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{}
	r.load(players)
	return r
}

func (r *PlayerRepository) load(players []player.Player) {
	r.players = append([]player.Player(nil), players...)
	r.index = make(map[int64]int, len(players))
	for i, p := range r.players {
		r.index[p.ID] = i
	}
	r.version++
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	player.SortPlayers(out, filter.OrderBy)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.players[i], true, nil
}

func (r *PlayerRepository) ListCompetitions(_ context.Context) ([]string, error) {
	r.mu.RLock()
	seen := make(map[string]struct{})
	for _, p := range r.players {
		if p.Competition != "" {
			seen[p.Competition] = struct{}{}
		}
	}
	r.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (r *PlayerRepository) ListAges(_ context.Context, competition string) ([]int, error) {
	r.mu.RLock()
	seen := make(map[int]struct{})
	for _, p := range r.players {
		if competition != "" && p.Competition != competition {
			continue
		}
		if p.Age > 0 {
			seen[p.Age] = struct{}{}
		}
	}
	r.mu.RUnlock()

	out := make([]int, 0, len(seen))
	for age := range seen {
		out = append(out, age)
	}
	sort.Ints(out)
	return out, nil
}

func (r *PlayerRepository) Summarize(ctx context.Context, filter player.Filter) (player.Summary, error) {
	filter.OrderBy = nil
	filter.Limit = 0
	items, err := r.List(ctx, filter)
	if err != nil {
		return player.Summary{}, err
	}
	return player.Summarize(items), nil
}

func (r *PlayerRepository) ReplaceAll(_ context.Context, players []player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.load(players)
	return r.version, nil
}

func (r *PlayerRepository) DatasetVersion(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version, nil
}
