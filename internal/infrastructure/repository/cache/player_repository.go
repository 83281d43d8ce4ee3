package cache

import (
	"context"
	"strconv"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/football-stats/internal/domain/player"
	basecache "github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// SharedStore is the optional second cache level, normally redis.
type SharedStore interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

// PlayerRepository caches reads under the current dataset version. A bulk load
// anywhere bumps the version, so stale keys are never read again.
type PlayerRepository struct {
	next   player.Repository
	cache  *basecache.Store
	shared SharedStore
	logger *logging.Logger

	mu          sync.Mutex
	seenVersion int64
}

type Option func(*PlayerRepository)

func WithSharedStore(shared SharedStore) Option {
	return func(r *PlayerRepository) {
		r.shared = shared
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(r *PlayerRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store, opts ...Option) *PlayerRepository {
	r := &PlayerRepository{
		next:   next,
		cache:  cache,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	filterKey, err := sonic.MarshalString(filter)
	if err != nil {
		return r.next.List(ctx, filter)
	}

	items, err := load(ctx, r, "list:"+filterKey, func(ctx context.Context) ([]player.Player, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	cached, err := load(ctx, r, "id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (cachedPlayerByID, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return cachedPlayerByID{}, err
		}
		return cachedPlayerByID{Value: item, Exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

type cachedPlayerByID struct {
	Value  player.Player
	Exists bool
}

func (r *PlayerRepository) ListCompetitions(ctx context.Context) ([]string, error) {
	items, err := load(ctx, r, "competitions", r.next.ListCompetitions)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), items...), nil
}

func (r *PlayerRepository) ListAges(ctx context.Context, competition string) ([]int, error) {
	items, err := load(ctx, r, "ages:"+competition, func(ctx context.Context) ([]int, error) {
		return r.next.ListAges(ctx, competition)
	})
	if err != nil {
		return nil, err
	}
	return append([]int(nil), items...), nil
}

func (r *PlayerRepository) Summarize(ctx context.Context, filter player.Filter) (player.Summary, error) {
	filterKey, err := sonic.MarshalString(filter)
	if err != nil {
		return r.next.Summarize(ctx, filter)
	}
	return load(ctx, r, "summary:"+filterKey, func(ctx context.Context) (player.Summary, error) {
		return r.next.Summarize(ctx, filter)
	})
}

func (r *PlayerRepository) ReplaceAll(ctx context.Context, players []player.Player) (int64, error) {
	version, err := r.next.ReplaceAll(ctx, players)
	if err != nil {
		return 0, err
	}
	r.cache.Purge()

	r.mu.Lock()
	r.seenVersion = version
	r.mu.Unlock()
	return version, nil
}

func (r *PlayerRepository) DatasetVersion(ctx context.Context) (int64, error) {
	return r.next.DatasetVersion(ctx)
}

// keyPrefix reads the live dataset version and drops local entries of the
// previous one when it moved.
func (r *PlayerRepository) keyPrefix(ctx context.Context) (string, error) {
	version, err := r.next.DatasetVersion(ctx)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	previous := r.seenVersion
	r.seenVersion = version
	r.mu.Unlock()

	if previous != 0 && previous != version {
		removed := r.cache.DeletePrefix(ctx, versionPrefix(previous))
		r.logger.DebugContext(ctx, "dataset version changed, dropped cached reads",
			"previous_version", previous,
			"version", version,
			"removed", removed,
		)
	}
	return versionPrefix(version), nil
}

func versionPrefix(version int64) string {
	return "players:v" + strconv.FormatInt(version, 10) + ":"
}

// load resolves key through the local store, then the shared store, then next.
func load[T any](ctx context.Context, r *PlayerRepository, key string, fetch func(context.Context) (T, error)) (T, error) {
	prefix, err := r.keyPrefix(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	key = prefix + key

	return basecache.Load(ctx, r.cache, key, func(ctx context.Context) (T, error) {
		var out T
		if r.shared != nil {
			found, err := r.shared.GetJSON(ctx, key, &out)
			if err != nil {
				r.logger.WarnContext(ctx, "shared cache read failed", "key", key, "error", err)
			} else if found {
				return out, nil
			}
		}

		out, err := fetch(ctx)
		if err != nil {
			return out, err
		}

		if r.shared != nil {
			if err := r.shared.SetJSON(ctx, key, out); err != nil {
				r.logger.WarnContext(ctx, "shared cache write failed", "key", key, "error", err)
			}
		}
		return out, nil
	})
}
