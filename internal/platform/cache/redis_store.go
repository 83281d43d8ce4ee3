package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-stats/internal/platform/resilience"
)

// RedisStore is a shared second level keyed the same way as Store. Values are
// JSON encoded with sonic; calls go through the breaker so a dead redis costs
// one fast failure instead of a timeout per request.
type RedisStore struct {
	client  redis.UniversalClient
	ttl     time.Duration
	prefix  string
	breaker *resilience.Breaker
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration, prefix string, breaker *resilience.Breaker) *RedisStore {
	return &RedisStore{
		client:  client,
		ttl:     ttl,
		prefix:  prefix,
		breaker: breaker,
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return crerr.Wrap(err, "ping redis")
	}
	return nil
}

// GetJSON decodes the value at key into dst. found is false on a miss.
func (s *RedisStore) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte
	err := s.breaker.Do(ctx, func(ctx context.Context) error {
		value, err := s.client.Get(ctx, s.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		raw = value
		return nil
	})
	if err != nil {
		return false, crerr.Wrapf(err, "redis get %s", key)
	}
	if raw == nil {
		return false, nil
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return false, crerr.Wrapf(err, "decode cached %s", key)
	}
	return true, nil
}

func (s *RedisStore) SetJSON(ctx context.Context, key string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(value); err != nil {
		return crerr.Wrapf(err, "encode cached %s", key)
	}

	err := s.breaker.Do(ctx, func(ctx context.Context) error {
		return s.client.Set(ctx, s.prefix+key, buf.Bytes(), s.ttl).Err()
	})
	if err != nil {
		return crerr.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
