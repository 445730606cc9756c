package cursor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "nyks-indexer:cursor"

// RedisStore keeps the height under a single key without expiry.
type RedisStore struct {
	client  RedisClient
	key     string
	metrics Metrics
}

func NewRedisStore(client RedisClient, key string, metrics Metrics) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if metrics == nil {
		return nil, errors.New("metrics is nil")
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, metrics: metrics}, nil
}

func (s *RedisStore) Load(ctx context.Context) (height uint64, found bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("load_cursor", err, started)
	}()

	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", s.key, err)
	}
	height, err = parseHeight(raw)
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}

func (s *RedisStore) Save(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("save_cursor", err, started)
	}()

	if err = s.client.Set(ctx, s.key, strconv.FormatUint(height, 10), 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.key, err)
	}
	return nil
}
