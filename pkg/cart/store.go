package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"foodmarket/config"
)

// SnapshotStore persists serialized cart snapshots keyed per session.
type SnapshotStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ErrNoSnapshot is returned by Load when no snapshot exists for the key.
var ErrNoSnapshot = fmt.Errorf("cart: no snapshot")

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects a snapshot store to Redis. Carts expire after ttl
// of inactivity; zero means they never expire.
func NewRedisStore(cfg config.Config, ttl time.Duration) (SnapshotStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
