package redisstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"travel_catalog/internal/adapters/observability"
)

// Store keeps each collection as one JSON blob under its snapshot key.
// No TTL: snapshots are durable state, not a cache.
type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return &Store{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	v, err := s.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveStore("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveStore("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

func (s *Store) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveStore("redis", "save")
	return s.c.Set(ctx, key, b, 0).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.c.Ping(ctx).Err()
}
