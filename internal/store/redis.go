package store

import (
	"context"                    // Context for Redis operations
	"crypto_bot/internal/domain" // Importing domain models
	"encoding/json"              // JSON encoding/decoding

	"github.com/redis/go-redis/v9" // Redis client
)

// usersKey is the Redis key holding the full user mapping snapshot
const usersKey = "bot:users"

// Compile-time check to ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// RedisStore keeps the whole user mapping as one JSON value in Redis
type RedisStore struct {
	rdb *redis.Client // Redis client
}

// NewRedisStore returns a store backed by the given Redis client
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Load reads the entire user mapping from Redis
func (s *RedisStore) Load(ctx context.Context) (map[string]*domain.UserRecord, error) {
	val, err := s.rdb.Get(ctx, usersKey).Result() // Get snapshot from Redis
	if err == redis.Nil {
		return map[string]*domain.UserRecord{}, nil // No snapshot yet, start empty
	} else if err != nil {
		return nil, err // Other Redis error
	}
	users := map[string]*domain.UserRecord{}
	if err := json.Unmarshal([]byte(val), &users); err != nil {
		return nil, err // Unmarshal JSON into the mapping
	}
	return users, nil
}

// Save rewrites the entire user mapping in Redis
func (s *RedisStore) Save(ctx context.Context, users map[string]*domain.UserRecord) error {
	b, err := json.Marshal(users) // Marshal the full mapping to JSON
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, usersKey, b, 0).Err() // Snapshot never expires
}
