package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore reads settings from Redis, keyed by the setting name. Useful
// when the service runs next to a cache it already operates rather than a
// Postgres server.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis URL is required for the redis settings backend")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().
			Err(err).
			Str("addr", addr).
			Msg("Failed to establish Redis connection")
		return nil, fmt.Errorf("could not reach redis: %w", err)
	}

	log.Info().Msg("Redis settings store connected")
	return &RedisStore{client: client}, nil
}

// Get retrieves a setting value from Redis
func (s *RedisStore) Get(ctx context.Context, name string) (string, bool, error) {
	val, err := s.client.Get(ctx, name).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		log.Error().
			Err(err).
			Str("setting", name).
			Msg("Failed to read setting from redis")
		return "", false, fmt.Errorf("failed to get %q setting: %w", name, err)
	}
	return val, true, nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
