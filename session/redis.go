package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisScope is a durable storage area backed by Redis, for deployments
// that run this layer on a shared host rather than a single machine.
type RedisScope struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisScope connects to Redis and verifies the connection.
func NewRedisScope(addr, password string, db int, ttl time.Duration) (*RedisScope, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (session): %w", err)
	}
	return &RedisScope{client: client, ttl: ttl}, nil
}

func (s *RedisScope) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := s.client.Get(ctx, sessionKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *RedisScope) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.client.Set(ctx, sessionKeyPrefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session key: %w", err)
	}
	return nil
}

func (s *RedisScope) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Del(ctx, sessionKeyPrefix+key).Err()
}
