package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps slots as plain Redis string keys under a fixed prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return &RedisStore{client: client, prefix: "fitnote:slot:"}, nil
}

// Put stores data under the named slot.
func (s *RedisStore) Put(ctx context.Context, slot string, data []byte) error {
	return s.client.Set(ctx, s.prefix+slot, data, 0).Err()
}

// Get returns the stored value, or ErrNotFound for an absent key.
func (s *RedisStore) Get(ctx context.Context, slot string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+slot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
