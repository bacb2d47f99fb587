package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore mirrors collections into Redis. Used as an alternative
// primary in front of a durable fallback; payloads have no TTL
// because collections are authoritative, not cached.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient создает новый клиент Redis на основе адреса и пароля
func NewRedisClient(addr, password string, db int) *redis.Client {
	options := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}

	return redis.NewClient(options)
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(name string) string {
	return fmt.Sprintf("collection:%s", name)
}

func (s *RedisStore) Get(ctx context.Context, name string) ([]byte, error) {
	if s.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection from redis: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Put(ctx context.Context, name string, data []byte) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := s.client.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set collection in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
