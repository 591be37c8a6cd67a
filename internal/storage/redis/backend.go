// Package redis mirrors portfolio collections into redis string keys and
// publishes collection change events over pub/sub.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Backend implements storage.Backend. Keys never expire.
type Backend struct {
	client *redis.Client
	prefix string
}

func NewBackend(client *redis.Client, prefix string) *Backend {
	return &Backend{client: client, prefix: prefix}
}

// Dial connects and pings the server.
func Dial(ctx context.Context, opts *redis.Options, prefix string) (*Backend, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewBackend(client, prefix), nil
}

func (b *Backend) Client() *redis.Client { return b.client }

func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.client.Get(ctx, b.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, true, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	if err := b.client.Set(ctx, b.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Backend) Close() error {
	return b.client.Close()
}

func (b *Backend) key(k string) string {
	return b.prefix + k
}
