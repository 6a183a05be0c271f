package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Publish marshals payload to JSON and publishes it on the given channel.
func (r *redisImpl) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("redis: marshal payload: %w", err)
	}
	return r.client.Publish(ctx, channel, data).Err()
}

// Ping checks if the connection is alive.
func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *redisImpl) Close() error {
	return r.client.Close()
}

// GetClient exposes the underlying client for subscribers.
func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
