package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis is the subset of Redis operations the engine uses: health pings
// and Pub/Sub publishes for in-console notification fan-out.
type IRedis interface {
	Publish(ctx context.Context, channel string, payload any) error
	Ping(ctx context.Context) error
	Close() error
	GetClient() *goredis.Client
}

// New connects a Redis client and verifies the connection with a ping.
func New(cfg Config) (IRedis, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}

// DefaultConnectTimeout is the timeout for the initial connection ping.
const DefaultConnectTimeout = 5 * time.Second
