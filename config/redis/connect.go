package redis

import (
	"fmt"

	"secops-console/config"
	pkgRedis "secops-console/pkg/redis"
)

// Connect initializes and returns a Redis client.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	client, err := pkgRedis.New(pkgRedis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
