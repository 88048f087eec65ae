package utils

import (
	"context"
	"fmt"
	"time"

	"rentify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs the booking idempotency cache.
	CacheClient *redis.Client
	// QueueClient is the connection the confirmation queue health check pings.
	QueueClient *redis.Client
)

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis db %d: %w", db, err)
	}
	return client, nil
}

// InitRedis connects the cache and queue clients. It is a no-op when no
// Redis address is configured.
func InitRedis() error {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	var err error
	if CacheClient, err = newRedisClient(config.AppConfig.RedisCacheDB); err != nil {
		return err
	}
	if QueueClient, err = newRedisClient(config.AppConfig.RedisQueueDB); err != nil {
		return err
	}
	return nil
}

// RedisClients lists the connected clients for health monitoring.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{CacheClient, QueueClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
