package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client used for seat-count snapshot
// caching. Returns nil when REDIS_ADDR is unset or the server is
// unreachable; callers degrade gracefully to uncached reads.
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Println("⚠️ Redis not configured, seat-count caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable (%s), seat-count caching disabled: %v", cfg.Redis.Addr, err)
		return nil
	}

	log.Printf("✅ Redis connected successfully [%s]", cfg.Redis.Addr)
	return client
}
