package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// ConnectRedis initializes the shared Redis client. Redis is optional: when
// no REDIS_ADDR is configured, or in the test environment, session sets,
// rate limiting, and reminder leader election all degrade to their
// single-instance behavior.
func ConnectRedis() {
	redisOnce.Do(func() {
		if os.Getenv("APPENV") == "test" {
			return
		}
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			log.Println("REDIS_ADDR not set, redis-backed features disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable at %s: %v", addr, err)
			return
		}
		redisClient = client
	})
}

// GetRedisClient returns the shared Redis client, or nil when Redis is not
// configured. Callers must handle nil.
func GetRedisClient() *redis.Client {
	return redisClient
}
