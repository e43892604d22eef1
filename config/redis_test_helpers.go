package config

import "github.com/redis/go-redis/v9"

// SetRedisClientForTest swaps the shared Redis client, returning a restore
// function. Tests pair this with redismock.
func SetRedisClientForTest(client *redis.Client) func() {
	previous := redisClient
	redisClient = client
	return func() {
		redisClient = previous
	}
}
