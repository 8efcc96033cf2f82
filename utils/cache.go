// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"boatify/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth token hashes in Redis.
const AuthCachePrefix = "auth_token:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when InitAuthCache has not run. Callers treat nil as a cache miss.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CacheAuthToken stores the hash of an issued token so the auth middleware can
// verify it without a DB round trip. Failures are non-fatal.
func CacheAuthToken(userID, token string, ttl time.Duration) {
	client := GetAuthCacheClient()
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, AuthCachePrefix+userID, HashToken(token), ttl).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to cache auth token for user %s: %v", userID, err)
	}
}
