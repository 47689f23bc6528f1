// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"restohours/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client for open-restaurant answers.
var CacheClient *redis.Client

// InitCache connects the cache client using the Redis settings in AppConfig.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the cache client, connecting on first use. It returns nil
// when Redis cannot be reached; callers then run without a cache.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		if err := InitCache(); err != nil {
			GetLogger().Sugar().Warnf("cache disabled: %v", err)
			return nil
		}
	}
	return CacheClient
}
