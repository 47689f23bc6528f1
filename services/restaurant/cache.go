package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"restohours/models"

	"github.com/go-redis/redis/v8"
)

// OpenCache stores FindOpen answers for a day index and minute.
type OpenCache interface {
	Get(ctx context.Context, dayIdx, timeInt int, inclusive bool) ([]string, bool, error)
	Set(ctx context.Context, dayIdx, timeInt int, inclusive bool, names []string) error
}

type RedisOpenCache struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

// NewRedisOpenCache returns a cache scoped to namespace. Use DatasetFingerprint so a
// changed dataset never reads answers computed for an older one.
func NewRedisOpenCache(client *redis.Client, ttl time.Duration, namespace string) *RedisOpenCache {
	return &RedisOpenCache{client: client, ttl: ttl, namespace: namespace}
}

const cacheKeyPrefix = "restaurants:open:"

func (c *RedisOpenCache) key(dayIdx, timeInt int, inclusive bool) string {
	mode := "inc"
	if !inclusive {
		mode = "exc"
	}
	return fmt.Sprintf("%s%s:%d:%04d:%s", cacheKeyPrefix, c.namespace, dayIdx, timeInt, mode)
}

func (c *RedisOpenCache) Get(ctx context.Context, dayIdx, timeInt int, inclusive bool) ([]string, bool, error) {
	val, err := c.client.Get(ctx, c.key(dayIdx, timeInt, inclusive)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var names []string
	if err := json.Unmarshal([]byte(val), &names); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return names, true, nil
}

func (c *RedisOpenCache) Set(ctx context.Context, dayIdx, timeInt int, inclusive bool, names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(dayIdx, timeInt, inclusive), data, c.ttl).Err()
}

// DatasetFingerprint returns a short stable hash of the loaded dataset.
func DatasetFingerprint(db []models.Restaurant) string {
	h := fnv.New64a()
	// encoding of plain structs cannot fail
	data, _ := json.Marshal(db)
	h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64())
}
