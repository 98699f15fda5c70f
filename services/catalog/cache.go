package catalog

import (
	"context"
	"encoding/json"
	"time"

	"wanderbook/models"

	"github.com/go-redis/redis/v8"
)

// ExperienceCache caches experience detail documents.
type ExperienceCache interface {
	Get(ctx context.Context, id string) (*models.Experience, error)
	Set(ctx context.Context, exp *models.Experience) error
	Invalidate(ctx context.Context, id string) error
}

// RedisExperienceCache implements ExperienceCache on Redis.
type RedisExperienceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisExperienceCache creates a cache with the given TTL.
func NewRedisExperienceCache(client *redis.Client, ttl time.Duration) *RedisExperienceCache {
	return &RedisExperienceCache{client: client, ttl: ttl}
}

const cacheKeyPrefix = "catalog:experience:"

func experienceKey(id string) string {
	return cacheKeyPrefix + id
}

func (c *RedisExperienceCache) Get(ctx context.Context, id string) (*models.Experience, error) {
	val, err := c.client.Get(ctx, experienceKey(id)).Result()
	if err != nil {
		return nil, err
	}

	var exp models.Experience
	if err := json.Unmarshal([]byte(val), &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (c *RedisExperienceCache) Set(ctx context.Context, exp *models.Experience) error {
	data, err := json.Marshal(exp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, experienceKey(exp.ID), data, c.ttl).Err()
}

// Invalidate drops the cached document; booking writes call this so slot
// counters shown to clients stay fresh.
func (c *RedisExperienceCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, experienceKey(id)).Err()
}
