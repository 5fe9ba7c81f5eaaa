package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/campusconn/backend/internal/pkg/logger"
)

// Cache is a thin read-through cache over Redis, used for reference data
// with a high read ratio (campus info). A nil *Cache is valid and behaves
// as a permanent miss, so callers never branch on whether Redis is
// configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and returns a Cache. An empty addr returns a nil
// Cache (caching disabled).
func New(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info().Str("addr", addr).Msg("Redis cache connected")
	return &Cache{client: client, ttl: ttl}, nil
}

// GetJSON fetches key and unmarshals it into dest. Returns false on a
// miss. Redis outages are logged and reported as misses so reads fall
// through to the database.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache payload corrupt, ignoring")
		return false
	}
	return true
}

// SetJSON stores v under key with the configured TTL. Failures are logged
// and swallowed; the cache is never load-bearing.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache marshal failed")
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Delete removes a key, used when reference data is upserted.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache delete failed")
	}
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
