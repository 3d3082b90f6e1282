package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kairosml/kairos-go/internal/models"
)

// ForecastCacheStats tracks cache performance metrics
type ForecastCacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
	mu     sync.RWMutex
}

// ForecastCache is a Redis-backed response cache keyed by the full request
// payload. Identical requests are deterministic for the statistical models,
// so a hit can be served without touching the engine.
type ForecastCache struct {
	redis  *redis.Client
	ttl    time.Duration
	stats  *ForecastCacheStats
	prefix string
	logger *logrus.Logger
}

// NewForecastCache creates a new Redis-based forecast response cache.
func NewForecastCache(redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *ForecastCache {
	return &ForecastCache{
		redis:  redisClient,
		ttl:    ttl,
		stats:  &ForecastCacheStats{},
		prefix: "forecast_cache:",
		logger: logger,
	}
}

// Key derives a stable cache key from the request payload.
func (c *ForecastCache) Key(req *models.ForecastRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get retrieves a cached forecast response. The second return reports
// whether the lookup was a hit.
func (c *ForecastCache) Get(ctx context.Context, key string) (*models.ForecastResponse, bool) {
	if key == "" {
		return nil, false
	}

	data, err := c.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		c.stats.mu.Lock()
		c.stats.Misses++
		c.stats.mu.Unlock()
		return nil, false
	}
	if err != nil {
		c.logger.WithError(err).Warn("Redis error reading forecast cache")
		c.stats.mu.Lock()
		c.stats.Misses++
		c.stats.mu.Unlock()
		return nil, false
	}

	var resp models.ForecastResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		c.logger.WithError(err).Warn("Error deserializing cached forecast")
		c.stats.mu.Lock()
		c.stats.Misses++
		c.stats.mu.Unlock()
		return nil, false
	}

	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()

	return &resp, true
}

// Set stores a forecast response under the given key with the configured TTL.
// Failures are logged and swallowed; caching is best-effort.
func (c *ForecastCache) Set(ctx context.Context, key string, resp *models.ForecastResponse) {
	if key == "" {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.WithError(err).Warn("Error serializing forecast for cache")
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Redis error writing forecast cache")
		return
	}

	c.stats.mu.Lock()
	c.stats.Sets++
	c.stats.mu.Unlock()
}

// GetStats returns current cache statistics
func (c *ForecastCache) GetStats() ForecastCacheStats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()
	return ForecastCacheStats{
		Hits:   c.stats.Hits,
		Misses: c.stats.Misses,
		Sets:   c.stats.Sets,
	}
}

// Clear removes all cached forecasts.
func (c *ForecastCache) Clear(ctx context.Context) error {
	var keys []string
	iter := c.redis.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.redis.Del(ctx, keys...).Err()
}
