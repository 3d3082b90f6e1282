package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairosml/kairos-go/internal/models"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*ForecastCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	return NewForecastCache(client, ttl, logger), mr
}

func sampleRequest(model models.ModelName) *models.ForecastRequest {
	return &models.ForecastRequest{
		Model:   model,
		Ds:      []int64{0, 3600, 7200},
		Y:       []float64{1, 2, 3},
		Horizon: 2,
	}
}

func sampleResponse() *models.ForecastResponse {
	return &models.ForecastResponse{
		Points: []models.ForecastPoint{
			{T: "1970-01-01T03:00:00Z", Yhat: 4, IsFuture: true},
			{T: "1970-01-01T04:00:00Z", Yhat: 5, IsFuture: true},
		},
		Meta: models.ForecastMeta{Horizon: 2, HistoryCount: 3},
	}
}

func TestForecastCache_KeyDeterministic(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)

	k1 := c.Key(sampleRequest(models.ModelETS))
	k2 := c.Key(sampleRequest(models.ModelETS))
	k3 := c.Key(sampleRequest(models.ModelTheta))

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "forecast_cache:")
}

func TestForecastCache_SetGetRoundTrip(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)
	ctx := context.Background()

	key := c.Key(sampleRequest(models.ModelETS))

	_, hit := c.Get(ctx, key)
	assert.False(t, hit)

	c.Set(ctx, key, sampleResponse())

	got, hit := c.Get(ctx, key)
	require.True(t, hit)
	require.Len(t, got.Points, 2)
	assert.Equal(t, "1970-01-01T03:00:00Z", got.Points[0].T)
	assert.Equal(t, 2, got.Meta.Horizon)

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
}

func TestForecastCache_TTLExpiry(t *testing.T) {
	c, mr := setupTestCache(t, time.Second)
	ctx := context.Background()

	key := c.Key(sampleRequest(models.ModelARIMA))
	c.Set(ctx, key, sampleResponse())

	mr.FastForward(2 * time.Second)

	_, hit := c.Get(ctx, key)
	assert.False(t, hit)
}

func TestForecastCache_Clear(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)
	ctx := context.Background()

	k1 := c.Key(sampleRequest(models.ModelETS))
	k2 := c.Key(sampleRequest(models.ModelTheta))
	c.Set(ctx, k1, sampleResponse())
	c.Set(ctx, k2, sampleResponse())

	require.NoError(t, c.Clear(ctx))

	_, hit := c.Get(ctx, k1)
	assert.False(t, hit)
	_, hit = c.Get(ctx, k2)
	assert.False(t, hit)
}
