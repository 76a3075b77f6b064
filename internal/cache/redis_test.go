package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanaosei/campusfit-backend/internal/config"
	"github.com/nanaosei/campusfit-backend/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := []models.SubscriptionPlan{
		{ID: 1, Name: "Student Monthly", UserType: "student", Price: 50.0, DurationDays: 30, DurationKind: "online"},
	}
	require.NoError(t, cache.Set("plans:student", expected, time.Hour))

	var actual []models.SubscriptionPlan
	found, err := cache.Get("plans:student", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out []models.SubscriptionPlan
	found, err := cache.Get("plans:missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("plans:all", []models.SubscriptionPlan{{ID: 1}}, time.Hour))
	require.NoError(t, cache.Invalidate("plans:all"))

	var out []models.SubscriptionPlan
	found, err := cache.Get("plans:all", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
