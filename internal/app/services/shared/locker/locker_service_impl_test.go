package locker

import (
	"context"
	"medportal-service/internal/app/config"
	redisRepository "medportal-service/internal/app/services/shared/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bookingConfig(ttlSeconds int) *config.InternalConfig {
	return &config.InternalConfig{Booking: config.Booking{SlotLockTTLInSeconds: ttlSeconds}}
}

func TestSlotBookingKey(t *testing.T) {
	assert.Equal(t, "booking:slot:S1", SlotBookingKey("S1"))
}

func TestRedisLockService(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewLockService(redisRepository.NewRedisRepository(client), bookingConfig(45), zap.NewNop())

	t.Run("Second lock on same slot is refused", func(t *testing.T) {
		key := SlotBookingKey("S1")
		acquired, owner, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, owner)

		acquired, _, err = svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)

		require.NoError(t, svc.Unlock(ctx, key, owner))

		acquired, owner, err = svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		require.NoError(t, svc.Unlock(ctx, key, owner))
	})

	t.Run("Stored record names the owner", func(t *testing.T) {
		key := SlotBookingKey("S2")
		acquired, owner, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		raw, err := mr.Get(key)
		require.NoError(t, err)
		var record slotLock
		require.NoError(t, json.Unmarshal([]byte(raw), &record))
		assert.Equal(t, owner, record.Owner)
		assert.False(t, record.AcquiredAt.IsZero())

		assert.Error(t, svc.Unlock(ctx, key, "someone-else"))
		assert.True(t, mr.Exists(key), "foreign owner cannot release")
		assert.NoError(t, svc.Unlock(ctx, key, owner))
		assert.False(t, mr.Exists(key))
	})

	t.Run("Missing expiration uses the slot lock TTL", func(t *testing.T) {
		key := SlotBookingKey("S3")
		acquired, _, err := svc.TryLock(ctx, key, 0)
		require.NoError(t, err)
		require.True(t, acquired)

		assert.Equal(t, 45*time.Second, mr.TTL(key))
	})

	t.Run("Unlock after expiry is a no-op", func(t *testing.T) {
		key := SlotBookingKey("S4")
		acquired, owner, err := svc.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		mr.FastForward(2 * time.Second)

		assert.NoError(t, svc.Unlock(ctx, key, owner))
	})

	t.Run("Unreadable record is not deleted", func(t *testing.T) {
		key := SlotBookingKey("S5")
		require.NoError(t, mr.Set(key, "not-json"))

		assert.Error(t, svc.Unlock(ctx, key, "anyone"))
		assert.True(t, mr.Exists(key))
	})
}

func TestLocalLockService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := NewLocalLockService(bookingConfig(0)).(*localLockService)
	svc.now = func() time.Time { return now }
	key := SlotBookingKey("S1")

	acquired, owner, err := svc.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, _, err = svc.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	assert.Error(t, svc.Unlock(ctx, key, "other"))

	now = now.Add(2 * time.Minute)
	acquired, fresh, err := svc.TryLock(ctx, key, 0)
	require.NoError(t, err)
	assert.True(t, acquired, "expired lock can be taken again")

	assert.Error(t, svc.Unlock(ctx, key, owner), "stale owner cannot release a re-taken lock")

	now = now.Add(20 * time.Second)
	acquired, _, err = svc.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "default TTL still holds")

	assert.NoError(t, svc.Unlock(ctx, key, fresh))
}
