package session

import (
	"context"
	"medportal-service/internal/app/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type form struct {
	patientID string
}

func TestStore(t *testing.T) {
	t.Run("Open then Get", func(t *testing.T) {
		store := NewStore[*form]("booking", zap.NewNop())
		sessionID := store.Open(&form{patientID: "P1"})

		value, ctx, err := store.Get(sessionID)
		require.NoError(t, err)
		assert.Equal(t, "P1", value.patientID)
		assert.NoError(t, ctx.Err())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Unknown session is not found", func(t *testing.T) {
		store := NewStore[*form]("booking", zap.NewNop())

		_, _, err := store.Get("missing")
		assert.Error(t, err)
		assert.Error(t, store.Close("missing"))
	})

	t.Run("Close cancels the session context", func(t *testing.T) {
		store := NewStore[*form]("booking", zap.NewNop())
		sessionID := store.Open(&form{})
		_, ctx, err := store.Get(sessionID)
		require.NoError(t, err)

		require.NoError(t, store.Close(sessionID))

		assert.ErrorIs(t, ctx.Err(), context.Canceled)
		_, _, err = store.Get(sessionID)
		assert.Error(t, err)
	})

	t.Run("EvictIdle only removes idle sessions", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		store := NewStore[*form]("booking", zap.NewNop())
		store.now = func() time.Time { return now }

		idle := store.Open(&form{patientID: "idle"})
		now = now.Add(20 * time.Minute)
		active := store.Open(&form{patientID: "active"})
		now = now.Add(15 * time.Minute)

		assert.Equal(t, 1, store.EvictIdle(30*time.Minute))

		_, _, err := store.Get(idle)
		assert.Error(t, err)
		_, _, err = store.Get(active)
		assert.NoError(t, err)
	})
}

func TestBind(t *testing.T) {
	t.Run("Session cancellation reaches the bound context", func(t *testing.T) {
		sessionCtx, cancelSession := context.WithCancel(context.Background())
		bound, release := Bind(context.Background(), sessionCtx)
		defer release()

		cancelSession()

		select {
		case <-bound.Done():
		case <-time.After(time.Second):
			t.Fatal("bound context was not cancelled")
		}
	})

	t.Run("Release leaves the session untouched", func(t *testing.T) {
		sessionCtx, cancelSession := context.WithCancel(context.Background())
		defer cancelSession()

		bound, release := Bind(context.Background(), sessionCtx)
		release()

		assert.Error(t, bound.Err())
		assert.NoError(t, sessionCtx.Err())
	})
}

func TestSweeperRunOnce(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore[*form]("schedule", zap.NewNop())
	store.now = func() time.Time { return now }
	store.Open(&form{})
	now = now.Add(time.Hour)

	cfg := &config.InternalConfig{Session: config.Session{IdleTimeoutInMinutes: 30, SweepCronSpec: "not a spec"}}
	sweeper := NewSweeper(zap.NewNop(), cfg, store)
	sweeper.runOnce(context.Background())

	assert.Equal(t, 0, store.Len())

	sweeper.Start(context.Background())
	sweeper.Stop()
}
