package session

import (
	"context"
	"medportal-service/internal/app/config"
	"medportal-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultSweepCronSpec = "@every 1m"

type Evictor interface {
	Name() string
	EvictIdle(maxIdle time.Duration) int
}

// Sweeper periodically closes idle screen sessions.
type Sweeper struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	stores  []Evictor
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
	maxIdle time.Duration
}

func NewSweeper(log *zap.Logger, cfg *config.InternalConfig, stores ...Evictor) *Sweeper {
	return &Sweeper{
		log:     log,
		cfg:     cfg,
		stores:  stores,
		maxIdle: time.Duration(cfg.Session.IdleTimeoutInMinutes) * time.Minute,
	}
}

func (w *Sweeper) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cfg.Session.SweepCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("session.sweeper: failed to schedule with provided cron spec; falling back to default",
			zap.String("spec", w.cfg.Session.SweepCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultSweepCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running sweep to finish.
func (w *Sweeper) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Sweeper) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	for _, store := range w.stores {
		evicted := store.EvictIdle(w.maxIdle)
		if evicted > 0 {
			w.log.Info("session.sweeper: evicted idle sessions",
				zap.String("store", store.Name()),
				zap.Int(constvars.LoggingSessionCountKey, evicted),
			)
		}
	}
}
