package session

import (
	"context"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"
	"medportal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry[T any] struct {
	value    T
	ctx      context.Context
	cancel   context.CancelFunc
	lastSeen time.Time
}

// Store keeps the screen sessions of one kind. Each session owns a context
// that is cancelled when the session is closed or evicted.
type Store[T any] struct {
	name    string
	Log     *zap.Logger
	mu      sync.Mutex
	entries map[string]*entry[T]
	now     func() time.Time
}

func NewStore[T any](name string, logger *zap.Logger) *Store[T] {
	return &Store[T]{
		name:    name,
		Log:     logger,
		entries: make(map[string]*entry[T]),
		now:     time.Now,
	}
}

func (s *Store[T]) Name() string {
	return s.name
}

// Open registers value under a fresh session id.
func (s *Store[T]) Open(value T) string {
	sessionID := utils.GenerateSessionID()
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.entries[sessionID] = &entry[T]{
		value:    value,
		ctx:      ctx,
		cancel:   cancel,
		lastSeen: s.now(),
	}
	s.mu.Unlock()

	s.Log.Info("Store.Open succeeded",
		zap.String("store", s.name),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return sessionID
}

// Get returns the session value and its context, and marks it as active.
func (s *Store[T]) Get(sessionID string) (T, context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		var zero T
		return zero, nil, exceptions.ErrSessionNotFound(sessionID)
	}
	e.lastSeen = s.now()
	return e.value, e.ctx, nil
}

// Close removes the session and cancels every call still bound to it.
func (s *Store[T]) Close(sessionID string) error {
	s.mu.Lock()
	e, ok := s.entries[sessionID]
	delete(s.entries, sessionID)
	s.mu.Unlock()

	if !ok {
		return exceptions.ErrSessionNotFound(sessionID)
	}
	e.cancel()

	s.Log.Info("Store.Close succeeded",
		zap.String("store", s.name),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

// EvictIdle closes every session not used within maxIdle.
func (s *Store[T]) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var evicted []*entry[T]
	for sessionID, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, e)
			delete(s.entries, sessionID)
		}
	}
	s.mu.Unlock()

	for _, e := range evicted {
		e.cancel()
	}
	return len(evicted)
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Bind derives a context from ctx that is also cancelled when sessionCtx is.
func Bind(ctx, sessionCtx context.Context) (context.Context, context.CancelFunc) {
	bound, cancel := context.WithCancel(ctx)
	if sessionCtx == nil {
		return bound, cancel
	}
	stop := context.AfterFunc(sessionCtx, cancel)
	return bound, func() {
		stop()
		cancel()
	}
}
