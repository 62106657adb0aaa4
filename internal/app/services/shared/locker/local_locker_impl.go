package locker

import (
	"context"
	"fmt"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localLock struct {
	value     string
	expiresAt time.Time
}

// localLockService is used when Redis is disabled; locks only hold within
// this process.
type localLockService struct {
	mu         sync.Mutex
	locks      map[string]localLock
	defaultTTL time.Duration
	now        func() time.Time
}

func NewLocalLockService(internalConfig *config.InternalConfig) contracts.LockerService {
	return &localLockService{
		locks:      make(map[string]localLock),
		defaultTTL: slotLockTTL(internalConfig),
		now:        time.Now,
	}
}

func (s *localLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expiration <= 0 {
		expiration = s.defaultTTL
	}
	now := s.now()
	if current, ok := s.locks[key]; ok && now.Before(current.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = localLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (s *localLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.locks[key]
	if !ok || !s.now().Before(current.expiresAt) {
		delete(s.locks, key)
		return nil
	}
	if current.value != lockValue {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is held by another owner", key))
	}
	delete(s.locks, key)
	return nil
}
