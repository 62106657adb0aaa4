package locker

import (
	"context"
	"fmt"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlotBookingKey is the lock guarding the booking of one slot.
func SlotBookingKey(slotID string) string {
	return fmt.Sprintf(constvars.LockKeySlotBookingFormat, slotID)
}

// slotLock is the record stored under a lock key.
type slotLock struct {
	Owner      string    `json:"owner"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

type lockService struct {
	redisRepo  contracts.RedisRepository
	defaultTTL time.Duration
	Log        *zap.Logger
	now        func() time.Time
}

// NewLockService returns a LockerService backed by Redis SETNX, shared by
// every replica of the service. A lock requested without expiration lives for
// the configured slot lock TTL.
func NewLockService(repo contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo:  repo,
		defaultTTL: slotLockTTL(internalConfig),
		Log:        logger,
		now:        time.Now,
	}
}

func slotLockTTL(internalConfig *config.InternalConfig) time.Duration {
	ttl := time.Duration(internalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	if ttl <= 0 {
		ttl = constvars.DefaultSlotLockTTL
	}
	return ttl
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if expiration <= 0 {
		expiration = s.defaultTTL
	}

	record := slotLock{Owner: uuid.NewString(), AcquiredAt: s.now().UTC()}
	acquired, err := s.redisRepo.TrySetNX(ctx, key, record, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	s.Log.Debug("lockService.TryLock finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Bool(constvars.LoggingSuccessKey, acquired),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)
	if !acquired {
		return false, "", nil
	}
	return true, record.Owner, nil
}

// Unlock releases key when owner still holds it. An expired lock is already
// released.
func (s *lockService) Unlock(ctx context.Context, key, owner string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	stored, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	if stored == "" {
		return nil
	}

	var record slotLock
	err = json.Unmarshal([]byte(stored), &record)
	if err != nil {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s holds an unreadable record: %w", key, err))
	}
	if record.Owner != owner {
		err = exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is held by another owner", key))
		s.Log.Warn("lockService.Unlock lock taken over after expiry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Time("acquired_at", record.AcquiredAt),
		)
		return err
	}

	err = s.redisRepo.Delete(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}
