package config

import (
	"medportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Backend: Backend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8081"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvFloat("BACKEND_MAX_REQUESTS_PER_SECOND", 50),
			MaxBurst:                utils.GetEnvInt("BACKEND_MAX_BURST", 10),
		},
		Booking: Booking{
			SlotLockTTLInSeconds:        utils.GetEnvInt("BOOKING_SLOT_LOCK_TTL_IN_SECONDS", 30),
			ReservationMaxRetries:       utils.GetEnvInt("BOOKING_RESERVATION_MAX_RETRIES", 3),
			ReservationInitialBackoffMs: utils.GetEnvInt("BOOKING_RESERVATION_INITIAL_BACKOFF_MS", 200),
			EventsQueue:                 utils.GetEnvString("BOOKING_EVENTS_QUEUE", "booking_events"),
		},
		Session: Session{
			IdleTimeoutInMinutes: utils.GetEnvInt("SESSION_IDLE_TIMEOUT_IN_MINUTES", 30),
			SweepCronSpec:        utils.GetEnvString("SESSION_SWEEP_CRON_SPEC", "@every 1m"),
		},
	}
}
