package main

import (
	"context"
	"log"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/delivery/http/controllers"
	"medportal-service/internal/app/delivery/http/middlewares"
	"medportal-service/internal/app/delivery/http/routers"
	"medportal-service/internal/app/drivers/database"
	"medportal-service/internal/app/drivers/logger"
	"medportal-service/internal/app/drivers/messaging"
	"medportal-service/internal/app/services/backend"
	"medportal-service/internal/app/services/core/appointments"
	"medportal-service/internal/app/services/core/booking"
	"medportal-service/internal/app/services/core/reference"
	"medportal-service/internal/app/services/core/schedule"
	"medportal-service/internal/app/services/core/session"
	"medportal-service/internal/app/services/shared/locker"
	"medportal-service/internal/app/services/shared/metrics"
	"medportal-service/internal/app/services/shared/notifier"
	"medportal-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, zapLogger)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, zapLogger)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Slot locks
	var lockService contracts.LockerService
	if bootstrap.Redis != nil {
		lockService = locker.NewLockService(redis.NewRedisRepository(bootstrap.Redis), internalConfig, log)
	} else {
		log.Warn("Redis disabled, slot locks are held in process")
		lockService = locker.NewLocalLockService(internalConfig)
	}

	// Booking events
	var eventPublisher contracts.BookingEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := notifier.NewBookingPublisher(bootstrap.RabbitMQ, internalConfig.Booking.EventsQueue, log)
		if err != nil {
			log.Fatal("Failed to set up booking event publisher", zap.Error(err))
		}
		eventPublisher = publisher
	} else {
		eventPublisher = notifier.NewNoopPublisher(log)
	}

	// Scheduling backend
	transport := backend.NewTransport(internalConfig, metrics.NewBackendMetrics(prometheus.DefaultRegisterer), log)
	hospitalClient := backend.NewHospitalClient(transport, log)
	doctorClient := backend.NewDoctorClient(transport, log)
	slotClient := backend.NewSlotClient(transport, log)
	appointmentClient := backend.NewAppointmentClient(transport, log)

	// Screen sessions
	bookingStore := session.NewStore[*booking.Form]("booking", log)
	scheduleStore := session.NewStore[*schedule.View]("schedule", log)
	sweeper := session.NewSweeper(log, internalConfig, bookingStore, scheduleStore)
	sweeper.Start(context.Background())
	bootstrap.WorkerStop = sweeper.Stop

	// Usecases
	referenceUsecase := reference.NewReferenceUsecase(hospitalClient, doctorClient, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClient, lockService, eventPublisher, internalConfig, log)
	bookingUsecase := booking.NewBookingUsecase(bookingStore, hospitalClient, doctorClient, slotClient, appointmentUsecase, internalConfig, log)
	scheduleUsecase := schedule.NewScheduleUsecase(scheduleStore, slotClient, internalConfig, log)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(log, internalConfig),
		controllers.NewReferenceController(referenceUsecase, log),
		controllers.NewBookingController(bookingUsecase, log),
		controllers.NewScheduleController(scheduleUsecase, log),
	)
}
