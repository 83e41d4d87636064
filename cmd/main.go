package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	"github.com/tutorhub/lesson-booking-service/internal/config"
	availabilityStorage "github.com/tutorhub/lesson-booking-service/internal/infra/storage/availability"
	bookingStorage "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	classStorage "github.com/tutorhub/lesson-booking-service/internal/infra/storage/class"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/calendar"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/payments"
	availabilityService "github.com/tutorhub/lesson-booking-service/internal/service/availability"
	bookingsService "github.com/tutorhub/lesson-booking-service/internal/service/bookings"
	classesService "github.com/tutorhub/lesson-booking-service/internal/service/classes"
	"github.com/tutorhub/lesson-booking-service/internal/sweeper"
	cancelBookingUC "github.com/tutorhub/lesson-booking-service/internal/usecase/cancel_booking"
	confirmHoldUC "github.com/tutorhub/lesson-booking-service/internal/usecase/confirm_hold"
	getAvailableSlotsUC "github.com/tutorhub/lesson-booking-service/internal/usecase/get_available_slots"
	requestHoldUC "github.com/tutorhub/lesson-booking-service/internal/usecase/request_hold"
	rescheduleBookingUC "github.com/tutorhub/lesson-booking-service/internal/usecase/reschedule_booking"
	"github.com/tutorhub/lesson-booking-service/migrations"
	"github.com/tutorhub/lesson-booking-service/pkg/dbmetrics"
	"github.com/tutorhub/lesson-booking-service/pkg/logger"
	"github.com/tutorhub/lesson-booking-service/pkg/metrics"
	"github.com/tutorhub/lesson-booking-service/pkg/simpletxmanager"
	"github.com/tutorhub/lesson-booking-service/pkg/timeprovider"
	"github.com/tutorhub/lesson-booking-service/pkg/txmanager"

	cancelBookingHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/cancel_booking"
	confirmHoldHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/confirm_hold"
	createClassHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/create_class"
	getAvailabilityHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/get_booking"
	getInstructorBookingsHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/get_instructor_bookings"
	getInstructorClassesHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/get_instructor_classes"
	getStudentBookingsHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/get_student_bookings"
	requestHoldHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/request_hold"
	rescheduleBookingHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/reschedule_booking"
	updateAvailabilityHandler "github.com/tutorhub/lesson-booking-service/internal/api/handlers/update_availability"
)

const defaultIntegrationTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "путь к конфигурационному файлу")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.Info("[main] starting lesson-booking-service")

	// База данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		appLogger.Fatal("[main] failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		appLogger.Fatal("[main] failed to ping database: %v", err)
	}

	if cfg.Database.Migrate {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			appLogger.Fatal("[main] failed to set goose dialect: %v", err)
		}
		if err := goose.Up(db, "."); err != nil {
			appLogger.Fatal("[main] failed to run migrations: %v", err)
		}
		appLogger.Info("[main] migrations applied")
	}

	stopCh := make(chan struct{})
	defer close(stopCh)

	// Метрики опциональны: без них репозитории работают поверх чистого *sql.DB
	var (
		appMetrics *metrics.Metrics
		dbExecutor bookingStorage.DBExecutor = db
		txMgr      interface {
			Do(ctx context.Context, fn func(ctx context.Context) error) error
			DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
			DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
		} = simpletxmanager.NewTransactionManager(db)
	)
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New(cfg.Metrics.ServiceName)
		wrapped := dbmetrics.WrapWithDefault(db, appMetrics, cfg.Metrics.ServiceName, stopCh)
		dbExecutor = wrapped
		txMgr = txmanager.NewTransactionManager(wrapped)
	}

	timeProvider := timeprovider.New()

	// Репозитории
	bookingRepo := bookingStorage.NewRepository(dbExecutor, timeProvider)
	availabilityRepo := availabilityStorage.NewRepository(dbExecutor)
	classRepo := classStorage.NewRepository(dbExecutor)

	// Интеграции
	paymentsClient := payments.NewClient(cfg.Payments.URL, integrationTimeout(cfg.Payments), appLogger)
	notificationsClient := notifications.NewClient(cfg.Notifications.URL, integrationTimeout(cfg.Notifications), appLogger)
	calendarClient := calendar.NewClient(cfg.Calendar.URL, integrationTimeout(cfg.Calendar), appLogger)

	holdTTL := time.Duration(cfg.Booking.HoldTTLMinutes) * time.Minute
	cutoff := time.Duration(cfg.Booking.CutoffHours) * time.Hour

	// Сценарии
	requestHold := requestHoldUC.New(bookingRepo, availabilityRepo, classRepo, paymentsClient,
		txMgr, timeProvider, holdTTL, appLogger)
	confirmHold := confirmHoldUC.New(bookingRepo, classRepo, paymentsClient, notificationsClient,
		calendarClient, txMgr, timeProvider, appLogger)
	getAvailableSlots := getAvailableSlotsUC.New(bookingRepo, availabilityRepo, classRepo,
		timeProvider, appLogger)
	rescheduleBooking := rescheduleBookingUC.New(bookingRepo, availabilityRepo, classRepo,
		notificationsClient, calendarClient, txMgr, timeProvider, cutoff, appLogger)
	cancelBooking := cancelBookingUC.New(bookingRepo, classRepo, paymentsClient,
		notificationsClient, calendarClient, txMgr, timeProvider, cutoff,
		cfg.Booking.PlatformFeePercent, appLogger)

	// Сервисы
	bookingsSvc := bookingsService.New(bookingRepo, appLogger)
	availabilitySvc := availabilityService.New(availabilityRepo, appLogger)
	classesSvc := classesService.New(classRepo, appLogger)

	// Фоновая зачистка истёкших холдов
	holdSweeper := sweeper.New(bookingRepo, sweepMetrics(appMetrics), timeProvider, appLogger)
	if err := holdSweeper.Start(cfg.Booking.SweepSchedule); err != nil {
		appLogger.Fatal("[main] failed to start sweeper: %v", err)
	}
	defer holdSweeper.Stop()

	// Маршрутизация
	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		router.Use(middleware.Metrics(appMetrics))
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(appLogger))

	api.Handle("/instructors/{instructor_id}/slots",
		http.HandlerFunc(getAvailableSlotsHandler.New(getAvailableSlots, timeProvider, appLogger).Handle)).Methods(http.MethodGet)
	api.Handle("/instructors/{instructor_id}/availability",
		http.HandlerFunc(getAvailabilityHandler.New(availabilitySvc, appLogger).Handle)).Methods(http.MethodGet)
	api.Handle("/instructors/{instructor_id}/availability",
		http.HandlerFunc(updateAvailabilityHandler.New(availabilitySvc, appLogger).Handle)).Methods(http.MethodPut)
	api.Handle("/instructors/{instructor_id}/bookings",
		http.HandlerFunc(getInstructorBookingsHandler.New(bookingsSvc, appLogger).Handle)).Methods(http.MethodGet)
	api.Handle("/instructors/{instructor_id}/classes",
		http.HandlerFunc(getInstructorClassesHandler.New(classesSvc, appLogger).Handle)).Methods(http.MethodGet)

	api.Handle("/classes",
		http.HandlerFunc(createClassHandler.New(classesSvc, appLogger).Handle)).Methods(http.MethodPost)

	api.Handle("/bookings/hold",
		http.HandlerFunc(requestHoldHandler.New(requestHold, appLogger).Handle)).Methods(http.MethodPost)
	api.Handle("/bookings/{booking_id}/confirm",
		http.HandlerFunc(confirmHoldHandler.New(confirmHold, appLogger).Handle)).Methods(http.MethodPost)
	api.Handle("/bookings/{booking_id}/reschedule",
		http.HandlerFunc(rescheduleBookingHandler.New(rescheduleBooking, appLogger).Handle)).Methods(http.MethodPost)
	api.Handle("/bookings/{booking_id}/cancel",
		http.HandlerFunc(cancelBookingHandler.New(cancelBooking, appLogger).Handle)).Methods(http.MethodPost)
	api.Handle("/bookings/{booking_id}",
		http.HandlerFunc(getBookingHandler.New(bookingsSvc, appLogger).Handle)).Methods(http.MethodGet)

	api.Handle("/students/{student_id}/bookings",
		http.HandlerFunc(getStudentBookingsHandler.New(bookingsSvc, appLogger).Handle)).Methods(http.MethodGet)

	// HTTP-сервер
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		appLogger.Info("[main] listening on :%d", cfg.Server.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("[main] server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("[main] graceful shutdown failed: %v", err)
	}

	appLogger.Info("[main] stopped")
}

func integrationTimeout(cfg config.IntegrationConfig) time.Duration {
	if cfg.Timeout > 0 {
		return time.Duration(cfg.Timeout) * time.Second
	}
	return defaultIntegrationTimeout
}

// sweepMetrics возвращает счётчик для sweeper'а; при выключенных метриках - заглушку
func sweepMetrics(m *metrics.Metrics) sweeper.Metrics {
	if m != nil {
		return m
	}
	return noopSweepMetrics{}
}

type noopSweepMetrics struct{}

func (noopSweepMetrics) AddSweepDeleted(int64) {}
