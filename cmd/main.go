package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/padelplus/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/padelplus/booking-service/internal/api/handlers/delete_booking"
	getCourtsHandler "github.com/padelplus/booking-service/internal/api/handlers/get_courts"
	getRevenueHandler "github.com/padelplus/booking-service/internal/api/handlers/get_revenue"
	getUpcomingSessionsHandler "github.com/padelplus/booking-service/internal/api/handlers/get_upcoming_sessions"
	listBookingsHandler "github.com/padelplus/booking-service/internal/api/handlers/list_bookings"
	streamEventsHandler "github.com/padelplus/booking-service/internal/api/handlers/stream_events"
	"github.com/padelplus/booking-service/internal/api/middleware"
	"github.com/padelplus/booking-service/internal/catalog"
	"github.com/padelplus/booking-service/internal/config"
	"github.com/padelplus/booking-service/internal/infra/notify"
	bookingRepo "github.com/padelplus/booking-service/internal/infra/storage/booking"
	bookingsService "github.com/padelplus/booking-service/internal/service/bookings"
	createBookingUC "github.com/padelplus/booking-service/internal/usecase/create_booking"
	getUpcomingSessionsUC "github.com/padelplus/booking-service/internal/usecase/get_upcoming_sessions"
	"github.com/padelplus/booking-service/pkg/dbmetrics"
	"github.com/padelplus/booking-service/pkg/logger"
	"github.com/padelplus/booking-service/pkg/metrics"
	"github.com/padelplus/booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting padel booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог корта и пакетов
	var courtCatalog *catalog.Catalog
	if cfg.Catalog.Court != nil || len(cfg.Catalog.Packages) > 0 {
		courtCatalog, err = catalog.FromConfig(cfg.Catalog)
		if err != nil {
			log.Fatal("Failed to load catalog from config: %v", err)
		}
		log.Info("Catalog loaded from config (%d packages)", len(courtCatalog.Packages()))
	} else {
		courtCatalog = catalog.Default()
		log.Info("Using built-in club catalog (%d packages)", len(courtCatalog.Packages()))
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий и transaction manager.
	// При включённых метриках запросы вне транзакций идут через обёртку с таймингом
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		bookingRepository = bookingRepo.NewRepository(dbmetrics.Wrap(db, metricsCollector))
		log.Info("Database query metrics enabled")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем change feed: Postgres NOTIFY -> hub -> SSE подписчики
	hub := notify.NewHub()
	changeListener := notify.NewListener(cfg.Database.DSN(), hub, log)

	listenerCtx, stopListener := context.WithCancel(context.Background())
	defer stopListener()

	go func() {
		if err := changeListener.Run(listenerCtx); err != nil && listenerCtx.Err() == nil {
			log.Error("Change feed listener stopped: %v", err)
		}
	}()
	log.Info("Change feed listener started")

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtCatalog,
		txMgr,
		log,
	)

	getUpcomingSessionsUseCase := getUpcomingSessionsUC.NewUseCase(
		bookingRepository,
		courtCatalog,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUpcomingSessions := getUpcomingSessionsHandler.NewHandler(getUpcomingSessionsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getCourts := getCourtsHandler.NewHandler(courtCatalog, log)
	getRevenue := getRevenueHandler.NewHandler(bookingSvc, log)

	var streamMetrics streamEventsHandler.Metrics
	if cfg.Metrics.Enabled {
		streamMetrics = metricsCollector
	}
	streamEvents := streamEventsHandler.NewHandler(hub, streamMetrics, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог кортов клуба
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)

	// Предстоящие сессии с остатком мест
	api.HandleFunc("/sessions/upcoming", getUpcomingSessions.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Полный список бронирований
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Удаление бронирования (отмена)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Поток изменений для живого обновления интерфейса
	api.HandleFunc("/events", streamEvents.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (закрыты кодом доступа)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminGate(cfg.Admin.Code))

	// Сводка по выручке
	admin.HandleFunc("/revenue", getRevenue.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		// WriteTimeout должен быть нулевым: SSE соединения живут часами
		WriteTimeout: 0,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем change feed listener
	stopListener()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
