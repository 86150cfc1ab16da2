package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createConsultationHandler "github.com/astroya/consultation-service/internal/api/handlers/create_consultation"
	deleteAvailabilityRuleHandler "github.com/astroya/consultation-service/internal/api/handlers/delete_availability_rule"
	getAvailabilityRuleHandler "github.com/astroya/consultation-service/internal/api/handlers/get_availability_rule"
	getBookedTimesHandler "github.com/astroya/consultation-service/internal/api/handlers/get_booked_times"
	getUnavailableTimesHandler "github.com/astroya/consultation-service/internal/api/handlers/get_unavailable_times"
	listAvailabilityRulesHandler "github.com/astroya/consultation-service/internal/api/handlers/list_availability_rules"
	resetScheduleHandler "github.com/astroya/consultation-service/internal/api/handlers/reset_schedule"
	setAvailabilityRuleHandler "github.com/astroya/consultation-service/internal/api/handlers/set_availability_rule"
	"github.com/astroya/consultation-service/internal/api/middleware"
	"github.com/astroya/consultation-service/internal/config"
	"github.com/astroya/consultation-service/internal/infra/seed"
	ledgerRepo "github.com/astroya/consultation-service/internal/infra/storage/ledger"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
	availabilityService "github.com/astroya/consultation-service/internal/service/availability"
	scheduleService "github.com/astroya/consultation-service/internal/service/schedule"
	bookConsultationUC "github.com/astroya/consultation-service/internal/usecase/book_consultation"
	getUnavailableTimesUC "github.com/astroya/consultation-service/internal/usecase/get_unavailable_times"
	"github.com/astroya/consultation-service/pkg/logger"
	"github.com/astroya/consultation-service/pkg/memtx"
	"github.com/astroya/consultation-service/pkg/metrics"
	"github.com/astroya/consultation-service/pkg/storemetrics"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting Astroya consultation service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем in-memory хранилища
	ruleRepository := rulesRepo.NewRepository()
	ledgerRepository := ledgerRepo.NewRepository()
	txManager := memtx.NewTransactionManager()

	// Инициализируем сервисы
	seedLoader := seed.NewLoader(cfg.Schedule.SeedFile)
	availabilitySvc := availabilityService.NewService(ruleRepository, seedLoader, log)
	scheduleSvc := scheduleService.NewService(ledgerRepository, log)

	// Загружаем начальные правила доступности из seed файла
	availabilitySvc.ResetToSeed(context.Background())
	log.Info("Availability rules seeded from %s", cfg.Schedule.SeedFile)

	// Инициализируем use cases
	getUnavailableTimesUseCase := getUnavailableTimesUC.NewUseCase(
		ruleRepository,
		ledgerRepository,
		log,
	)

	bookConsultationUseCase := bookConsultationUC.NewUseCase(
		ruleRepository,
		ledgerRepository,
		txManager,
		log,
	)

	// Инициализируем handlers
	getUnavailableTimes := getUnavailableTimesHandler.NewHandler(getUnavailableTimesUseCase, log)
	getBookedTimes := getBookedTimesHandler.NewHandler(scheduleSvc, log)
	createConsultation := createConsultationHandler.NewHandler(bookConsultationUseCase, log)
	listAvailabilityRules := listAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	getAvailabilityRule := getAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	setAvailabilityRule := setAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	deleteAvailabilityRule := deleteAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	resetSchedule := resetScheduleHandler.NewHandler(availabilitySvc, scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Периодический сбор гейджей состояния расписания
		storemetrics.StartWithDefault(ruleRepository, ledgerRepository, metricsCollector, stopMetricsCh)
		log.Info("Schedule state metrics collection started")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт: модалка бронирования консультации)
	// ============================================================

	// Недоступные времена даты (база + правила + брони)
	api.HandleFunc("/schedule/{date}/unavailable-times",
		getUnavailableTimes.Handle).Methods(http.MethodGet)

	// Забронированные времена даты
	api.HandleFunc("/schedule/{date}/booked-times",
		getBookedTimes.Handle).Methods(http.MethodGet)

	// Бронирование консультации
	api.HandleFunc("/consultations", createConsultation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (страница управления доступностью)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// Правила доступности
	admin.HandleFunc("/availability-rules", listAvailabilityRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules/{date}", getAvailabilityRule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules/{date}", setAvailabilityRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability-rules/{date}", deleteAvailabilityRule.Handle).Methods(http.MethodDelete)

	// Полный сброс: правила к seed состоянию, журнал бронирований очищается
	admin.HandleFunc("/reset", resetSchedule.Handle).Methods(http.MethodPost)

	// CORS: API обслуживает браузерные запросы с лендинга
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
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

	// Останавливаем сбор метрик состояния расписания
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
