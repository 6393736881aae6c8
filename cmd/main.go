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
	"github.com/gorilla/securecookie"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-TutorService/internal/api/forms"
	bookingHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/booking"
	createBookingHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/create_booking"
	forbiddenHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/forbidden"
	getFreeDaysHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/get_free_days"
	goalHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/goal"
	healthHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/health"
	indexHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/index"
	notFoundHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/not_found"
	profileHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/profile"
	requestDoneHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/request_done"
	requestFormHandler "github.com/m04kA/SMC-TutorService/internal/api/handlers/request_form"
	"github.com/m04kA/SMC-TutorService/internal/api/middleware"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/booking"
	referenceRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/reference"
	requestRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/request"
	scheduleRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/schedule"
	tutorRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/tutor"
	catalogService "github.com/m04kA/SMC-TutorService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-TutorService/internal/usecase/create_booking"
	getFreeDaysUC "github.com/m04kA/SMC-TutorService/internal/usecase/get_free_days"
	submitRequestUC "github.com/m04kA/SMC-TutorService/internal/usecase/submit_request"
	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
	"github.com/m04kA/SMC-TutorService/pkg/metrics"
	"github.com/m04kA/SMC-TutorService/pkg/txmanager"
)

const apiPrefix = "/api/v1"

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

	log.Info("Starting SMC-TutorService...")

	// Инициализируем метрики (если включены). nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Недоступная база не мешает старту: страницы покажут заглушку "база пуста"
	if err := db.Ping(); err != nil {
		log.Warn("Database is not reachable yet: %v", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	tutorRepository := tutorRepo.NewRepository(wrappedDB)
	referenceRepository := referenceRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	requestRepository := requestRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		tutorRepository,
		referenceRepository,
		scheduleRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	getFreeDaysUseCase := getFreeDaysUC.NewUseCase(
		tutorRepository,
		referenceRepository,
		scheduleRepository,
		log,
	)
	submitRequestUseCase := submitRequestUC.NewUseCase(requestRepository, metricsCollector, log)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		tutorRepository,
		referenceRepository,
		getFreeDaysUseCase,
		log,
	)

	// Шаблоны и валидатор форм
	renderer, err := views.New()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}
	validator := forms.NewValidator()

	// Ключ CSRF токенов
	csrfKey, err := cfg.Security.CSRFAuthKey()
	if err != nil {
		log.Fatal("Invalid CSRF key: %v", err)
	}
	if csrfKey == nil {
		csrfKey = securecookie.GenerateRandomKey(config.CSRFKeyLength)
		if csrfKey == nil {
			log.Fatal("Failed to generate CSRF key")
		}
		log.Warn("security.csrf_key is not set, generated a random key: forms opened before restart will be rejected")
	}

	// Инициализируем handlers
	index := indexHandler.NewHandler(catalogSvc, renderer, cfg.Site.FeaturedTutors, log)
	goal := goalHandler.NewHandler(catalogSvc, renderer, log)
	profile := profileHandler.NewHandler(catalogSvc, renderer, log)
	requestForm := requestFormHandler.NewHandler(renderer)
	requestDone := requestDoneHandler.NewHandler(submitRequestUseCase, validator, renderer, cfg.Site.LegacyChoiceStatus, log)
	booking := bookingHandler.NewHandler(createBookingUseCase, validator, renderer, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeDays := getFreeDaysHandler.NewHandler(getFreeDaysUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = notFoundHandler.NewHandler(renderer)

	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Формы защищены CSRF токеном. JSON API не проверяется
	r.Use(middleware.CSRF(middleware.CSRFOptions{
		Key:          csrfKey,
		Secure:       cfg.Security.SecureCookie,
		SkipPrefixes: []string{apiPrefix},
		Failure:      forbiddenHandler.NewHandler(renderer, log),
	}))

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// HTML
	// ============================================================

	r.HandleFunc("/", index.Handle).Methods(http.MethodGet)
	r.HandleFunc("/goals/{goalId}/", goal.Handle).Methods(http.MethodGet)
	r.HandleFunc("/profiles/{tutorId}/", profile.Handle).Methods(http.MethodGet)

	// Заявка на подбор преподавателя
	r.HandleFunc("/request/", requestForm.Handle).Methods(http.MethodGet)
	r.HandleFunc("/request_done/", requestDone.Handle).Methods(http.MethodPost)

	// Бронирование
	r.HandleFunc("/booking/{tutorId}/{weekday}/{time}/", booking.Handle).Methods(http.MethodGet)
	r.HandleFunc("/booking/{tutorId}/{weekday}/{time}/", booking.HandleSubmit).Methods(http.MethodPost)

	// ============================================================
	// JSON API
	// ============================================================

	api := r.PathPrefix(apiPrefix).Subrouter()
	api.HandleFunc("/tutors/{tutorId}/free-days", getFreeDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
