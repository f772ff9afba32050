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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelSlotHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/cancel_slot"
	checkSlotHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/check_slot"
	copyWeekHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/copy_week"
	deleteSlotHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/delete_slot"
	generateWeekHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/generate_week"
	getProfileHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/get_profile"
	getScheduleHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/get_schedule"
	publishWeekHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/publish_week"
	saveSlotHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/save_slot"
	updateProfileHandler "github.com/m04kA/DS-ScheduleService/internal/api/handlers/update_profile"
	"github.com/m04kA/DS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DS-ScheduleService/internal/config"
	profileRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/profile"
	slotRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/slot"
	holidayClient "github.com/m04kA/DS-ScheduleService/internal/integrations/holidayservice"
	profilesService "github.com/m04kA/DS-ScheduleService/internal/service/profiles"
	slotsService "github.com/m04kA/DS-ScheduleService/internal/service/slots"
	checkSlotUC "github.com/m04kA/DS-ScheduleService/internal/usecase/check_slot"
	copyWeekUC "github.com/m04kA/DS-ScheduleService/internal/usecase/copy_week"
	generateWeekUC "github.com/m04kA/DS-ScheduleService/internal/usecase/generate_week"
	saveSlotUC "github.com/m04kA/DS-ScheduleService/internal/usecase/save_slot"
	"github.com/m04kA/DS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DS-ScheduleService/pkg/logger"
	"github.com/m04kA/DS-ScheduleService/pkg/metrics"
	"github.com/m04kA/DS-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/DS-ScheduleService/pkg/txmanager"
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

	log.Info("Starting DS-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
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

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied from %s", cfg.Database.MigrationsDir)

	// Инициализируем клиента сервиса праздников
	holidays := holidayClient.NewClient(
		cfg.HolidayService.URL,
		time.Duration(cfg.HolidayService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (HolidayService=%s timeout=%ds)",
		cfg.HolidayService.URL, cfg.HolidayService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		profileRepository *profileRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(
		slotRepository,
		txMgr,
		log,
	)

	profilesSvc := profilesService.NewService(
		profileRepository,
		log,
	)

	// Инициализируем use cases
	checkSlotUseCase := checkSlotUC.NewUseCase(
		slotRepository,
		holidays,
		log,
	)

	saveSlotUseCase := saveSlotUC.NewUseCase(
		slotRepository,
		profileRepository,
		holidays,
		txMgr,
		log,
	)

	generateWeekUseCase := generateWeekUC.NewUseCase(
		slotRepository,
		holidays,
		txMgr,
		log,
	)

	copyWeekUseCase := copyWeekUC.NewUseCase(
		slotRepository,
		profileRepository,
		holidays,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	saveSlot := saveSlotHandler.NewHandler(saveSlotUseCase, log)
	generateWeek := generateWeekHandler.NewHandler(generateWeekUseCase, log)
	copyWeek := copyWeekHandler.NewHandler(copyWeekUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(slotsSvc, log)
	publishWeek := publishWeekHandler.NewHandler(slotsSvc, log)
	cancelSlot := cancelSlotHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	getProfile := getProfileHandler.NewHandler(profilesSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profilesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Прокидываем идентификатор запроса во все ответы
	r.Use(middleware.RequestID)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Предварительная проверка слота
	api.HandleFunc("/slots/check", checkSlot.Handle).Methods(http.MethodPost)

	// Расписание инструктора за период
	api.HandleFunc("/instructors/{instructorId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Профиль инструктора (дефолты занятий)
	api.HandleFunc("/instructors/{instructorId}/profile", getProfile.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Создание слота (занятие или блокировка)
	protected.HandleFunc("/slots", saveSlot.HandleCreate).Methods(http.MethodPost)

	// Редактирование слота
	protected.HandleFunc("/slots/{slotId}", saveSlot.HandleUpdate).Methods(http.MethodPut)

	// Снятие ученика со слота
	protected.HandleFunc("/slots/{slotId}/cancel", cancelSlot.Handle).Methods(http.MethodPost)

	// Удаление слота
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Недели ---
	// Генерация черновиков недели
	protected.HandleFunc("/instructors/{instructorId}/weeks/generate", generateWeek.Handle).Methods(http.MethodPost)

	// Копирование недели вперед
	protected.HandleFunc("/instructors/{instructorId}/weeks/copy", copyWeek.Handle).Methods(http.MethodPost)

	// Публикация черновиков недели
	protected.HandleFunc("/instructors/{instructorId}/weeks/publish", publishWeek.Handle).Methods(http.MethodPost)

	// --- Профиль ---
	// Создание или обновление профиля инструктора
	protected.HandleFunc("/instructors/{instructorId}/profile", updateProfile.Handle).Methods(http.MethodPut)

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
