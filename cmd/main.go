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
	"github.com/redis/go-redis/v9"

	getDoctorsHandler "github.com/m04kA/HMS-ChatbotService/internal/api/handlers/get_doctors"
	getOpenSlotsHandler "github.com/m04kA/HMS-ChatbotService/internal/api/handlers/get_open_slots"
	getUpcomingDaysHandler "github.com/m04kA/HMS-ChatbotService/internal/api/handlers/get_upcoming_days"
	processMessageHandler "github.com/m04kA/HMS-ChatbotService/internal/api/handlers/process_message"
	"github.com/m04kA/HMS-ChatbotService/internal/api/middleware"
	"github.com/m04kA/HMS-ChatbotService/internal/config"
	"github.com/m04kA/HMS-ChatbotService/internal/infra/sessionstore"
	bookingRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/booking"
	doctorRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/doctor"
	holidayRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/holiday"
	leaveRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/leave"
	whatsappClient "github.com/m04kA/HMS-ChatbotService/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/HMS-ChatbotService/internal/service/appointments"
	doctorsService "github.com/m04kA/HMS-ChatbotService/internal/service/doctors"
	bookAppointmentUC "github.com/m04kA/HMS-ChatbotService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/HMS-ChatbotService/internal/usecase/cancel_appointment"
	openSlotsUC "github.com/m04kA/HMS-ChatbotService/internal/usecase/open_slots"
	processMessageUC "github.com/m04kA/HMS-ChatbotService/internal/usecase/process_message"
	upcomingDaysUC "github.com/m04kA/HMS-ChatbotService/internal/usecase/upcoming_days"
	"github.com/m04kA/HMS-ChatbotService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ChatbotService/pkg/logger"
	"github.com/m04kA/HMS-ChatbotService/pkg/metrics"
	"github.com/m04kA/HMS-ChatbotService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-ChatbotService/pkg/txmanager"
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

	log.Info("Starting HMS-ChatbotService...")
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

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		doctorRepository  *doctorRepo.Repository
		holidayRepository *holidayRepo.Repository
		leaveRepository   *leaveRepo.Repository
		txMgr             bookAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		holidayRepository = holidayRepo.NewRepository(wrappedDB)
		leaveRepository = leaveRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		doctorRepository = doctorRepo.NewRepository(db)
		holidayRepository = holidayRepo.NewRepository(db)
		leaveRepository = leaveRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем хранилище сессий диалога
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionStore processMessageUC.SessionStore

	switch cfg.Session.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		sessionStore = sessionstore.NewRedisStore(redisClient, sessionTTL)
		log.Info("Session store: redis (addr=%s, ttl=%s)", cfg.Redis.Addr, sessionTTL)

	default:
		memoryStore := sessionstore.NewMemoryStore(sessionTTL)
		defer memoryStore.Stop()

		sessionStore = memoryStore
		log.Info("Session store: in-memory (ttl=%s)", sessionTTL)
	}

	// Инициализируем клиент WhatsApp (если настроен)
	var notifier processMessageUC.Notifier
	if cfg.WhatsApp.Token != "" && cfg.WhatsApp.PhoneNumberID != "" {
		notifier = whatsappClient.NewClient(whatsappClient.Config{
			BaseURL:              cfg.WhatsApp.BaseURL,
			Token:                cfg.WhatsApp.Token,
			PhoneNumberID:        cfg.WhatsApp.PhoneNumberID,
			ConfirmationTemplate: cfg.WhatsApp.ConfirmationTemplate,
			CancellationTemplate: cfg.WhatsApp.CancellationTemplate,
			DefaultCountryCode:   cfg.WhatsApp.DefaultCountryCode,
			Timeout:              time.Duration(cfg.WhatsApp.Timeout) * time.Second,
		}, log)
		log.Info("WhatsApp client initialized (phone_number_id=%s)", cfg.WhatsApp.PhoneNumberID)
	} else {
		log.Warn("WhatsApp client disabled: token or phone_number_id not configured")
	}

	// Счетчики диалога передаются в use case только при включенных метриках,
	// иначе интерфейс остается nil и шаги пропускаются
	var chatMetrics processMessageUC.Metrics
	if cfg.Metrics.Enabled {
		chatMetrics = metricsCollector
	}

	// Инициализируем сервисы
	doctorSvc := doctorsService.NewService(doctorRepository, log)
	appointmentSvc := appointmentsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	upcomingDaysUseCase := upcomingDaysUC.NewUseCase(
		doctorSvc,
		holidayRepository,
		leaveRepository,
		cfg.Booking.HorizonDays,
		log,
	)

	openSlotsUseCase := openSlotsUC.NewUseCase(
		doctorSvc,
		bookingRepository,
		cfg.Booking.SlotDurationMinutes,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		doctorSvc,
		holidayRepository,
		leaveRepository,
		bookingRepository,
		txMgr,
		cfg.Booking.SlotDurationMinutes,
		log,
	)

	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(bookingRepository, log)

	processMessageUseCase := processMessageUC.NewUseCase(
		sessionStore,
		doctorSvc,
		appointmentSvc,
		upcomingDaysUseCase,
		openSlotsUseCase,
		bookAppointmentUseCase,
		cancelAppointmentUseCase,
		notifier,
		chatMetrics,
		log,
	)

	// Инициализируем handlers
	processMessage := processMessageHandler.NewHandler(processMessageUseCase, log)
	getDoctors := getDoctorsHandler.NewHandler(doctorSvc, log)
	getUpcomingDays := getUpcomingDaysHandler.NewHandler(upcomingDaysUseCase, log)
	getOpenSlots := getOpenSlotsHandler.NewHandler(openSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Шаг диалога чат-бота
	api.HandleFunc("/messages", processMessage.Handle).Methods(http.MethodPost)

	// Справочник врачей
	api.HandleFunc("/doctors", getDoctors.Handle).Methods(http.MethodGet)

	// Ближайшие рабочие дни врача
	api.HandleFunc("/doctors/{doctorName}/upcoming-days",
		getUpcomingDays.Handle).Methods(http.MethodGet)

	// Свободные слоты врача на дату
	api.HandleFunc("/doctors/{doctorName}/slots",
		getOpenSlots.Handle).Methods(http.MethodGet)

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
