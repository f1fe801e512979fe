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

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	applyPromoHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/apply_promo"
	changeDateHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/change_date"
	confirmBookingHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/confirm_booking"
	createSessionHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/create_session"
	discardSessionHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/discard_session"
	getSessionHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_session"
	getSlotGridHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_slot_grid"
	getSportsHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_sports"
	refreshPriceHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/refresh_price"
	removePromoHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/remove_promo"
	selectCourtHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/select_court"
	selectRangeHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/select_range"
	setPaymentTypeHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/set_payment_type"
	toggleSlotHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/toggle_slot"
	updatePlayerHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/update_player"
	"github.com/m04kA/SMC-ArenaBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ArenaBooking/internal/config"
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
	sessionsService "github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
	calculatePriceUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/calculate_price"
	changeDateUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/change_date"
	confirmBookingUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/confirm_booking"
	getSlotGridUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_slot_grid"
	selectRangeUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/select_range"
	toggleSlotUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/toggle_slot"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
	"github.com/m04kA/SMC-ArenaBooking/pkg/metrics"
)

// Хранилище черновиков: memory или postgres
type sessionStore interface {
	Create(ctx context.Context, draft domain.Draft) error
	Get(ctx context.Context, id string) (domain.Draft, error)
	Update(ctx context.Context, id string, fn sessionRepo.UpdateFunc) (domain.Draft, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

const janitorInterval = time.Minute

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

	log.Info("Starting SMC-ArenaBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сетка и каталог арены (проверены в config.Validate)
	grid, err := domain.NewGrid(cfg.Arena.OpenHour, cfg.Arena.CloseHour)
	if err != nil {
		log.Fatal("Invalid arena hours: %v", err)
	}
	catalog, err := domain.NewCatalog(cfg.Sports)
	if err != nil {
		log.Fatal("Invalid sports catalog: %v", err)
	}
	location, err := cfg.Arena.Location()
	if err != nil {
		log.Fatal("Invalid arena timezone: %v", err)
	}
	log.Info("Arena grid %02d:00-%02d:00, %d sports, timezone=%s",
		cfg.Arena.OpenHour, cfg.Arena.CloseHour, len(catalog.Sports()), location)

	// Хранилище сессий
	var sessions sessionStore
	switch cfg.Sessions.Driver {
	case config.SessionDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		sessions = sessionRepo.NewPostgresRepository(db, cfg.Sessions.SessionTTL(), nil)
	default:
		sessions = sessionRepo.NewMemoryRepository(cfg.Sessions.SessionTTL(), nil)
	}
	log.Info("Session storage: driver=%s, ttl=%s", cfg.Sessions.Driver, cfg.Sessions.SessionTTL())

	// Клиент API арены
	arenaClient := arenaapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Arena backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(sessions, arenaClient, catalog, metricsCollector, log)
	changeDateUseCase := changeDateUC.NewUseCase(sessions, location, cfg.Arena.BookingWindowDays, log)
	getSlotGridUseCase := getSlotGridUC.NewUseCase(sessions, arenaClient, grid, catalog, log)
	toggleSlotUseCase := toggleSlotUC.NewUseCase(sessions, grid, catalog, calculatePriceUseCase, metricsCollector, log)
	selectRangeUseCase := selectRangeUC.NewUseCase(sessions, grid, catalog, calculatePriceUseCase, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		sessions,
		arenaClient,
		grid,
		catalog,
		calculatePriceUseCase,
		metricsCollector,
		log,
		cfg.Arena.RequireEmail,
	)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		sessions,
		arenaClient,
		catalog,
		grid,
		cfg.Arena.PhoneRegion,
		cfg.Arena.BookingWindowDays,
		log,
	)

	// Инициализируем handlers
	presenter := handlers.NewPresenter(grid, catalog)

	getSports := getSportsHandler.NewHandler(sessionSvc)
	createSession := createSessionHandler.NewHandler(sessionSvc, presenter, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, presenter, log)
	discardSession := discardSessionHandler.NewHandler(sessionSvc, log)
	selectCourt := selectCourtHandler.NewHandler(sessionSvc, presenter, log)
	changeDate := changeDateHandler.NewHandler(changeDateUseCase, presenter, log)
	getSlotGrid := getSlotGridHandler.NewHandler(getSlotGridUseCase, presenter, log)
	toggleSlot := toggleSlotHandler.NewHandler(toggleSlotUseCase, presenter, log)
	selectRange := selectRangeHandler.NewHandler(selectRangeUseCase, presenter, log)
	refreshPrice := refreshPriceHandler.NewHandler(calculatePriceUseCase, presenter, log)
	updatePlayer := updatePlayerHandler.NewHandler(sessionSvc, presenter, log)
	setPaymentType := setPaymentTypeHandler.NewHandler(sessionSvc, presenter, log)
	applyPromo := applyPromoHandler.NewHandler(sessionSvc, presenter, log)
	removePromo := removePromoHandler.NewHandler(sessionSvc, presenter, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware())
		log.Info("Rate limit enabled: %.1f rps, burst=%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Каталог ---
	api.HandleFunc("/sports", getSports.Handle).Methods(http.MethodGet)

	// --- Сессия бронирования ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", discardSession.Handle).Methods(http.MethodDelete)

	// Шаг 1: корт и дата
	api.HandleFunc("/sessions/{sessionId}/court", selectCourt.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/date", changeDate.Handle).Methods(http.MethodPut)

	// Шаг 2: слоты и цена
	api.HandleFunc("/sessions/{sessionId}/slots", getSlotGrid.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/slots/{index}/toggle", toggleSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/range", selectRange.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/price", refreshPrice.Handle).Methods(http.MethodPost)

	// Шаг 3: игрок, оплата, промокод
	api.HandleFunc("/sessions/{sessionId}/player", updatePlayer.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/payment", setPaymentType.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/promo", applyPromo.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/promo", removePromo.Handle).Methods(http.MethodDelete)

	// Шаг 4: подтверждение
	api.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Фоновая очистка истекших сессий и неактивных клиентов rate limiter
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	go runJanitor(janitorCtx, sessions, limiter, log)

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
	stopJanitor()

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

func runJanitor(ctx context.Context, sessions sessionStore, limiter *middleware.RateLimiter, log *logger.Logger) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := sessions.DeleteExpired(ctx)
			if err != nil {
				log.Error("Janitor: failed to delete expired sessions: %v", err)
			} else if removed > 0 {
				log.Info("Janitor: removed %d expired sessions", removed)
			}

			if limiter != nil {
				limiter.Cleanup(now)
			}
		}
	}
}
