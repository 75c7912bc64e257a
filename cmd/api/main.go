package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/api/router"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/booking"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/chat"
	appconfig "github.com/SreeKumarSeven/anthill-chatbot/internal/config"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/http/handlers"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/notify"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/observability/metrics"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/transcript"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting anthill-chatbot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Postgres is optional; without it transcripts and bookings stay in
	// memory and are lost on restart.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("postgres connect failed, using in-memory stores", "error", err)
			pool = nil
		} else {
			defer pool.Close()
		}
	}

	var store transcript.Store
	switch {
	case pool != nil:
		store = transcript.NewPostgresStore(pool)
		logger.Info("transcripts backed by postgres")
	case cfg.GoogleServiceAccountJSON != "" && cfg.GoogleSheetID != "":
		sheets, err := transcript.NewSheetsStore(ctx, []byte(cfg.GoogleServiceAccountJSON), cfg.GoogleSheetID)
		if err != nil {
			logger.Error("sheets init failed, using in-memory transcripts", "error", err)
			store = transcript.NewMemoryStore()
		} else {
			store = sheets
			logger.Info("transcripts backed by google sheets")
		}
	default:
		store = transcript.NewMemoryStore()
		logger.Info("transcripts kept in memory")
	}
	asyncStore := transcript.NewAsyncStore(store, logger)

	var bookingRepo booking.Repository
	if pool != nil {
		bookingRepo = booking.NewPostgresRepository(pool)
	} else {
		bookingRepo = booking.NewInMemoryRepository()
	}

	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	} else {
		emailSender = notify.NewStubEmailSender(logger)
	}
	notifier := notify.NewService(emailSender, cfg.BookingAlertEmail, logger)

	bookingSvc := booking.NewService(bookingRepo, notifier, logger)
	detector := booking.NewDetector()

	llm := chat.NewOpenAIClient(cfg.OpenAIAPIKey,
		chat.WithModel(cfg.OpenAIModel),
		chat.WithTimeout(cfg.LLMTimeout),
	)

	chatMetrics := metrics.NewChatMetrics(nil)

	routerOpts := []chat.RouterOption{
		chat.WithTranscripts(asyncStore),
		chat.WithMetrics(chatMetrics),
	}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = redisClient.Close() }()
		routerOpts = append(routerOpts,
			chat.WithHistory(chat.NewHistoryStore(redisClient, cfg.HistoryWindow, cfg.HistoryTTL)))
		logger.Info("conversation history backed by redis")
	}

	chatRouter := chat.NewRouter(detector, bookingSvc, llm, logger, routerOpts...)

	routerCfg := &router.Config{
		Logger:              logger,
		ChatHandler:         handlers.NewChatHandler(chatRouter, logger),
		BookingHandler:      handlers.NewBookingHandler(bookingSvc, logger),
		RegisterHandler:     handlers.NewRegisterHandler(asyncStore, logger),
		ConversationHandler: handlers.NewConversationHandler(asyncStore, logger),
		StatsHandler:        handlers.NewStatsHandler(asyncStore, bookingRepo, logger),
		Health: handlers.Health(handlers.HealthStatus{
			OpenAIKeySet:   cfg.OpenAIAPIKey != "",
			DatabaseSet:    pool != nil,
			RedisSet:       cfg.RedisAddr != "",
			SheetsSet:      cfg.GoogleSheetID != "",
			EmailAlertsSet: cfg.SendGridAPIKey != "" && cfg.BookingAlertEmail != "",
		}),
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
