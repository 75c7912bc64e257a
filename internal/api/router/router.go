// Package router wires the HTTP surface: widget endpoints, admin endpoints,
// and operational routes.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/http/handlers"
	httpmiddleware "github.com/SreeKumarSeven/anthill-chatbot/internal/http/middleware"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger              *logging.Logger
	ChatHandler         *handlers.ChatHandler
	BookingHandler      *handlers.BookingHandler
	RegisterHandler     *handlers.RegisterHandler
	ConversationHandler *handlers.ConversationHandler
	StatsHandler        *handlers.StatsHandler
	Health              http.HandlerFunc
	MetricsHandler      http.Handler
	AdminAuthSecret     string
	CORSAllowedOrigins  []string
	RateLimitRPS        float64
	RateLimitBurst      int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	if cfg.Health != nil {
		r.Get("/health", cfg.Health)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimitRPS > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}

		api.Post("/chat", cfg.ChatHandler.HandleChat)
		if cfg.BookingHandler != nil {
			api.Post("/booking", cfg.BookingHandler.HandleCreate)
		}
		if cfg.RegisterHandler != nil {
			api.Post("/register", cfg.RegisterHandler.HandleRegister)
		}
		if cfg.ConversationHandler != nil {
			api.Get("/conversation/{sessionID}", cfg.ConversationHandler.HandleHistory)
		}
		if cfg.StatsHandler != nil {
			api.With(httpmiddleware.AdminJWT(cfg.AdminAuthSecret)).Get("/stats", cfg.StatsHandler.HandleStats)
		}
	})

	return r
}
