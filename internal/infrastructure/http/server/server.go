// Package server provides the HTTP server and route wiring
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/moodrecipe/api/internal/application/auth"
	reciperesolver "github.com/moodrecipe/api/internal/application/recipe"
	"github.com/moodrecipe/api/internal/infrastructure/config"
	"github.com/moodrecipe/api/internal/infrastructure/http/handlers"
	"github.com/moodrecipe/api/internal/infrastructure/http/middleware"
	"github.com/moodrecipe/api/internal/infrastructure/monitoring"
	"github.com/moodrecipe/api/internal/infrastructure/session"
	"github.com/moodrecipe/api/pkg/healthcheck"
)

// Server wraps the HTTP server, router and handlers
type Server struct {
	config         *config.Config
	logger         *zap.Logger
	router         *chi.Mux
	server         *http.Server
	sessionStore   session.Store
	metrics        *monitoring.HTTPMetrics
	health         *healthcheck.HealthCheck
	authHandlers   *handlers.AuthAPIHandlers
	recipeHandlers *handlers.RecipeAPIHandlers
	pageHandlers   *handlers.PageHandlers
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authService *auth.Service,
	recipeService *reciperesolver.Service,
	sessionStore session.Store,
	metrics *monitoring.HTTPMetrics,
	health *healthcheck.HealthCheck,
) *Server {
	cookies := session.CookieOptions{
		Name:     cfg.Session.CookieName,
		Lifetime: cfg.Session.Lifetime,
		Secure:   cfg.Session.SecureCookie,
	}

	s := &Server{
		config:         cfg,
		logger:         logger,
		sessionStore:   sessionStore,
		metrics:        metrics,
		health:         health,
		authHandlers:   handlers.NewAuthAPIHandlers(authService, cookies, logger),
		recipeHandlers: handlers.NewRecipeAPIHandlers(recipeService, logger),
		pageHandlers:   handlers.NewPageHandlers(logger),
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(s.metrics.Middleware)
	r.Use(middleware.LoadSession(s.sessionStore, s.config.Session.CookieName, s.logger))

	r.Get("/health", s.health.Handler())
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.setupPageRoutes(r)
	r.Route("/api", s.setupAPIRoutes)

	return r
}

func (s *Server) setupPageRoutes(r chi.Router) {
	h := s.pageHandlers

	r.Get("/", h.Home)
	r.Get("/login", h.Login)
	r.Get("/register", h.Register)
	r.Get("/dashboard", h.Dashboard)
}

func (s *Server) setupAPIRoutes(r chi.Router) {
	r.Post("/register", s.authHandlers.Register)
	r.Post("/login", s.authHandlers.Login)
	r.Post("/logout", s.authHandlers.Logout)
	r.Get("/user", s.authHandlers.CurrentUser)

	// Session required beyond this point; failures are 401 JSON, never a
	// redirect.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Post("/language", s.authHandlers.SetLanguage)
		r.Get("/recipes/{mood}", s.recipeHandlers.RandomByMood)
		r.Get("/moods", s.recipeHandlers.Moods)
	})
}

// Router exposes the underlying router, primarily for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
