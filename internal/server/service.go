// Package server provides the HTTP catalog service for stockroom.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"

	"github.com/thebtf/stockroom/internal/config"
	"github.com/thebtf/stockroom/internal/db/gorm"
)

// Service configuration constants
const (
	// DefaultHTTPTimeout is the per-request timeout.
	DefaultHTTPTimeout = 30 * time.Second

	// MaxRequestBodyBytes caps incoming request bodies.
	MaxRequestBodyBytes = 1 << 20 // 1 MiB
)

// Service is the catalog HTTP service: one generic resource handler
// instantiated per catalog resource, all sharing one store.
type Service struct {
	version string
	config  *config.Config
	store   *gorm.Store

	sneakers *resource[gorm.Sneaker, SneakerCreateRequest, SneakerUpdateRequest]
	drinks   *resource[gorm.EnergyDrink, EnergyDrinkCreateRequest, EnergyDrinkUpdateRequest]
	vapes    *resource[gorm.Vape, VapeCreateRequest, VapeUpdateRequest]

	router    *chi.Mux
	server    *http.Server
	startTime time.Time
}

// NewService creates the catalog service: opens the store (running
// migrations), builds the per-resource handlers, and wires routes.
func NewService(cfg *config.Config, version string) (*Service, error) {
	store, err := gorm.NewStore(gorm.Config{
		Path:     cfg.DBPath,
		MaxConns: cfg.MaxConns,
		LogLevel: gormlogger.Silent,
	})
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	valid := newValidator()

	svc := &Service{
		version:   version,
		config:    cfg,
		store:     store,
		sneakers:  newSneakerResource(store, valid, cfg),
		drinks:    newEnergyDrinkResource(store, valid, cfg),
		vapes:     newVapeResource(store, valid, cfg),
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}

	svc.setupMiddleware()
	svc.setupRoutes()

	return svc, nil
}

// newValidator builds the shared request validator, reporting fields by
// their JSON names.
func newValidator() *validator.Validate {
	valid := validator.New()
	valid.RegisterTagNameFunc(jsonFieldName)
	return valid
}

// setupMiddleware configures HTTP middleware.
func (s *Service) setupMiddleware() {
	s.router.Use(RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(DefaultHTTPTimeout))
	s.router.Use(MaxBodySize(MaxRequestBodyBytes))
	s.router.Use(RequireJSONContentType)
}

// setupRoutes configures HTTP routes. The three resources expose the same
// five operations; only the mount point differs.
func (s *Service) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/sneakers", s.sneakers.mount)
	s.router.Route("/energy-drinks", s.drinks.mount)
	s.router.Route("/vapes", s.vapes.mount)
}

// Router returns the HTTP handler, for tests and embedding.
func (s *Service) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.ListenPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       DefaultHTTPTimeout,
		WriteTimeout:      DefaultHTTPTimeout,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	log.Info().
		Int("port", s.config.ListenPort).
		Str("db", s.config.DBPath).
		Msg("Catalog HTTP server started")

	return nil
}

// Shutdown gracefully shuts down the service, releasing the HTTP listener
// and the database on every path.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}

	if err := s.store.Close(); err != nil {
		log.Error().Err(err).Msg("Database close error")
		return err
	}

	log.Info().Msg("Catalog service shutdown complete")
	return nil
}
