// Package api exposes the dashboard over HTTP. Routes are registered
// through huma on top of a chi router; every response is wrapped in the
// versioned API envelope.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/config"
	"github.com/streamlens/streamlens-server/internal/ratelimit"
	"github.com/streamlens/streamlens-server/internal/search"
	"github.com/streamlens/streamlens-server/internal/service"
	"github.com/streamlens/streamlens-server/internal/validation"
)

const apiVersion = "1.0.0"

// Server is the HTTP server for the StreamLens API.
type Server struct {
	config     *config.Config
	store      *catalog.Store
	index      *search.Index
	dashboards *service.DashboardService
	titles     *service.TitlesService
	validator  *validation.Validator
	limiter    *ratelimit.KeyedRateLimiter
	router     chi.Router
	api        huma.API
	logger     *slog.Logger
}

// NewServer creates a configured API server with all routes registered.
func NewServer(
	cfg *config.Config,
	store *catalog.Store,
	index *search.Index,
	dashboards *service.DashboardService,
	titles *service.TitlesService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		config:     cfg,
		store:      store,
		index:      index,
		dashboards: dashboards,
		titles:     titles,
		validator:  validation.New(),
		limiter:    ratelimit.New(rateLimitRPS, rateLimitBurst, rateLimitIdle),
		router:     chi.NewRouter(),
		logger:     logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("StreamLens API", apiVersion)
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerFilterRoutes()
	s.registerDashboardRoutes()
	s.registerTitleRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Logger)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases the server's background resources.
func (s *Server) Close() {
	s.limiter.Stop()
}
