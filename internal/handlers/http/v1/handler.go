// Package v1 serves the catalog over REST
package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/health"
	"github.com/KirkDiggler/monster-codex/internal/metrics"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/repositories/preferences"
)

// ClientIDHeader identifies the browser or CLI a preference belongs to
const ClientIDHeader = "X-Client-ID"

// DefaultAllowedOrigins is used when no CORS origins are configured
var DefaultAllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Catalog     catalog.Service
	Preferences preferences.Repository
	// Checker backs /health (optional, /health always answers up without it)
	Checker *health.Checker
	// Metrics is mounted at /metrics (optional)
	Metrics        http.Handler
	AllowedOrigins []string
	Logger         *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Preferences == nil {
		vb.RequiredField("Preferences")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = DefaultAllowedOrigins
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Handler serves the REST API
type Handler struct {
	catalog     catalog.Service
	preferences preferences.Repository
	checker     *health.Checker
	logger      *zap.Logger
	router      chi.Router
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		catalog:     cfg.Catalog,
		preferences: cfg.Preferences,
		checker:     cfg.Checker,
		logger:      cfg.Logger,
		router:      chi.NewRouter(),
	}

	h.setupMiddleware(cfg.AllowedOrigins)
	h.setupRoutes(cfg.Metrics)

	return h, nil
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) setupMiddleware(origins []string) {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.RealIP)
	h.router.Use(h.observe)
	h.router.Use(middleware.Recoverer)
	h.router.Use(middleware.Compress(5))
	h.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", ClientIDHeader},
		MaxAge:         300,
	}))
}

func (h *Handler) setupRoutes(metricsHandler http.Handler) {
	h.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/monsters", h.handleListMonsters)
		r.Get("/monsters/{monsterID}", h.handleGetMonster)
		r.Post("/search", h.handleSearchMonster)
		r.Post("/ask", h.handleAskMonster)
		r.Get("/discovered", h.handleListDiscovered)

		r.Get("/preferences/theme", h.handleGetTheme)
		r.Put("/preferences/theme", h.handleSetTheme)
	})

	h.router.Get("/health", h.handleHealth)
	if metricsHandler != nil {
		h.router.Method(http.MethodGet, "/metrics", metricsHandler)
	}
}

// observe logs and measures every request by its route pattern
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = errors.StatusClientClosedRequest
		}
		elapsed := time.Since(start)

		metrics.ObserveHTTPRequest(route, r.Method, strconv.Itoa(status), elapsed)
		h.logger.Debug("request served",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed))
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.checker == nil {
		respondJSON(w, http.StatusOK, &health.Report{Status: health.StatusUp})
		return
	}

	report := h.checker.Check(r.Context())
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, report)
}
