// Package server exposes the generators, deployment pipeline and profile
// store over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bizforge/internal/common/config"
	"bizforge/internal/common/logger"
	"bizforge/internal/common/observability"
	"bizforge/internal/models"
)

// Deployer pushes a generated file map to the hosting provider.
type Deployer interface {
	Deploy(ctx context.Context, biz models.BusinessInfo, files models.FileMap) models.DeployResult
}

// Notifier tells the business contact how a deploy ended.
type Notifier interface {
	DeployFinished(ctx context.Context, biz models.BusinessInfo, result models.DeployResult) error
}

// ProfileStore persists saved business profiles.
type ProfileStore interface {
	Create(ctx context.Context, biz models.BusinessInfo) (models.SavedProfile, error)
	Get(ctx context.Context, id string) (models.SavedProfile, error)
	Patch(ctx context.Context, id string, patch json.RawMessage) (models.SavedProfile, error)
}

// StatusStore caches deploy records for status polling.
type StatusStore interface {
	Put(ctx context.Context, record models.DeployRecord) error
	Get(ctx context.Context, id string) (models.DeployRecord, bool, error)
}

// Pinger checks one dependency for the health endpoint.
type Pinger func(ctx context.Context) error

type Server struct {
	router *chi.Mux
	log    logger.Logger
	obs    *observability.Observability

	deployer Deployer
	notifier Notifier
	profiles ProfileStore
	statuses StatusStore
	pingers  map[string]Pinger

	defaultBaseURL string
}

func New(
	cfg config.Config,
	log logger.Logger,
	obs *observability.Observability,
	deployer Deployer,
	notifier Notifier,
	profiles ProfileStore,
	statuses StatusStore,
	pingers map[string]Pinger,
) *Server {
	s := &Server{
		log:            log,
		obs:            obs,
		deployer:       deployer,
		notifier:       notifier,
		profiles:       profiles,
		statuses:       statuses,
		pingers:        pingers,
		defaultBaseURL: cfg.Generator.DefaultBaseURL,
	}
	s.setupRoutes(config.GetDuration(cfg.Server.RequestTimeout))
	return s
}

func (s *Server) setupRoutes(requestTimeout time.Duration) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/api/v1/health", s.handleHealth)

	r.Route("/api/v1/generate", func(r chi.Router) {
		r.Post("/", s.handleGenerate)
		r.Post("/static", s.handleGenerateStatic)
		r.Post("/archive", s.handleGenerateArchive)
	})

	r.Post("/api/v1/deploy", s.handleDeploy)
	r.Get("/api/v1/deploys/{deployId}", s.handleDeployStatus)

	r.Route("/api/v1/marketing", func(r chi.Router) {
		r.Post("/copy", s.handleMarketingCopy)
		r.Post("/prompts", s.handleMarketingPrompts)
	})

	r.Route("/api/v1/profiles", func(r chi.Router) {
		r.Post("/", s.handleCreateProfile)
		r.Get("/{profileId}", s.handleGetProfile)
		r.Patch("/{profileId}", s.handlePatchProfile)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, len(s.pingers))
	healthy := true

	for name, ping := range s.pingers {
		if err := ping(r.Context()); err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}

	respondJSON(w, status, map[string]interface{}{
		"status": state,
		"checks": checks,
	})
}
