// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadmail.app/internal/core/lead"
	"leadmail.app/internal/core/template"
	"leadmail.app/internal/ports"
	"leadmail.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            int
	TrustedProxies  []string
	PreviewEnabled  bool
	MaxAttachments  int
	MaxAttachmentMB int
}

// RateLimitOptions configures the fixed window limiter on /api
type RateLimitOptions struct {
	Enabled     bool
	MaxRequests int
	Window      time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	leadUseCase    LeadUseCase
	templates      TemplateCatalog
	healthChecker  ports.SystemHealthChecker
	rateLimitStore ports.RateLimitStore
	rateLimit      RateLimitOptions
}

// Use case interfaces that the HTTP adapter depends on
type LeadUseCase interface {
	Submit(ctx context.Context, params lead.SubmitParams) (*lead.SubmitResult, error)
}

// TemplateCatalog exposes the registered template sets; *template.Registry satisfies it
type TemplateCatalog interface {
	IDs() []template.SetID
	Get(id template.SetID) (template.Set, bool)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	LeadUseCase         LeadUseCase
	Templates           TemplateCatalog
	SystemHealthChecker ports.SystemHealthChecker
	RateLimitStore      ports.RateLimitStore
	RateLimit           RateLimitOptions
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	if err := router.SetTrustedProxies(opts.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		leadUseCase:    opts.LeadUseCase,
		templates:      opts.Templates,
		healthChecker:  opts.SystemHealthChecker,
		rateLimitStore: opts.RateLimitStore,
		rateLimit:      opts.RateLimit,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.LeadUseCase == nil {
		return errors.NewValidationError("lead use case is required")
	}
	if opts.Templates == nil {
		return errors.NewValidationError("template catalog is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.RateLimit.Enabled && opts.RateLimitStore == nil {
		return errors.NewValidationError("rate limit store is required when rate limiting is enabled")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	if s.rateLimit.Enabled {
		api.Use(RateLimitMiddleware(s.rateLimitStore, s.rateLimit))
	}
	{
		api.POST("/lead", s.submitLead)
		api.GET("/templates", s.listTemplates)
		if s.config.PreviewEnabled {
			api.POST("/templates/:set/render", s.renderTemplate)
		}
	}

	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
