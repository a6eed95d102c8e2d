package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leadmail.app/internal/adapters/api"
	"leadmail.app/internal/adapters/infrastructure"
	"leadmail.app/internal/config"
	"leadmail.app/internal/core/lead"
)

type Application struct {
	config *config.Config

	// Use Cases
	leadUseCase *lead.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps *DependencyContainer
}

func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	p := a.deps.ApplicationPorts()
	leadUseCase, err := lead.NewUseCase(lead.UseCaseDependencies{
		Templates:     a.deps.Templates(),
		EmailProvider: p.EmailProvider,
		ChatNotifier:  p.ChatNotifier,
		Config:        p.ConfigProvider,
		Logger:        p.Logger,
		Metrics:       p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create lead use case: %w", err)
	}
	a.leadUseCase = leadUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	p := a.deps.ApplicationPorts()

	// Create health checkers
	emailHealthChecker := infrastructure.NewEmailHealthChecker(p.ConfigProvider.GetEmailConfig(), p.ConfigProvider.GetLeadConfig())
	chatHealthChecker := infrastructure.NewChatHealthChecker(p.ChatNotifier)
	templateHealthChecker := infrastructure.NewTemplateHealthChecker(a.deps.Templates())

	// Create system health checker
	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		EmailChecker:    emailHealthChecker,
		ChatChecker:     chatHealthChecker,
		TemplateChecker: templateHealthChecker,
		ConfigProvider:  p.ConfigProvider,
	})

	appConfig := p.ConfigProvider.GetAppConfig()
	rateLimitConfig := p.ConfigProvider.GetRateLimitConfig()

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:            a.config.Server.Port,
			TrustedProxies:  a.config.Server.TrustedProxies,
			PreviewEnabled:  appConfig.PreviewEnabled,
			MaxAttachments:  appConfig.MaxAttachments,
			MaxAttachmentMB: appConfig.MaxAttachmentMB,
		},
		LeadUseCase:         a.leadUseCase,
		Templates:           a.deps.Templates(),
		SystemHealthChecker: systemHealthChecker,
		RateLimitStore:      p.RateLimitStore,
		RateLimit: api.RateLimitOptions{
			Enabled:     rateLimitConfig.Enabled,
			MaxRequests: rateLimitConfig.MaxRequests,
			Window:      rateLimitConfig.Window,
		},
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      httpAdapter.GetRouter(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing adapter connections", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetLeadUseCase returns the lead use case for testing
func (a *Application) GetLeadUseCase() *lead.UseCase {
	return a.leadUseCase
}
