package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"leadmail.app/internal/adapters/external"
	"leadmail.app/internal/adapters/infrastructure"
	"leadmail.app/internal/config"
	"leadmail.app/internal/core/template"
	"leadmail.app/internal/ports"
)

type DependencyContainer struct {
	config    *config.Config
	templates *template.Registry
	ports     *ports.ApplicationPorts
	closers   []io.Closer
}

// DependencyOptions overrides adapters, mainly for tests
type DependencyOptions struct {
	// MetricsRegisterer defaults to the global Prometheus registerer
	MetricsRegisterer prometheus.Registerer
	// MailDialer replaces the SMTP dialer when set
	MailDialer external.MailDialer
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializeTemplates(); err != nil {
		return nil, fmt.Errorf("initialize templates: %w", err)
	}

	if err := container.initializePorts(opts); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// BuildTemplateRegistry validates the default sets with the environment overrides applied
func BuildTemplateRegistry(cfg *config.Config) (*template.Registry, error) {
	order := template.DefaultOrderNotificationSet().WithOverrides(cfg.Lead.Overrides())
	return template.NewRegistry(order, template.DefaultClientAutoreplySet())
}

func (c *DependencyContainer) initializeTemplates() error {
	slog.Info("Validating template sets...")

	registry, err := BuildTemplateRegistry(c.config)
	if err != nil {
		return fmt.Errorf("validate template sets: %w", err)
	}

	c.templates = registry
	slog.Info("Template sets validated", "sets", len(registry.IDs()))
	return nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing ports...")

	logger := &infrastructure.SlogLoggerAdapter{}

	emailConfig := external.EmailProviderConfig{
		Host:     c.config.Email.SMTPHost,
		Port:     c.config.Email.SMTPPort,
		Username: c.config.Email.SMTPUsername,
		Password: c.config.Email.SMTPPassword,
		SSL:      c.config.Email.SSL,
	}
	var emailProvider *external.SMTPEmailProviderAdapter
	if opts.MailDialer != nil {
		emailProvider = external.NewSMTPEmailProviderAdapterWithDialer(emailConfig, opts.MailDialer)
	} else {
		emailProvider = external.NewSMTPEmailProviderAdapter(emailConfig)
	}
	slog.Info("Email transport", "enabled", emailProvider.Enabled(), "host", c.config.Email.SMTPHost)

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	telegramConfig := configProvider.GetTelegramConfig()
	chatNotifier := external.NewTelegramNotifierAdapter(external.TelegramNotifierParams{
		BaseURL:  telegramConfig.APIBaseURL,
		BotToken: telegramConfig.BotToken,
		ChatID:   telegramConfig.ChatID,
		Timeout:  telegramConfig.Timeout,
		Logger:   logger,
	})
	slog.Info("Telegram notifier", "enabled", chatNotifier.Enabled())

	var rateLimitStore ports.RateLimitStore
	if c.config.RateLimit.Enabled {
		store, err := external.NewRateLimitStoreFactory().CreateRateLimitStore(&c.config.RateLimit)
		if err != nil {
			slog.Error("Failed to create rate limit store", "error", err)
			return fmt.Errorf("create rate limit store: %w", err)
		}
		if closer, ok := store.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
		rateLimitStore = store

		slog.Info("Rate limit store initialized",
			"type", c.config.RateLimit.Store.String(),
			"max", c.config.RateLimit.MaxRequests,
			"window", c.config.RateLimit.Window().String())
	}

	c.ports = &ports.ApplicationPorts{
		// Delivery
		EmailProvider: emailProvider,
		ChatNotifier:  chatNotifier,

		// Protection
		RateLimitStore: rateLimitStore,

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        infrastructure.NewPrometheusDeliveryMetrics(opts.MetricsRegisterer),
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Templates() *template.Registry {
	return c.templates
}

// Cleanup releases connections held by adapters
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
