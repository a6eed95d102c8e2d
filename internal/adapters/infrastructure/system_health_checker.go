package infrastructure

import (
	"context"

	"leadmail.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	emailChecker    ports.EmailHealthChecker
	chatChecker     ports.ChatHealthChecker
	templateChecker ports.TemplateHealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	EmailChecker    ports.EmailHealthChecker
	ChatChecker     ports.ChatHealthChecker
	TemplateChecker ports.TemplateHealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		emailChecker:    config.EmailChecker,
		chatChecker:     config.ChatChecker,
		templateChecker: config.TemplateChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.emailChecker != nil {
		results["smtp"] = s.emailChecker.Check(ctx)
	}

	if s.chatChecker != nil {
		results["telegram"] = s.chatChecker.Check(ctx)
	}

	if s.templateChecker != nil {
		results["templates"] = s.templateChecker.Check(ctx)
	}

	if s.configProvider != nil {
		appConfig := s.configProvider.GetAppConfig()
		rateLimit := s.configProvider.GetRateLimitConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"siteURL":        appConfig.SiteURL,
				"previewEnabled": appConfig.PreviewEnabled,
				"rateLimitStore": rateLimit.Store,
			},
		}
	}

	return results
}
