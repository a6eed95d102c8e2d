package infrastructure

import (
	"context"
	"fmt"

	"leadmail.app/internal/core/template"
	"leadmail.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// EmailHealthChecker implements email transport health checking
type EmailHealthChecker struct {
	config ports.EmailConfig
	lead   ports.LeadConfig
}

// NewEmailHealthChecker creates a new email health checker
func NewEmailHealthChecker(config ports.EmailConfig, lead ports.LeadConfig) *EmailHealthChecker {
	return &EmailHealthChecker{config: config, lead: lead}
}

// Check reports the SMTP configuration; a missing host means email is disabled
func (e *EmailHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if e.config.SMTPHost == "" {
		return ports.HealthStatus{Component: "smtp", Status: statusDisabled}
	}

	status := ports.HealthStatus{
		Component: "smtp",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"host":       e.config.SMTPHost,
			"port":       fmt.Sprintf("%d", e.config.SMTPPort),
			"ssl":        e.config.SSL,
			"recipients": len(e.lead.To),
			"fromMode":   e.lead.FromMode,
		},
	}
	if len(e.lead.To) == 0 {
		status.Status = statusUnhealthy
		status.Error = "lead recipient is not configured"
	}
	return status
}

// ChatHealthChecker implements chat notifier health checking
type ChatHealthChecker struct {
	notifier ports.ChatNotifier
}

// NewChatHealthChecker creates a new chat health checker
func NewChatHealthChecker(notifier ports.ChatNotifier) *ChatHealthChecker {
	return &ChatHealthChecker{notifier: notifier}
}

// Check reports whether chat alerts are configured
func (c *ChatHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if c.notifier == nil || !c.notifier.Enabled() {
		return ports.HealthStatus{Component: "telegram", Status: statusDisabled}
	}
	return ports.HealthStatus{Component: "telegram", Status: statusHealthy}
}

// TemplateHealthChecker renders every registered set against sample fields
type TemplateHealthChecker struct {
	registry *template.Registry
}

// NewTemplateHealthChecker creates a new template health checker
func NewTemplateHealthChecker(registry *template.Registry) *TemplateHealthChecker {
	return &TemplateHealthChecker{registry: registry}
}

// Check verifies that each template set still renders
func (t *TemplateHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "templates",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if t.registry == nil {
		status.Status = statusUnhealthy
		status.Error = "template registry is not available"
		return status
	}

	for _, id := range t.registry.IDs() {
		fields, ok := template.SampleFields(id)
		if !ok {
			continue
		}
		if _, err := t.registry.Render(id, fields); err != nil {
			status.Status = statusUnhealthy
			status.Details[id.String()] = "error"
			status.Error = err.Error()
			continue
		}
		status.Details[id.String()] = "ok"
	}

	return status
}
