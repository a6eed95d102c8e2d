package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadmail.app/internal/config"
	"leadmail.app/internal/core/template"
	"leadmail.app/internal/mocks"
	"leadmail.app/internal/ports"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Warn("Telegram delivery failed", ports.F("leadId", "42"), ports.F("error", stderrors.New("chat not found")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Telegram delivery failed", entry["msg"])
	assert.Equal(t, "42", entry["leadId"])
	assert.Equal(t, "chat not found", entry["error"])
}

func TestSlogLoggerAdapter_ZeroValue(t *testing.T) {
	var logger SlogLoggerAdapter
	assert.NotPanics(t, func() { logger.Debug("debug message") })
}

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		SiteURL: "https://doclogic.example",
		Server:  config.ServerConfig{Port: 8080, LogLevel: "debug"},
		Email: config.EmailConfig{
			SMTPHost:     "smtp.example.com",
			SMTPPort:     465,
			SMTPUsername: "robot@doclogic.example",
			SSL:          true,
		},
		Lead: config.LeadConfig{
			To:              []string{"sales@doclogic.example"},
			FromMode:        template.FromModeSystem,
			MaxAttachments:  5,
			MaxAttachmentMB: 10,
		},
		Telegram:  config.TelegramConfig{BotToken: "123:abc", ChatID: "-1", APIBaseURL: "https://api.telegram.org", TimeoutSeconds: 10},
		RateLimit: config.RateLimitConfig{Enabled: true, Store: config.StoreTypeMemory, MaxRequests: 60, WindowMinutes: 10},
		Templates: config.TemplatesConfig{PreviewEnabled: true},
	}

	provider := NewConfigProviderAdapter(cfg)

	app := provider.GetAppConfig()
	assert.Equal(t, "https://doclogic.example", app.SiteURL)
	assert.True(t, app.PreviewEnabled)
	assert.Equal(t, 5, app.MaxAttachments)

	lead := provider.GetLeadConfig()
	assert.Equal(t, []string{"sales@doclogic.example"}, lead.To)
	assert.Equal(t, "robot@doclogic.example", lead.SystemFrom)
	assert.Equal(t, "robot@doclogic.example", lead.AutoreplyFrom)
	assert.Equal(t, "system", lead.FromMode)

	assert.True(t, provider.GetEmailConfig().SSL)
	assert.Equal(t, 10*time.Second, provider.GetTelegramConfig().Timeout)

	rateLimit := provider.GetRateLimitConfig()
	assert.True(t, rateLimit.Enabled)
	assert.Equal(t, "memory", rateLimit.Store)
	assert.Equal(t, 10*time.Minute, rateLimit.Window)
}

func TestPrometheusDeliveryMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusDeliveryMetrics(reg)

	metrics.RecordLead("accepted")
	metrics.RecordLead("accepted")
	metrics.RecordDelivery("email", "sent")
	metrics.RecordRender("order_notification", true)
	metrics.RecordRender("order_notification", false)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.leads.WithLabelValues("accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.deliveries.WithLabelValues("email", "sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.renders.WithLabelValues("order_notification", "error")))

	count, err := testutil.GatherAndCount(reg, "leadmail_leads_total", "leadmail_deliveries_total", "leadmail_template_renders_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestEmailHealthChecker(t *testing.T) {
	ctx := context.Background()

	disabled := NewEmailHealthChecker(ports.EmailConfig{}, ports.LeadConfig{}).Check(ctx)
	assert.Equal(t, "disabled", disabled.Status)

	healthy := NewEmailHealthChecker(
		ports.EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587},
		ports.LeadConfig{To: []string{"sales@doclogic.example"}, FromMode: "client"},
	).Check(ctx)
	assert.Equal(t, "healthy", healthy.Status)
	assert.Equal(t, "587", healthy.Details["port"])

	noRecipient := NewEmailHealthChecker(ports.EmailConfig{SMTPHost: "smtp.example.com"}, ports.LeadConfig{}).Check(ctx)
	assert.Equal(t, "unhealthy", noRecipient.Status)
	assert.NotEmpty(t, noRecipient.Error)
}

func TestChatHealthChecker(t *testing.T) {
	ctx := context.Background()

	enabled := mocks.NewChatNotifier(t)
	enabled.EXPECT().Enabled().Return(true)
	assert.Equal(t, "healthy", NewChatHealthChecker(enabled).Check(ctx).Status)

	off := mocks.NewChatNotifier(t)
	off.EXPECT().Enabled().Return(false)
	assert.Equal(t, "disabled", NewChatHealthChecker(off).Check(ctx).Status)

	assert.Equal(t, "disabled", NewChatHealthChecker(nil).Check(ctx).Status)
}

func TestTemplateHealthChecker(t *testing.T) {
	registry, err := template.NewRegistry(template.DefaultSets()...)
	require.NoError(t, err)

	status := NewTemplateHealthChecker(registry).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "ok", status.Details["order_notification"])
	assert.Equal(t, "ok", status.Details["client_autoreply"])

	missing := NewTemplateHealthChecker(nil).Check(context.Background())
	assert.Equal(t, "unhealthy", missing.Status)
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	ctx := context.Background()

	emailChecker := mocks.NewHealthChecker(t)
	emailChecker.EXPECT().Check(ctx).Return(ports.HealthStatus{Component: "smtp", Status: "healthy"})

	configProvider := mocks.NewConfigProvider(t)
	configProvider.EXPECT().GetAppConfig().Return(ports.AppConfig{SiteURL: "https://doclogic.example"})
	configProvider.EXPECT().GetRateLimitConfig().Return(ports.RateLimitConfig{Store: "redis"})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		EmailChecker:   emailChecker,
		ConfigProvider: configProvider,
	})

	results := checker.CheckAll(ctx)

	assert.Len(t, results, 2)
	assert.Equal(t, "healthy", results["smtp"].Status)
	assert.Equal(t, "redis", results["config"].Details["rateLimitStore"])
}
