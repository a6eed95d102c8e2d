package app

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"leadmail.app/internal/config"
	"leadmail.app/internal/core/template"
	"leadmail.app/pkg/errors"
)

type recordingDialer struct {
	mu       sync.Mutex
	messages []*gomail.Message
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, m...)
	return nil
}

func testConfig(telegramURL string) *config.Config {
	return &config.Config{
		SiteURL: "https://doclogic.example",
		Server:  config.ServerConfig{Port: 8080, LogLevel: "info"},
		Email:   config.EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPUsername: "robot@doclogic.example"},
		Lead: config.LeadConfig{
			To:              []string{"sales@doclogic.example"},
			AutoreplyFrom:   "hello@doclogic.example",
			FromMode:        template.FromModeClient,
			MaxAttachments:  5,
			MaxAttachmentMB: 10,
		},
		Telegram: config.TelegramConfig{
			BotToken:       "123:abc",
			ChatID:         "-100500",
			APIBaseURL:     telegramURL,
			TimeoutSeconds: 5,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:       true,
			Store:         config.StoreTypeMemory,
			MaxRequests:   60,
			WindowMinutes: 10,
		},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config, dialer *recordingDialer, reg *prometheus.Registry) *Application {
	t.Helper()

	opts := DependencyOptions{MetricsRegisterer: reg}
	if dialer != nil {
		opts.MailDialer = dialer
	}
	deps, err := NewDependencyContainer(cfg, opts)
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return application
}

func TestApplication_SubmitLead(t *testing.T) {
	var telegramText string
	telegram := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		telegramText = body.Text
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer telegram.Close()

	dialer := &recordingDialer{}
	reg := prometheus.NewRegistry()
	application := newTestApplication(t, testConfig(telegram.URL), dialer, reg)

	body := `{"name":"Ivan","company":"ACME","email":"ivan@acme.com","message":"Need <b>invoices</b>"}`
	req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		OK      bool `json:"ok"`
		Results map[string]struct {
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.OK)
	assert.Equal(t, "sent", response.Results["email"].Status)
	assert.Equal(t, "sent", response.Results["telegram"].Status)
	assert.Equal(t, "sent", response.Results["autoreply"].Status)

	require.Len(t, dialer.messages, 2)

	alert := dialer.messages[0]
	assert.Equal(t, []string{"sales@doclogic.example"}, alert.GetHeader("To"))
	assert.Equal(t, []string{`"Ivan (ACME)" <ivan@acme.com>`}, alert.GetHeader("From"))
	subject, err := new(mime.WordDecoder).DecodeHeader(alert.GetHeader("Subject")[0])
	require.NoError(t, err)
	assert.Equal(t, "DocLogic: новый запрос от Ivan ACME", subject)

	autoreply := dialer.messages[1]
	assert.Equal(t, []string{"ivan@acme.com"}, autoreply.GetHeader("To"))
	assert.Contains(t, autoreply.GetHeader("From")[0], "<hello@doclogic.example>")

	assert.Contains(t, telegramText, "Имя: Ivan")
	assert.Contains(t, telegramText, "Телефон: -")

	assert.Equal(t, float64(1), counterValue(t, reg, "leadmail_leads_total", "accepted"))
}

// counterValue reads a single-label counter series from the registry
func counterValue(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if metric.GetLabel()[0].GetValue() == label {
				return metric.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("metric %s{%s} not found", name, label)
	return 0
}

func TestApplication_NothingConfigured(t *testing.T) {
	cfg := testConfig("")
	cfg.Email = config.EmailConfig{SMTPPort: 587}
	cfg.Lead.To = nil
	cfg.Telegram = config.TelegramConfig{APIBaseURL: "https://api.telegram.org", TimeoutSeconds: 5}

	application := newTestApplication(t, cfg, nil, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(`{"name":"Ivan","phone":"+7 900"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"email": {"status": "skipped", "reason": "email transport not configured"},
		"telegram": {"status": "skipped", "reason": "telegram not configured"},
		"autoreply": {"status": "skipped", "reason": "no email"}
	}`, extractResults(t, w.Body.Bytes()))
}

func extractResults(t *testing.T, body []byte) string {
	t.Helper()
	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &response))
	return string(response["results"])
}

func TestApplication_Health(t *testing.T) {
	application := newTestApplication(t, testConfig("https://api.telegram.org"), &recordingDialer{}, prometheus.NewRegistry())

	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"templates"`)
}

func TestBuildTemplateRegistry(t *testing.T) {
	cfg := testConfig("")

	cfg.Lead.SubjectTemplate = `Lead:\n{name}`
	registry, err := BuildTemplateRegistry(cfg)
	require.NoError(t, err)
	set, ok := registry.Get(template.SetOrderNotification)
	require.True(t, ok)
	assert.Equal(t, "Lead:\n{name}", set.Subject)

	cfg.Lead.SubjectTemplate = "Lead: {nmae}"
	_, err = BuildTemplateRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsMissingPlaceholderError(err))

	_, err = NewDependencyContainer(cfg, DependencyOptions{MetricsRegisterer: prometheus.NewRegistry()})
	assert.Error(t, err)
}
