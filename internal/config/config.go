package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"leadmail.app/internal/core/template"
	"leadmail.app/pkg/errors"
	"leadmail.app/pkg/validation"
)

const (
	maxRedisDB          = 15
	maxPortNumber       = 65535
	maxAttachments      = 20
	maxAttachmentMB     = 25
	maxRateLimitMinutes = 1440
	defaultSenderEmail  = "no-reply@doclogic"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Email     EmailConfig     `split_words:"true"`
	Lead      LeadConfig      `split_words:"true"`
	Telegram  TelegramConfig  `split_words:"true"`
	RateLimit RateLimitConfig `split_words:"true"`
	Templates TemplatesConfig `split_words:"true"`
	SiteURL   string          `envconfig:"SITE_URL"`
}

type ServerConfig struct {
	Port           int      `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES" default:"127.0.0.1,::1"`
}

type EmailConfig struct {
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASS"`
	SSL          bool   `envconfig:"SMTP_SECURE" default:"false"`
}

// Enabled reports whether an SMTP host is configured
func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

type LeadConfig struct {
	To              []string          `envconfig:"EMAIL_TO"`
	From            string            `envconfig:"EMAIL_FROM"`
	AutoreplyFrom   string            `envconfig:"AUTOREPLY_FROM"`
	FromMode        template.FromMode `envconfig:"LEAD_EMAIL_FROM_MODE" default:"client"`
	FromTemplate    string            `envconfig:"LEAD_EMAIL_FROM_TEMPLATE"`
	SubjectTemplate string            `envconfig:"LEAD_EMAIL_SUBJECT_TEMPLATE"`
	TextTemplate    string            `envconfig:"LEAD_EMAIL_TEXT_TEMPLATE"`
	HTMLTemplate    string            `envconfig:"LEAD_EMAIL_HTML_TEMPLATE"`
	MaxAttachments  int               `envconfig:"LEAD_MAX_ATTACHMENTS" default:"5"`
	MaxAttachmentMB int               `envconfig:"LEAD_MAX_ATTACHMENT_MB" default:"10"`
}

// Overrides returns the order notification parts configured through the environment
func (l LeadConfig) Overrides() template.Overrides {
	return template.Overrides{
		Subject: l.SubjectTemplate,
		From:    l.FromTemplate,
		Text:    l.TextTemplate,
		HTML:    l.HTMLTemplate,
	}
}

type TelegramConfig struct {
	BotToken       string `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID         string `envconfig:"TELEGRAM_CHAT_ID"`
	APIBaseURL     string `envconfig:"TELEGRAM_API_BASE_URL" default:"https://api.telegram.org"`
	TimeoutSeconds int    `envconfig:"TELEGRAM_TIMEOUT_SECONDS" default:"10"`
}

// Enabled reports whether both the bot token and chat id are set
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// StoreType represents the backing store of the rate limiter
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type RateLimitConfig struct {
	Enabled       bool        `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Store         StoreType   `envconfig:"RATE_LIMIT_STORE" default:"memory"`
	MaxRequests   int         `envconfig:"RATE_LIMIT_MAX" default:"60"`
	WindowMinutes int         `envconfig:"RATE_LIMIT_WINDOW_MINUTES" default:"10"`
	Redis         RedisConfig `split_words:"true"`
}

// Window returns the rate limit window as a duration
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type TemplatesConfig struct {
	PreviewEnabled bool `envconfig:"TEMPLATE_PREVIEW_ENABLED" default:"false"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	config.Lead.To = validation.NormalizeList(config.Lead.To)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SystemFrom is the address of the internal alert in system mode
func (c *Config) SystemFrom() string {
	return firstNonEmpty(c.Lead.From, c.Email.SMTPUsername, defaultSenderEmail)
}

// AutoreplyFrom is the address the client autoreply is sent from
func (c *Config) AutoreplyFrom() string {
	return firstNonEmpty(c.Lead.AutoreplyFrom, c.Lead.From, c.Email.SMTPUsername, defaultSenderEmail)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Lead.Validate(); err != nil {
		return err
	}
	if err := c.Telegram.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	if c.Email.Enabled() && len(c.Lead.To) == 0 {
		return errors.NewConfigurationError("EMAIL_TO is required when SMTP_HOST is set", nil)
	}
	if c.SiteURL != "" && !validation.IsHTTPURL(c.SiteURL) {
		return errors.NewConfigurationError("SITE_URL must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}

func (e *EmailConfig) Validate() error {
	if !e.Enabled() {
		return nil
	}
	if e.SMTPPort < 1 || e.SMTPPort > maxPortNumber {
		return errors.NewConfigurationError("SMTP_PORT must be between 1 and 65535", nil)
	}
	if e.SMTPPassword != "" && e.SMTPUsername == "" {
		return errors.NewConfigurationError("SMTP_PASS is set but SMTP_USER is empty", nil)
	}
	return nil
}

func (l *LeadConfig) Validate() error {
	for _, to := range l.To {
		if !validation.IsValidEmail(to) {
			return errors.NewConfigurationError(fmt.Sprintf("EMAIL_TO contains an invalid address: %s", to), nil)
		}
	}
	if l.From != "" && !validation.IsValidEmail(l.From) {
		return errors.NewConfigurationError("EMAIL_FROM must be a valid email address", nil)
	}
	if l.AutoreplyFrom != "" && !validation.IsValidEmail(l.AutoreplyFrom) {
		return errors.NewConfigurationError("AUTOREPLY_FROM must be a valid email address", nil)
	}
	if !l.FromMode.IsValid() {
		return errors.NewConfigurationError("LEAD_EMAIL_FROM_MODE must be one of: client, system", nil)
	}
	if l.MaxAttachments < 0 || l.MaxAttachments > maxAttachments {
		return errors.NewConfigurationError(fmt.Sprintf("LEAD_MAX_ATTACHMENTS must be between 0 and %d", maxAttachments), nil)
	}
	if l.MaxAttachmentMB < 1 || l.MaxAttachmentMB > maxAttachmentMB {
		return errors.NewConfigurationError(fmt.Sprintf("LEAD_MAX_ATTACHMENT_MB must be between 1 and %d", maxAttachmentMB), nil)
	}
	return nil
}

func (t *TelegramConfig) Validate() error {
	if (t.BotToken == "") != (t.ChatID == "") {
		return errors.NewConfigurationError("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must both be provided or both be empty", nil)
	}
	if !validation.IsHTTPURL(t.APIBaseURL) {
		return errors.NewConfigurationError("TELEGRAM_API_BASE_URL must start with http:// or https://", nil)
	}
	if t.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("TELEGRAM_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (r *RateLimitConfig) Validate() error {
	if !r.Store.IsValid() {
		return errors.NewConfigurationError("RATE_LIMIT_STORE must be one of: memory, redis", nil)
	}
	if r.MaxRequests < 1 {
		return errors.NewConfigurationError("RATE_LIMIT_MAX must be at least 1", nil)
	}
	if r.WindowMinutes < 1 || r.WindowMinutes > maxRateLimitMinutes {
		return errors.NewConfigurationError("RATE_LIMIT_WINDOW_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if r.Store == StoreTypeRedis {
		return r.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
