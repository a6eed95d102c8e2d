package ports

import "time"

// AppConfig represents application configuration
type AppConfig struct {
	SiteURL         string
	PreviewEnabled  bool
	MaxAttachments  int
	MaxAttachmentMB int
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port     int
	LogLevel string
}

// LeadConfig represents lead delivery addressing
type LeadConfig struct {
	To            []string
	SystemFrom    string
	AutoreplyFrom string
	FromMode      string
}

// EmailConfig represents email configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SSL          bool
}

// TelegramConfig represents Telegram bot configuration
type TelegramConfig struct {
	BotToken   string
	ChatID     string
	APIBaseURL string
	Timeout    time.Duration
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	Enabled     bool
	Store       string
	MaxRequests int
	Window      time.Duration
	Redis       RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAppConfig() AppConfig
	GetServerConfig() ServerConfig
	GetLeadConfig() LeadConfig
	GetEmailConfig() EmailConfig
	GetTelegramConfig() TelegramConfig
	GetRateLimitConfig() RateLimitConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
