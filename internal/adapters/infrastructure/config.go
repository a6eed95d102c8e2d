package infrastructure

import (
	"time"

	"leadmail.app/internal/config"
	"leadmail.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		SiteURL:         c.config.SiteURL,
		PreviewEnabled:  c.config.Templates.PreviewEnabled,
		MaxAttachments:  c.config.Lead.MaxAttachments,
		MaxAttachmentMB: c.config.Lead.MaxAttachmentMB,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:     c.config.Server.Port,
		LogLevel: c.config.Server.LogLevel,
	}
}

// GetLeadConfig returns lead delivery addressing
func (c *ConfigProviderAdapter) GetLeadConfig() ports.LeadConfig {
	return ports.LeadConfig{
		To:            append([]string(nil), c.config.Lead.To...),
		SystemFrom:    c.config.SystemFrom(),
		AutoreplyFrom: c.config.AutoreplyFrom(),
		FromMode:      c.config.Lead.FromMode.String(),
	}
}

// GetEmailConfig returns email configuration
func (c *ConfigProviderAdapter) GetEmailConfig() ports.EmailConfig {
	return ports.EmailConfig{
		SMTPHost:     c.config.Email.SMTPHost,
		SMTPPort:     c.config.Email.SMTPPort,
		SMTPUsername: c.config.Email.SMTPUsername,
		SMTPPassword: c.config.Email.SMTPPassword,
		SSL:          c.config.Email.SSL,
	}
}

// GetTelegramConfig returns Telegram configuration
func (c *ConfigProviderAdapter) GetTelegramConfig() ports.TelegramConfig {
	return ports.TelegramConfig{
		BotToken:   c.config.Telegram.BotToken,
		ChatID:     c.config.Telegram.ChatID,
		APIBaseURL: c.config.Telegram.APIBaseURL,
		Timeout:    time.Duration(c.config.Telegram.TimeoutSeconds) * time.Second,
	}
}

// GetRateLimitConfig returns rate limiting configuration
func (c *ConfigProviderAdapter) GetRateLimitConfig() ports.RateLimitConfig {
	return ports.RateLimitConfig{
		Enabled:     c.config.RateLimit.Enabled,
		Store:       c.config.RateLimit.Store.String(),
		MaxRequests: c.config.RateLimit.MaxRequests,
		Window:      c.config.RateLimit.Window(),
		Redis: ports.RedisConfig{
			Addr:         c.config.RateLimit.Redis.Addr,
			Password:     c.config.RateLimit.Redis.Password,
			DB:           c.config.RateLimit.Redis.DB,
			DialTimeout:  c.config.RateLimit.Redis.DialTimeout,
			ReadTimeout:  c.config.RateLimit.Redis.ReadTimeout,
			WriteTimeout: c.config.RateLimit.Redis.WriteTimeout,
		},
	}
}
