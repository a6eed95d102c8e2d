package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadmail.app/internal/core/template"
	"leadmail.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "info", config.Server.LogLevel)
		assert.False(t, config.Email.Enabled())
		assert.Equal(t, 587, config.Email.SMTPPort)
		assert.Equal(t, template.FromModeClient, config.Lead.FromMode)
		assert.Equal(t, 5, config.Lead.MaxAttachments)
		assert.Equal(t, 10, config.Lead.MaxAttachmentMB)
		assert.False(t, config.Telegram.Enabled())
		assert.Equal(t, "https://api.telegram.org", config.Telegram.APIBaseURL)
		assert.Equal(t, StoreTypeMemory, config.RateLimit.Store)
		assert.Equal(t, 60, config.RateLimit.MaxRequests)
		assert.Equal(t, 10*time.Minute, config.RateLimit.Window())
		assert.False(t, config.Templates.PreviewEnabled)
		assert.Equal(t, "no-reply@doclogic", config.SystemFrom())
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("SMTP_HOST", "smtp.example.com"))
		require.NoError(t, os.Setenv("SMTP_PORT", "465"))
		require.NoError(t, os.Setenv("SMTP_USER", "robot@doclogic.example"))
		require.NoError(t, os.Setenv("SMTP_PASS", "secret"))
		require.NoError(t, os.Setenv("SMTP_SECURE", "true"))
		require.NoError(t, os.Setenv("EMAIL_TO", "sales@doclogic.example, ceo@doclogic.example"))
		require.NoError(t, os.Setenv("AUTOREPLY_FROM", "hello@doclogic.example"))
		require.NoError(t, os.Setenv("LEAD_EMAIL_FROM_MODE", "system"))
		require.NoError(t, os.Setenv("LEAD_EMAIL_SUBJECT_TEMPLATE", "Lead: {name}"))
		require.NoError(t, os.Setenv("TELEGRAM_BOT_TOKEN", "123:abc"))
		require.NoError(t, os.Setenv("TELEGRAM_CHAT_ID", "-100500"))
		require.NoError(t, os.Setenv("RATE_LIMIT_STORE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("SITE_URL", "https://doclogic.example"))
		require.NoError(t, os.Setenv("TEMPLATE_PREVIEW_ENABLED", "true"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.True(t, config.Email.Enabled())
		assert.True(t, config.Email.SSL)
		assert.Equal(t, []string{"sales@doclogic.example", "ceo@doclogic.example"}, config.Lead.To)
		assert.Equal(t, template.FromModeSystem, config.Lead.FromMode)
		assert.Equal(t, "Lead: {name}", config.Lead.Overrides().Subject)
		assert.True(t, config.Telegram.Enabled())
		assert.Equal(t, StoreTypeRedis, config.RateLimit.Store)
		assert.Equal(t, "redis:6379", config.RateLimit.Redis.Addr)
		assert.True(t, config.Templates.PreviewEnabled)
		assert.Equal(t, "robot@doclogic.example", config.SystemFrom())
		assert.Equal(t, "hello@doclogic.example", config.AutoreplyFrom())
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tests := []struct {
			name   string
			env    map[string]string
			errMsg string
		}{
			{"InvalidPort", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT"},
			{"InvalidLogLevel", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
			{"MissingRecipient", map[string]string{"SMTP_HOST": "smtp.example.com"}, "EMAIL_TO"},
			{"InvalidRecipient", map[string]string{"EMAIL_TO": "sales"}, "EMAIL_TO"},
			{"InvalidFromMode", map[string]string{"LEAD_EMAIL_FROM_MODE": "spoof"}, "LEAD_EMAIL_FROM_MODE"},
			{"HalfTelegram", map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"}, "TELEGRAM_CHAT_ID"},
			{"InvalidStore", map[string]string{"RATE_LIMIT_STORE": "memcached"}, "RATE_LIMIT_STORE"},
			{"InvalidSiteURL", map[string]string{"SITE_URL": "doclogic.example"}, "SITE_URL"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				os.Clearenv()
				for k, v := range tt.env {
					require.NoError(t, os.Setenv(k, v))
				}

				config, err := LoadConfig()

				assert.Nil(t, config)
				require.Error(t, err)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}

func TestStoreTypeFromString(t *testing.T) {
	assert.Equal(t, StoreTypeMemory, StoreTypeFromString("memory"))
	assert.Equal(t, StoreTypeRedis, StoreTypeFromString(" Redis "))
	assert.Equal(t, StoreTypeUnknown, StoreTypeFromString(""))
	assert.False(t, StoreTypeUnknown.IsValid())
}

func TestRedisConfig_Validate(t *testing.T) {
	valid := RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3}
	assert.NoError(t, valid.Validate())

	noAddr := valid
	noAddr.Addr = ""
	assert.Error(t, noAddr.Validate())

	badDB := valid
	badDB.DB = 16
	assert.Error(t, badDB.Validate())
}
