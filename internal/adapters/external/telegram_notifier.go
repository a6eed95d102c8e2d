package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leadmail.app/internal/ports"
	"leadmail.app/pkg/errors"
)

const (
	defaultTelegramBaseURL = "https://api.telegram.org"
	maxTelegramErrorBody   = 4 << 10
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TelegramNotifierAdapter implements ChatNotifier port using the Telegram Bot API
type TelegramNotifierAdapter struct {
	baseURL  string
	botToken string
	chatID   string
	client   HTTPClient
	logger   ports.Logger
}

// TelegramNotifierParams holds parameters for creating the Telegram notifier
type TelegramNotifierParams struct {
	BaseURL  string
	BotToken string
	ChatID   string
	Timeout  time.Duration
	Logger   ports.Logger
}

type telegramSendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// NewTelegramNotifierAdapter creates a new Telegram notifier adapter
func NewTelegramNotifierAdapter(params TelegramNotifierParams) *TelegramNotifierAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultTelegramBaseURL
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &TelegramNotifierAdapter{
		baseURL:  baseURL,
		botToken: params.BotToken,
		chatID:   params.ChatID,
		client:   &http.Client{Timeout: timeout},
		logger:   params.Logger,
	}
}

// Enabled reports whether both the bot token and the chat id are configured
func (a *TelegramNotifierAdapter) Enabled() bool {
	return a.botToken != "" && a.chatID != ""
}

// SendMessage posts a plain text message to the configured chat
func (a *TelegramNotifierAdapter) SendMessage(ctx context.Context, text string) error {
	if !a.Enabled() {
		return errors.NewConfigurationError("telegram bot token or chat id is not configured", nil)
	}
	if strings.TrimSpace(text) == "" {
		return errors.NewValidationError("telegram message cannot be empty")
	}

	payload, err := json.Marshal(telegramSendMessageRequest{
		ChatID:                a.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return errors.NewExternalAPIError("failed to encode Telegram request", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", a.baseURL, a.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.NewExternalAPIError("failed to build Telegram request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call Telegram", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && a.logger != nil {
			a.logger.Warn("Failed to close Telegram response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxTelegramErrorBody))
		return errors.NewExternalAPIError(
			fmt.Sprintf("Telegram returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	return nil
}
