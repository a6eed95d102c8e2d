package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadmail.app/internal/mocks"
	"leadmail.app/pkg/errors"
)

func setupLoggerMockTelegram(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestTelegramNotifier_SendMessage_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "-100500", body["chat_id"])
		assert.Equal(t, "Новый лид DocLogic", body["text"])
		assert.Equal(t, true, body["disable_web_page_preview"])

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"ok":true}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	notifier := NewTelegramNotifierAdapter(TelegramNotifierParams{
		BaseURL:  mockServer.URL + "/",
		BotToken: "123:abc",
		ChatID:   "-100500",
		Logger:   setupLoggerMockTelegram(t),
	})

	require.True(t, notifier.Enabled())
	assert.NoError(t, notifier.SendMessage(context.Background(), "Новый лид DocLogic"))
}

func TestTelegramNotifier_SendMessage_APIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, err := w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	notifier := NewTelegramNotifierAdapter(TelegramNotifierParams{
		BaseURL:  mockServer.URL,
		BotToken: "123:abc",
		ChatID:   "-1",
		Logger:   setupLoggerMockTelegram(t),
	})

	err := notifier.SendMessage(context.Background(), "hello")

	require.Error(t, err)
	var appErr *errors.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, errors.ErrorTypeExternalAPI, appErr.Type)
	}
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramNotifier_SendMessage_Timeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer mockServer.Close()

	notifier := NewTelegramNotifierAdapter(TelegramNotifierParams{
		BaseURL:  mockServer.URL,
		BotToken: "123:abc",
		ChatID:   "-1",
		Timeout:  20 * time.Millisecond,
		Logger:   setupLoggerMockTelegram(t),
	})

	err := notifier.SendMessage(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call Telegram")
}

func TestTelegramNotifier_NotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		params TelegramNotifierParams
	}{
		{"NoToken", TelegramNotifierParams{ChatID: "-1"}},
		{"NoChat", TelegramNotifierParams{BotToken: "123:abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := NewTelegramNotifierAdapter(tt.params)

			assert.False(t, notifier.Enabled())
			err := notifier.SendMessage(context.Background(), "hello")
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestTelegramNotifier_EmptyMessage(t *testing.T) {
	notifier := NewTelegramNotifierAdapter(TelegramNotifierParams{BotToken: "123:abc", ChatID: "-1"})

	err := notifier.SendMessage(context.Background(), "  ")
	assert.True(t, errors.IsValidationError(err))
}
