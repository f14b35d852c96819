package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier sends alerts to a Telegram chat via the Bot API.
type TelegramNotifier struct {
	baseURL    string
	botToken   string
	chatID     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTelegramNotifier creates a Telegram notifier for the given bot token
// and chat ID.
func NewTelegramNotifier(botToken, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		baseURL:  telegramAPIBase,
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify posts an HTML-formatted message to the configured chat.
func (t *TelegramNotifier) Notify(ctx context.Context, message string) error {
	payload := sendMessageRequest{
		ChatID:    t.chatID,
		Text:      message,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		NotificationErrorsTotal.Inc()
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		NotificationErrorsTotal.Inc()
		return fmt.Errorf("decode telegram response: %w", err)
	}

	if !result.OK {
		NotificationErrorsTotal.Inc()
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	NotificationsSentTotal.Inc()
	t.logger.Debug("telegram-alert-sent", zap.Int("message-length", len(message)))
	return nil
}
