package notify

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ConsoleNotifier writes alerts to the structured log. Used when no
// Telegram credentials are configured.
type ConsoleNotifier struct {
	logger *zap.Logger
}

// NewConsoleNotifier creates a log-backed notifier.
func NewConsoleNotifier(logger *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

// Notify logs the message at warn level with HTML tags stripped.
func (c *ConsoleNotifier) Notify(ctx context.Context, message string) error {
	c.logger.Warn("operator-alert", zap.String("message", stripHTML(message)))
	NotificationsSentTotal.Inc()
	return nil
}

var htmlReplacer = strings.NewReplacer(
	"<b>", "", "</b>", "",
	"<i>", "", "</i>", "",
	"<code>", "", "</code>", "",
)

func stripHTML(s string) string {
	return htmlReplacer.Replace(s)
}
