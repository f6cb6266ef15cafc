// Package notify delivers operational notifications to Telegram.
//
// The notifier is a fire-and-forget channel for lifecycle events: startup,
// batch completion, failures. Delivery errors are logged and swallowed so a
// Telegram outage can never break the application itself. A disabled or
// unconfigured notifier is a silent no-op, which keeps call sites free of
// conditionals.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"gantry-hq/gantry/pkg/config"
	"gantry-hq/gantry/pkg/httpclient"
)

// Notifier sends messages to a Telegram chat via the Bot API.
type Notifier struct {
	enabled bool
	token   string
	chatID  string
	client  *httpclient.Client
	logger  *slog.Logger
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// New creates a Notifier from configuration. When telegram is disabled or
// the bot token is missing, the returned Notifier discards all messages.
func New(cfg config.TelegramConfig, httpCfg config.HTTPConfig) *Notifier {
	n := &Notifier{
		enabled: cfg.Enabled && cfg.BotToken != "" && cfg.ChatID != "",
		token:   cfg.BotToken,
		chatID:  cfg.ChatID,
		logger:  slog.Default().With("component", "notify"),
	}
	if n.enabled {
		n.client = httpclient.New(cfg.APIBaseURL, httpCfg)
	}
	return n
}

// Enabled reports whether messages will actually be delivered.
func (n *Notifier) Enabled() bool {
	return n.enabled
}

// Send delivers a Markdown-formatted message to the configured chat.
// Failures are logged, never returned.
func (n *Notifier) Send(ctx context.Context, text string) {
	if !n.enabled {
		return
	}

	req := sendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "Markdown",
	}
	path := fmt.Sprintf("/bot%s/sendMessage", n.token)

	if err := n.client.PostJSON(ctx, path, req, nil); err != nil {
		n.logger.Warn("Failed to send notification", "error", err)
		return
	}
	n.logger.Debug("Notification sent")
}

// Sendf formats and delivers a message.
func (n *Notifier) Sendf(ctx context.Context, format string, args ...interface{}) {
	if !n.enabled {
		return
	}
	n.Send(ctx, fmt.Sprintf(format, args...))
}

// SendError reports an error with a short context line.
func (n *Notifier) SendError(ctx context.Context, subject string, err error) {
	n.Sendf(ctx, "*%s*\n`%v`", subject, err)
}

// Close releases the underlying HTTP client.
func (n *Notifier) Close() error {
	if n.client != nil {
		return n.client.Close()
	}
	return nil
}
