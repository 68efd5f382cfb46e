package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/set-night/healthdash/internal/config"
)

// Alerter forwards server failures to an ops chat.
type Alerter struct {
	bot     *bot.Bot
	chatID  int64
	topicID int
	wg      sync.WaitGroup
}

func NewAlerter(token string, chatID int64, topicID int, opts ...bot.Option) (*Alerter, error) {
	b, err := bot.New(token, append([]bot.Option{bot.WithSkipGetMe()}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Alerter{bot: b, chatID: chatID, topicID: topicID}, nil
}

// Report sends err in the background. attrs are slog-style key/value pairs.
func (a *Alerter) Report(err error, attrs ...any) {
	msg := formatError(err, attrs, time.Now())
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.send(msg)
	}()
}

// Notify sends a plain message and waits for it.
func (a *Alerter) Notify(message string) {
	a.send(message)
}

// Wait blocks until every pending Report has been sent.
func (a *Alerter) Wait() {
	a.wg.Wait()
}

func (a *Alerter) send(message string) {
	if len([]rune(message)) > config.MaxAlertMessage {
		message = string([]rune(message)[:config.MaxAlertMessage-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.AlertTimeout)
	defer cancel()

	_, err := a.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          a.chatID,
		Text:            message,
		MessageThreadID: a.topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram alert", "error", err)
	}
}

func formatError(err error, attrs []any, at time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "❌ Error in %s\n\n", config.ServiceName)
	fmt.Fprintf(&sb, "Error: %s\n", err.Error())
	for i := 0; i+1 < len(attrs); i += 2 {
		fmt.Fprintf(&sb, "%v: %v\n", attrs[i], attrs[i+1])
	}
	fmt.Fprintf(&sb, "Time: %s", at.UTC().Format("2006-01-02 15:04:05"))
	return sb.String()
}
