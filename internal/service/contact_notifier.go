package service

import (
	"context"
	"time"

	"github.com/osa911/lifecycle/internal/contact"
	"github.com/osa911/lifecycle/internal/logging"
)

// ContactNotifier forwards confirmed contact submissions to Telegram. It is
// installed as the form controller's success hook.
type ContactNotifier struct {
	telegram *TelegramService
	timeout  time.Duration
}

// NewContactNotifier returns a notifier that does nothing when telegram is
// not configured.
func NewContactNotifier(telegram *TelegramService) *ContactNotifier {
	return &ContactNotifier{
		telegram: telegram,
		timeout:  10 * time.Second,
	}
}

// Notify sends the message in the background so the form never waits on
// Telegram. Failures are only logged.
func (n *ContactNotifier) Notify(ctx context.Context, submitted contact.FormFields) {
	if n.telegram == nil || !n.telegram.Enabled() {
		return
	}

	info := infoFromContext(ctx)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)

	go func() {
		defer cancel()
		err := n.telegram.SendContactMessage(ctx, submitted.Name, submitted.Email, submitted.Message, info)
		if err != nil {
			logging.GetGlobalLogger().Warn("Failed to send contact notification: %v", err)
		}
	}()
}

type messageInfoKey struct{}

// WithMessageInfo attaches request metadata for Notify.
func WithMessageInfo(ctx context.Context, info *ContactMessageInfo) context.Context {
	return context.WithValue(ctx, messageInfoKey{}, info)
}

func infoFromContext(ctx context.Context) *ContactMessageInfo {
	info, _ := ctx.Value(messageInfoKey{}).(*ContactMessageInfo)
	return info
}
