package notify

import (
	"context"

	"leakwatch/pkg/logger"

	"go.uber.org/zap"
)

// Discard is a Notifier that drops every message. It is used when no
// delivery channel is configured, e.g. in development setups without a bot
// token.
type Discard struct{}

// Notify drops the message and reports success.
func (Discard) Notify(ctx context.Context, chatID int64, _ string) error {
	logger.Debug(ctx, "alert delivery disabled, dropping message", zap.Int64("chatId", chatID))

	return nil
}

var _ Notifier = Discard{}
