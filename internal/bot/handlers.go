package bot

import (
	"context"

	"github.com/diamondburned/arikawa/v3/gateway"
	"go.uber.org/zap"
)

// onReady logs the authenticated identity on the first READY event only.
// arikawa sends READY again whenever it has to re-identify.
func (b *Bot) onReady(e *gateway.ReadyEvent) {
	first := false
	b.readyOnce.Do(func() {
		first = true
		b.logger.Info("Connected to Discord",
			zap.String("username", e.User.Username),
			zap.String("tag", e.User.Tag()),
			zap.Stringer("userID", e.User.ID),
		)
	})

	if !first {
		b.logger.Debug("Received READY after re-identify", zap.String("sessionID", e.SessionID))
	}
}

func (b *Bot) onMessageCreate(e *gateway.MessageCreateEvent) {
	b.handleMessage(context.Background(), e)
}

// handleMessage replies to a message whose content is exactly a command trigger.
// Send failures are logged and not retried.
func (b *Bot) handleMessage(ctx context.Context, e *gateway.MessageCreateEvent) {
	// Covers this bot's own replies as well.
	if e.Author.Bot {
		return
	}

	cmd, ok := b.cmdManager.Match(e.Content)
	if !ok {
		return
	}

	logger := b.logger.With(
		zap.String("commandName", cmd.Name()),
		zap.Stringer("channelID", e.ChannelID),
		zap.Stringer("messageID", e.ID),
		zap.String("user", e.Author.Username),
	)

	if b.seen.MarkSeen(e.ID) {
		logger.Debug("Command message already handled, ignoring redelivery")

		return
	}

	logger.Info("Received command")
	if err := cmd.Execute(ctx, b.session, e); err != nil {
		logger.Error("Error executing command", zap.Error(err))

		return
	}
	logger.Info("Command executed successfully")
}
