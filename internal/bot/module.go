// Package bot provides the Discord bot session handling and its Fx module.
package bot

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-discord-pingbot/internal/config"
)

// Module provides bot service dependencies.
var Module = fx.Module("bot",
	fx.Provide(
		NewSeenMessagesProvider,
		NewBot,
	),
)

// NewSeenMessagesProvider creates a SeenMessages cache with config-derived size.
func NewSeenMessagesProvider(cfg *config.Config, logger *zap.Logger) *SeenMessages {
	size := cfg.Discord.SeenMessageCacheSize
	if size <= 0 {
		logger.Warn("Discord SeenMessageCacheSize is not configured or is invalid, using default",
			zap.Int("configuredSize", size),
			zap.Int("defaultSize", DefaultSeenMessageCacheSize))
		size = DefaultSeenMessageCacheSize
	}
	logger.Info("Creating SeenMessages cache", zap.Int("size", size))

	return NewSeenMessages(size)
}
