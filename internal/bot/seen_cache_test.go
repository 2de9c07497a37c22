package bot_test

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Raikerian/go-discord-pingbot/internal/bot"
	"github.com/Raikerian/go-discord-pingbot/internal/config"
)

func TestSeenMessages(t *testing.T) {
	t.Run("MarkSeen", func(t *testing.T) {
		sm := bot.NewSeenMessages(4)

		assert.False(t, sm.MarkSeen(1))
		assert.True(t, sm.MarkSeen(1))
		assert.False(t, sm.MarkSeen(2))
	})

	t.Run("EvictsOldest", func(t *testing.T) {
		sm := bot.NewSeenMessages(2)

		sm.MarkSeen(1)
		sm.MarkSeen(2)
		sm.MarkSeen(3)

		assert.True(t, sm.MarkSeen(3))
		assert.True(t, sm.MarkSeen(2))
		// 1 was evicted, so it is recorded again as new.
		assert.False(t, sm.MarkSeen(1))
	})

	t.Run("InvalidSizePanics", func(t *testing.T) {
		assert.Panics(t, func() { bot.NewSeenMessages(0) })
	})
}

func TestNewSeenMessagesProvider(t *testing.T) {
	t.Run("ConfiguredSize", func(t *testing.T) {
		cfg := &config.Config{Discord: config.DiscordConfig{SeenMessageCacheSize: 1}}
		sm := bot.NewSeenMessagesProvider(cfg, zap.NewNop())

		sm.MarkSeen(1)
		sm.MarkSeen(2)
		assert.False(t, sm.MarkSeen(1))
	})

	t.Run("DefaultSize", func(t *testing.T) {
		cfg := &config.Config{}
		sm := bot.NewSeenMessagesProvider(cfg, zap.NewNop())

		for i := 1; i <= bot.DefaultSeenMessageCacheSize; i++ {
			sm.MarkSeen(discord.MessageID(i))
		}
		assert.True(t, sm.MarkSeen(1))

		// One more ID evicts the oldest entry.
		sm.MarkSeen(discord.MessageID(bot.DefaultSeenMessageCacheSize + 1))
		assert.False(t, sm.MarkSeen(1))
	})
}
