package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raikerian/go-discord-pingbot/internal/config"
)

// clearEnv unsets every variable LoadConfig reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DISCORD_BOT_TOKEN",
		"DISCORD_COMMAND_PREFIX",
		"DISCORD_SEEN_MESSAGE_CACHE_SIZE",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("FromYAML", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, `
discord:
  bot_token: " yaml-token "
  command_prefix: "?"
  seen_message_cache_size: 32
log_level: DEBUG
`)

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "yaml-token", cfg.Discord.BotToken)
		assert.Equal(t, "?", cfg.Discord.CommandPrefix)
		assert.Equal(t, 32, cfg.Discord.SeenMessageCacheSize)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("EnvOverridesYAML", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, `
discord:
  bot_token: yaml-token
log_level: warn
`)
		t.Setenv("DISCORD_BOT_TOKEN", "env-token")
		t.Setenv("LOG_LEVEL", "error")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "env-token", cfg.Discord.BotToken)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("UnprefixedNamesDoNotOverride", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, `
discord:
  bot_token: yaml-token
  command_prefix: "?"
  seen_message_cache_size: 32
`)
		t.Setenv("BOT_TOKEN", "unrelated-token")
		t.Setenv("COMMAND_PREFIX", "$")
		t.Setenv("SEEN_MESSAGE_CACHE_SIZE", "8")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "yaml-token", cfg.Discord.BotToken)
		assert.Equal(t, "?", cfg.Discord.CommandPrefix)
		assert.Equal(t, 32, cfg.Discord.SeenMessageCacheSize)
	})

	t.Run("MissingFileUsesEnvironment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DISCORD_BOT_TOKEN", "env-token")

		cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "env-token", cfg.Discord.BotToken)
		assert.Equal(t, config.DefaultCommandPrefix, cfg.Discord.CommandPrefix)
		assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("MissingToken", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "log_level: info\n")

		_, err := config.LoadConfig(path)
		require.ErrorIs(t, err, config.ErrMissingBotToken)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "discord: [unclosed\n")

		_, err := config.LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML config")
	})

	t.Run("InvalidCacheSizeInEnv", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DISCORD_BOT_TOKEN", "env-token")
		t.Setenv("DISCORD_SEEN_MESSAGE_CACHE_SIZE", "lots")

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process env")
	})
}

func TestNormalize(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		require.Error(t, config.Normalize(nil))
	})

	t.Run("WhitespaceToken", func(t *testing.T) {
		cfg := &config.Config{Discord: config.DiscordConfig{BotToken: "   "}}
		require.ErrorIs(t, config.Normalize(cfg), config.ErrMissingBotToken)
	})

	t.Run("PrefixWithWhitespace", func(t *testing.T) {
		cfg := &config.Config{Discord: config.DiscordConfig{BotToken: "token", CommandPrefix: "! "}}
		require.ErrorIs(t, config.Normalize(cfg), config.ErrInvalidCommandPrefix)
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := &config.Config{Discord: config.DiscordConfig{BotToken: "token"}}
		require.NoError(t, config.Normalize(cfg))

		assert.Equal(t, "!", cfg.Discord.CommandPrefix)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Zero(t, cfg.Discord.SeenMessageCacheSize)
	})
}
