package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCommandPrefix is used when no command prefix is configured.
	DefaultCommandPrefix = "!"
	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"
)

var (
	// ErrMissingBotToken is returned when neither the config file nor the environment provide a bot token.
	ErrMissingBotToken = errors.New("discord bot token is not set in config or DISCORD_BOT_TOKEN")
	// ErrInvalidCommandPrefix is returned when the configured command prefix contains whitespace.
	ErrInvalidCommandPrefix = errors.New("discord command prefix must not contain whitespace")
)

// DiscordConfig stores Discord specific configurations.
type DiscordConfig struct {
	BotToken             string `yaml:"bot_token" split_words:"true"`
	CommandPrefix        string `yaml:"command_prefix" split_words:"true"`
	SeenMessageCacheSize int    `yaml:"seen_message_cache_size" split_words:"true"`
}

// Config stores the application configuration.
type Config struct {
	Discord  DiscordConfig `yaml:"discord"`
	LogLevel string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// LoadConfig loads the configuration from the given file path, then applies
// variables from a local .env file and the process environment on top of it.
// A missing config file is not an error; the environment alone may configure the bot.
func LoadConfig(filePath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	// .env is optional and never overrides variables already set in the environment.
	_ = godotenv.Load()

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Normalize validates required fields and fills in defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}

	cfg.Discord.BotToken = strings.TrimSpace(cfg.Discord.BotToken)
	if cfg.Discord.BotToken == "" {
		return ErrMissingBotToken
	}

	if cfg.Discord.CommandPrefix == "" {
		cfg.Discord.CommandPrefix = DefaultCommandPrefix
	}
	if strings.IndexFunc(cfg.Discord.CommandPrefix, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidCommandPrefix, cfg.Discord.CommandPrefix)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return nil
}
