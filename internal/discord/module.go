// Package discord provides Discord-related infrastructure and Fx modules.
package discord

import (
	"errors"
	"strings"

	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-discord-pingbot/internal/bot"
	"github.com/Raikerian/go-discord-pingbot/internal/config"
)

// Intents are the gateway intents the bot identifies with.
// Message content is a privileged intent and must be enabled for the application.
const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMessages |
	gateway.IntentDirectMessages |
	gateway.IntentMessageContent

// Module provides Discord-related dependencies.
var Module = fx.Module("discord",
	fx.Provide(
		NewSession,
		ProvideBotSession,
	),
)

// SessionParams holds dependencies for NewSession.
type SessionParams struct {
	fx.In
	Cfg    *config.Config
	Logger *zap.Logger
}

// SessionResult holds results from NewSession.
type SessionResult struct {
	fx.Out
	Session *session.Session
}

// NewSession creates a new Discord session.
// The session is opened and closed by the bot, not here.
func NewSession(params SessionParams) (SessionResult, error) {
	if params.Cfg.Discord.BotToken == "" {
		return SessionResult{}, errors.New("discord bot token is not set in config")
	}

	s := session.New(BotAuthorization(params.Cfg.Discord.BotToken))
	s.AddIntents(Intents)

	params.Logger.Info("Created Discord session", zap.Uint32("intents", uint32(Intents)))

	return SessionResult{Session: s}, nil
}

// ProvideBotSession exposes the arikawa session as the bot's Session.
func ProvideBotSession(s *session.Session) bot.Session {
	return s
}

// BotAuthorization returns the Authorization header value for a bot token,
// adding the "Bot " scheme when the configured token does not carry it.
func BotAuthorization(token string) string {
	if strings.HasPrefix(token, "Bot ") {
		return token
	}

	return "Bot " + token
}
