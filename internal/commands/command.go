package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

// MessageSender is the part of the Discord session a command needs to reply.
// *session.Session satisfies it through its embedded *api.Client.
type MessageSender interface {
	SendMessage(channelID discord.ChannelID, content string, embeds ...discord.Embed) (*discord.Message, error)
}

// Command defines the interface for prefixed text commands.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, s MessageSender, e *gateway.MessageCreateEvent) error
}
