package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/gateway"
)

// PingReply is the fixed text sent back for the ping command.
const PingReply = "Pong!"

// PingCommand is a simple command that responds with "Pong!".
type PingCommand struct{}

// NewPingCommand creates a new PingCommand instance.
// This constructor will be used by Fx.
func NewPingCommand() Command {
	return &PingCommand{}
}

// Name returns the name of the command.
func (c *PingCommand) Name() string {
	return "ping"
}

// Description returns the description of the command.
func (c *PingCommand) Description() string {
	return "Responds with Pong!"
}

// Execute replies in the channel the command was sent from.
func (c *PingCommand) Execute(ctx context.Context, s MessageSender, e *gateway.MessageCreateEvent) error {
	_, err := s.SendMessage(e.ChannelID, PingReply)

	return err
}
