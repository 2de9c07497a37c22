// Package commands provides command infrastructure and Fx modules.
package commands

import (
	"go.uber.org/fx"

	"github.com/Raikerian/go-discord-pingbot/internal/config"
)

// Module provides command-related dependencies.
var Module = fx.Module("commands",
	fx.Provide(
		NewCommandManager,
		fx.Annotate(
			ProvideCommandPrefix,
			fx.ResultTags(`name:"commandPrefix"`),
		),
		fx.Annotate(
			NewPingCommand,
			fx.ResultTags(`group:"commands"`),
		),
	),
)

// ProvideCommandPrefix extracts the command prefix from config.
func ProvideCommandPrefix(cfg *config.Config) string {
	return cfg.Discord.CommandPrefix
}
