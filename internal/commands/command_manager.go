package commands

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CommandManager holds the registered commands and resolves message content to them.
type CommandManager struct {
	prefix   string
	commands map[string]Command
	logger   *zap.Logger
}

// CommandManagerParams holds dependencies for NewCommandManager.
type CommandManagerParams struct {
	fx.In

	Prefix   string    `name:"commandPrefix"`
	Logger   *zap.Logger
	Commands []Command `group:"commands"`
}

// NewCommandManager creates a new CommandManager.
// Nil commands are skipped; when two commands share a name the first one wins.
func NewCommandManager(params CommandManagerParams) *CommandManager {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("commands")

	cm := &CommandManager{
		prefix:   params.Prefix,
		commands: make(map[string]Command, len(params.Commands)),
		logger:   logger,
	}

	for _, cmd := range params.Commands {
		if cmd == nil {
			logger.Warn("Skipping nil command")

			continue
		}

		name := cmd.Name()
		if _, exists := cm.commands[name]; exists {
			logger.Warn("Duplicate command name, keeping the first registration", zap.String("commandName", name))

			continue
		}
		cm.commands[name] = cmd
		logger.Debug("Registered command", zap.String("trigger", cm.Trigger(name)))
	}

	logger.Info("Command manager created", zap.Int("count", len(cm.commands)), zap.String("prefix", cm.prefix))

	return cm
}

// Trigger returns the full text that invokes the named command.
func (cm *CommandManager) Trigger(name string) string {
	return cm.prefix + name
}

// GetCommand retrieves a registered command by its name.
func (cm *CommandManager) GetCommand(name string) (Command, bool) {
	cmd, ok := cm.commands[name]

	return cmd, ok
}

// Match returns the command whose trigger equals content exactly.
// Matching is case-sensitive and arguments are not accepted.
func (cm *CommandManager) Match(content string) (Command, bool) {
	if len(content) <= len(cm.prefix) || content[:len(cm.prefix)] != cm.prefix {
		return nil, false
	}

	return cm.GetCommand(content[len(cm.prefix):])
}
