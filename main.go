// Package main provides the entry point for the Discord ping bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Raikerian/go-discord-pingbot/internal/app"
	"github.com/Raikerian/go-discord-pingbot/internal/bot"
	"github.com/Raikerian/go-discord-pingbot/internal/commands"
	"github.com/Raikerian/go-discord-pingbot/internal/config"
	"github.com/Raikerian/go-discord-pingbot/internal/discord"
	"github.com/Raikerian/go-discord-pingbot/internal/infrastructure"
)

// AppVersion is the version of the application, set at build time with
// -ldflags "-X main.AppVersion=v1.2.3".
var AppVersion = "dev"

// shutdownTimeout bounds how long the session may take to close.
const shutdownTimeout = 30 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "pingbot",
		Short:        "Discord bot that answers !ping with Pong!",
		Long:         "pingbot connects to Discord with the configured bot token and replies \"Pong!\" to every \"!ping\" message.",
		Version:      AppVersion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file (optional)")

	return cmd
}

// modules returns every module of the application, in dependency order.
func modules(configPath string) []fx.Option {
	return []fx.Option{
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		discord.Module,

		// Application modules
		commands.Module,
		bot.Module,

		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(infrastructure.NewFxLoggerAdapter),
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(modules(configPath)...)
	if err := application.Err(); err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	startCtx, cancelStart := context.WithTimeout(ctx, fx.DefaultTimeout)
	err := application.Start(startCtx)
	cancelStart()
	if err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	exitCode := awaitShutdown(ctx, application.Wait())

	// Fx relays the same signals; resetting them lets a second Ctrl-C kill
	// the process instead of waiting out the graceful stop.
	stop()
	signal.Reset(syscall.SIGINT, syscall.SIGTERM)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelStop()

	if err := application.Stop(stopCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}

	if exitCode != 0 {
		return fmt.Errorf("discord connection terminated (exit code %d)", exitCode)
	}

	return nil
}

// awaitShutdown blocks until ctx is done or the application is asked to shut
// down, and returns the requested exit code.
func awaitShutdown(ctx context.Context, shutdown <-chan fx.ShutdownSignal) int {
	select {
	case <-ctx.Done():
		return 0
	case sig := <-shutdown:
		return sig.ExitCode
	}
}
