package bot

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-discord-pingbot/internal/commands"
)

// Session is the part of the Discord gateway session the bot depends on.
// *session.Session satisfies it.
type Session interface {
	commands.MessageSender
	AddHandler(handler interface{}) (rm func())
	Open(ctx context.Context) error
	// Wait blocks until the gateway exits, either through Close or after
	// an error it cannot recover from.
	Wait(ctx context.Context) error
	Close() error
}

// Bot represents the Discord bot.
type Bot struct {
	session    Session
	cmdManager *commands.CommandManager
	seen       *SeenMessages
	shutdowner fx.Shutdowner
	logger     *zap.Logger

	mu        sync.Mutex
	removers  []func()
	stopping  chan struct{}
	watchDone chan struct{}
	readyOnce sync.Once
}

// NewBotParameters holds dependencies for NewBot.
type NewBotParameters struct {
	fx.In

	Session    Session
	CmdManager *commands.CommandManager
	Seen       *SeenMessages `optional:"true"`
	Shutdowner fx.Shutdowner `optional:"true"`
	Logger     *zap.Logger
}

// NewBot creates and initializes a new Bot.
// Handlers are not registered until Start is called.
func NewBot(params NewBotParameters) (*Bot, error) {
	if params.Session == nil {
		return nil, ErrNilSession
	}
	if params.CmdManager == nil {
		return nil, ErrNilCommandManager
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seen := params.Seen
	if seen == nil {
		seen = NewSeenMessages(DefaultSeenMessageCacheSize)
	}

	return &Bot{
		session:    params.Session,
		cmdManager: params.CmdManager,
		seen:       seen,
		shutdowner: params.Shutdowner,
		logger:     logger.Named("bot"),
	}, nil
}

// Start registers the gateway handlers and opens the Discord session.
// An authentication or connection failure is returned as is; there is no retry.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.removers != nil {
		return ErrAlreadyStarted
	}

	b.removers = []func(){
		b.session.AddHandler(b.onReady),
		b.session.AddHandler(b.onMessageCreate),
	}

	b.logger.Info("Opening Discord session...")
	if err := b.session.Open(ctx); err != nil {
		b.removeHandlers()

		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.logger.Info("Discord session opened")

	b.stopping = make(chan struct{})
	b.watchDone = make(chan struct{})
	go b.watchGateway(b.stopping, b.watchDone)

	return nil
}

// Stop removes the gateway handlers and closes the Discord session.
// Stopping a bot that is not running is a no-op.
func (b *Bot) Stop(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.removers == nil {
		return nil
	}
	b.removeHandlers()
	close(b.stopping)

	b.logger.Info("Closing Discord session...")
	err := b.session.Close()

	select {
	case <-b.watchDone:
	case <-ctx.Done():
		b.logger.Warn("Gateway watcher did not exit before shutdown deadline")
	}
	b.stopping, b.watchDone = nil, nil

	if err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	b.logger.Info("Discord session closed")

	return nil
}

// watchGateway waits for the gateway to exit. Unless the exit was caused by
// Stop, the connection is gone for good and the application is asked to shut
// down with a non-zero exit code.
func (b *Bot) watchGateway(stopping <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	err := b.session.Wait(context.Background())

	select {
	case <-stopping:
		return
	default:
	}

	b.logger.Error("Discord gateway closed unexpectedly", zap.Error(err))
	if b.shutdowner == nil {
		return
	}
	if err := b.shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
		b.logger.Error("Failed to request application shutdown", zap.Error(err))
	}
}

// removeHandlers must be called with b.mu held.
func (b *Bot) removeHandlers() {
	for _, rm := range b.removers {
		rm()
	}
	b.removers = nil
}
