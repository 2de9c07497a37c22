package bot

import "errors"

var (
	// ErrNilSession is returned by NewBot when no session is provided.
	ErrNilSession = errors.New("session provided to NewBot is nil")
	// ErrNilCommandManager is returned by NewBot when no command manager is provided.
	ErrNilCommandManager = errors.New("command manager provided to NewBot is nil")
	// ErrAlreadyStarted is returned by Start when the bot is already running.
	ErrAlreadyStarted = errors.New("bot is already started")
)
