package test

import (
	"context"
	"reflect"
	"sync"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/mock"
)

// MockSession is a mock of the Discord gateway session used by the bot.
// Open, Close and SendMessage are testify mocks. AddHandler is not: handlers are
// recorded so that tests can deliver gateway events with Dispatch. Wait blocks
// until Close is called or a test ends the gateway with FailGateway.
type MockSession struct {
	mock.Mock

	mu       sync.Mutex
	handlers map[int]any
	nextID   int

	closeOnce  sync.Once
	closed     chan struct{}
	gatewayErr chan error
}

// NewMockSession creates a MockSession whose expectations are asserted on test cleanup.
func NewMockSession(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSession {
	m := &MockSession{
		handlers:   make(map[int]any),
		closed:     make(chan struct{}),
		gatewayErr: make(chan error, 1),
	}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// AddHandler records handler and returns a function that removes it.
func (m *MockSession) AddHandler(handler interface{}) (rm func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.handlers[id] = handler

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.handlers, id)
	}
}

// HandlerCount returns the number of currently registered handlers.
func (m *MockSession) HandlerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.handlers)
}

// Dispatch synchronously calls every registered handler whose single argument
// has the type of event, and returns how many handlers were called.
func (m *MockSession) Dispatch(event any) int {
	m.mu.Lock()
	handlers := make([]any, 0, len(m.handlers))
	for _, h := range m.handlers {
		handlers = append(handlers, h)
	}
	m.mu.Unlock()

	eventValue := reflect.ValueOf(event)
	called := 0
	for _, h := range handlers {
		fn := reflect.ValueOf(h)
		if fn.Kind() != reflect.Func || fn.Type().NumIn() != 1 || fn.Type().In(0) != eventValue.Type() {
			continue
		}
		fn.Call([]reflect.Value{eventValue})
		called++
	}

	return called
}

// Open provides a mock function.
func (m *MockSession) Open(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Close provides a mock function. It also releases any pending Wait.
func (m *MockSession) Close() error {
	m.closeOnce.Do(func() { close(m.closed) })

	return m.Called().Error(0)
}

// Wait blocks until ctx is done, Close is called, or FailGateway delivers an error.
func (m *MockSession) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-m.closed:
		return nil
	case err := <-m.gatewayErr:
		return err
	}
}

// FailGateway makes a pending or future Wait return err, as if the gateway had
// exited on an unrecoverable close code.
func (m *MockSession) FailGateway(err error) {
	m.gatewayErr <- err
}

// SendMessage provides a mock function. Embeds are not part of the recorded call.
func (m *MockSession) SendMessage(channelID discord.ChannelID, content string, embeds ...discord.Embed) (*discord.Message, error) {
	ret := m.Called(channelID, content)

	var msg *discord.Message
	if v := ret.Get(0); v != nil {
		msg = v.(*discord.Message)
	}

	return msg, ret.Error(1)
}
