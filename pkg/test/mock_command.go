// Package test provides testify mocks shared by the package tests.
package test

import (
	"context"

	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/stretchr/testify/mock"

	"github.com/Raikerian/go-discord-pingbot/internal/commands"
)

// MockCommand is a mock implementation of commands.Command.
type MockCommand struct {
	mock.Mock
}

var _ commands.Command = (*MockCommand)(nil)

// NewMockCommand creates a MockCommand whose expectations are asserted on test cleanup.
func NewMockCommand(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommand {
	m := &MockCommand{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Name provides a mock function.
func (m *MockCommand) Name() string {
	return m.Called().String(0)
}

// Description provides a mock function.
func (m *MockCommand) Description() string {
	return m.Called().String(0)
}

// Execute provides a mock function.
func (m *MockCommand) Execute(ctx context.Context, s commands.MessageSender, e *gateway.MessageCreateEvent) error {
	return m.Called(ctx, s, e).Error(0)
}
