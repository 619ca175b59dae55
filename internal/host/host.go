// Package host defines the editor-side collaborators the plugin runs
// against and file-backed implementations of them.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

//go:generate mockgen -destination=mocks/mock_host.go -package=mocks . Document,Workspace,Storage

var (
	// ErrUnknownCommand is returned when invoking an unregistered command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandDisabled is returned when a command's check fails.
	ErrCommandDisabled = errors.New("command not available")
)

// Position is a cursor location in a document. Both fields are zero-based.
type Position struct {
	Line int
	Ch   int
}

// Document is an open text document.
type Document interface {
	InsertAt(pos Position, text string) error
}

// Workspace knows which document is active.
type Workspace interface {
	ActiveDocument() (Document, bool)
}

// Storage writes binary files into the user's vault.
type Storage interface {
	WriteBinary(ctx context.Context, path string, data []byte) error
}

// Command is a user-invokable action.
type Command struct {
	ID   string
	Name string
	// Check reports whether the command can run right now. Nil means always.
	Check func() bool
	Run   func(ctx context.Context) error
}

// Registry accepts command registrations.
type Registry interface {
	RegisterCommand(cmd Command)
}

// Commands is an in-process command registry.
type Commands struct {
	mu   sync.RWMutex
	cmds map[string]Command
	ids  []string
}

// NewCommands creates an empty registry.
func NewCommands() *Commands {
	return &Commands{cmds: make(map[string]Command)}
}

func (c *Commands) RegisterCommand(cmd Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.cmds[cmd.ID]; !ok {
		c.ids = append(c.ids, cmd.ID)
	}
	c.cmds[cmd.ID] = cmd
}

// List returns the registered commands in registration order.
func (c *Commands) List() []Command {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Command, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.cmds[id])
	}
	return out
}

// Invoke runs the command with the given ID if its check passes.
func (c *Commands) Invoke(ctx context.Context, id string) error {
	c.mu.RLock()
	cmd, ok := c.cmds[id]
	c.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	if cmd.Check != nil && !cmd.Check() {
		return fmt.Errorf("%w: %s", ErrCommandDisabled, cmd.Name)
	}
	return cmd.Run(ctx)
}
