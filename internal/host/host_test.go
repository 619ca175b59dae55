package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_Invoke(t *testing.T) {
	cmds := NewCommands()
	active := false
	ran := 0
	cmds.RegisterCommand(Command{
		ID:    "search-tv",
		Name:  "Generate TMDB data",
		Check: func() bool { return active },
		Run: func(context.Context) error {
			ran++
			return nil
		},
	})

	err := cmds.Invoke(context.Background(), "search-tv")
	assert.ErrorIs(t, err, ErrCommandDisabled)
	assert.Zero(t, ran)

	active = true
	require.NoError(t, cmds.Invoke(context.Background(), "search-tv"))
	assert.Equal(t, 1, ran)

	err = cmds.Invoke(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommands_RunErrorPropagates(t *testing.T) {
	cmds := NewCommands()
	boom := errors.New("boom")
	cmds.RegisterCommand(Command{ID: "x", Run: func(context.Context) error { return boom }})

	assert.ErrorIs(t, cmds.Invoke(context.Background(), "x"), boom)
}

func TestCommands_ListKeepsOrder(t *testing.T) {
	cmds := NewCommands()
	cmds.RegisterCommand(Command{ID: "b"})
	cmds.RegisterCommand(Command{ID: "a"})
	cmds.RegisterCommand(Command{ID: "b", Name: "replaced"})

	list := cmds.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "replaced", list[0].Name)
	assert.Equal(t, "a", list[1].ID)
}
