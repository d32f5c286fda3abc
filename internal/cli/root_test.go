package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_NoArgs_ShowsHelp(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	out, err := execute(root)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "Task Management:")
	assert.Contains(t, out, "tasks")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")

	out, err := execute(root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_UnknownCommand(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	_, err := execute(root, "frobnicate")

	assert.Error(t, err)
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	for _, path := range [][]string{
		{"init"},
		{"config"},
		{"tasks", "add"},
		{"tasks", "list"},
		{"tasks", "show"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
