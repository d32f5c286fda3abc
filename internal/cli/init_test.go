package cli

import (
	"testing"

	"github.com/leanwork/lean/internal/domain"
	"github.com/leanwork/lean/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand_WithDir(t *testing.T) {
	// Setup
	container := newTestContainer(&testutil.MockLocator{}, testutil.NewMockTaskRepository())
	initializer := &testutil.MockInitializer{}
	container.Initializer = initializer

	// Execute
	out, err := execute(newInitCommand(container), "/tmp/plans")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Initialized workspace in /tmp/plans\n", out)
	assert.Equal(t, []string{"/tmp/plans"}, initializer.Targets)
}

func TestInitCommand_DefaultsToCurrentDir(t *testing.T) {
	container := newTestContainer(&testutil.MockLocator{}, testutil.NewMockTaskRepository())
	initializer := &testutil.MockInitializer{}
	container.Initializer = initializer

	_, err := execute(newInitCommand(container))

	require.NoError(t, err)
	assert.Equal(t, []string{"."}, initializer.Targets)
}

func TestInitCommand_TooManyArgs(t *testing.T) {
	container := newTestContainer(&testutil.MockLocator{}, testutil.NewMockTaskRepository())
	initializer := &testutil.MockInitializer{}
	container.Initializer = initializer

	_, err := execute(newInitCommand(container), "a", "b")

	assert.Error(t, err)
	assert.Empty(t, initializer.Targets)
}

func TestInitCommand_Error(t *testing.T) {
	container := newTestContainer(&testutil.MockLocator{}, testutil.NewMockTaskRepository())
	container.Initializer = &testutil.MockInitializer{Err: domain.ErrNotEmpty}

	_, err := execute(newInitCommand(container), "/tmp/plans")

	assert.ErrorIs(t, err, domain.ErrNotEmpty)
}
