package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanwork/lean/internal/domain"
	"github.com/leanwork/lean/internal/infra/editor"
	"github.com/leanwork/lean/internal/infra/logging"
	"github.com/leanwork/lean/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStreams() Streams {
	return Streams{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}
}

func TestNew_LoadsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	path := domain.GlobalConfigPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[tasks]\nrequire_description = true\n\n[list]\nlimit = 5\n"), 0o644))

	c, err := New(testStreams())

	require.NoError(t, err)
	assert.True(t, c.Config.Tasks.RequireDescription)
	assert.Equal(t, 5, c.Config.List.Limit)
	assert.NotNil(t, c.Locator)
	assert.NotNil(t, c.Initializer)
	assert.NotNil(t, c.Tasks)
	assert.NotNil(t, c.Prompter)
	assert.Nil(t, c.Editor)
}

func TestNew_InvalidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	path := domain.GlobalConfigPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[tasks\n"), 0o644))

	_, err := New(testStreams())

	assert.Error(t, err)
}

func TestContainer_AddTaskUseCase_EditorNotSet(t *testing.T) {
	t.Setenv(editor.EnvVar, "")
	c := NewWithDeps(nil, &testutil.MockLocator{}, &testutil.MockInitializer{}, testutil.NewMockTaskRepository(), &testutil.MockClock{}, logging.Discard())

	_, err := c.AddTaskUseCase()

	assert.ErrorIs(t, err, domain.ErrEditorNotSet)
}

func TestContainer_AddTaskUseCase_FromEnv(t *testing.T) {
	t.Setenv(editor.EnvVar, "vim -n")
	c := NewWithDeps(nil, &testutil.MockLocator{}, &testutil.MockInitializer{}, testutil.NewMockTaskRepository(), &testutil.MockClock{}, logging.Discard())

	uc, err := c.AddTaskUseCase()

	require.NoError(t, err)
	assert.NotNil(t, uc)
}

func TestContainer_AddTaskUseCase_InjectedEditor(t *testing.T) {
	t.Setenv(editor.EnvVar, "")
	c := NewWithDeps(nil, &testutil.MockLocator{}, &testutil.MockInitializer{}, testutil.NewMockTaskRepository(), &testutil.MockClock{}, logging.Discard())
	c.Editor = &testutil.MockEditor{}

	uc, err := c.AddTaskUseCase()

	require.NoError(t, err)
	assert.NotNil(t, uc)
}
