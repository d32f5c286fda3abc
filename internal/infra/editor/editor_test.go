package editor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/leanwork/lean/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript writes an executable shell script acting as an editor.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	path := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700)) //nolint:gosec // test script must be executable
	return path
}

func TestNew_Blank(t *testing.T) {
	_, err := New("   ")
	assert.ErrorIs(t, err, domain.ErrEditorNotSet)
}

func TestNew_SplitsArguments(t *testing.T) {
	e, err := New("code --wait  --new-window")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "--new-window"}, e.Command())
}

func TestFromEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		_, err := FromEnv()
		assert.ErrorIs(t, err, domain.ErrEditorNotSet)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvVar, "nano")
		e, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"nano"}, e.Command())
	})
}

func TestEditor_Edit_RunsOnFile(t *testing.T) {
	script := writeScript(t, `echo "title: edited" > "$1"`)
	target := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(target, []byte("title: ''\n"), 0o600))

	e, err := New(script)
	require.NoError(t, err)
	var out bytes.Buffer
	e.WithIO(bytes.NewReader(nil), &out, &out)

	require.NoError(t, e.Edit(context.Background(), target))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "title: edited\n", string(content))
}

func TestEditor_Edit_PassesFixedArgsFirst(t *testing.T) {
	script := writeScript(t, `echo "$1 $2" > "$2.args"`)
	target := filepath.Join(t.TempDir(), "draft.yaml")

	e, err := New(script + " --wait")
	require.NoError(t, err)
	e.WithIO(bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, e.Edit(context.Background(), target))

	content, err := os.ReadFile(target + ".args")
	require.NoError(t, err)
	assert.Equal(t, "--wait "+target+"\n", string(content))
}

func TestEditor_Edit_NonZeroExit(t *testing.T) {
	script := writeScript(t, "exit 3")

	e, err := New(script)
	require.NoError(t, err)
	e.WithIO(bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})

	err = e.Edit(context.Background(), filepath.Join(t.TempDir(), "draft.yaml"))

	assert.ErrorIs(t, err, domain.ErrEditorFailed)
}

func TestEditor_Edit_MissingProgram(t *testing.T) {
	e, err := New("nonexistent-editor-xyz")
	require.NoError(t, err)

	err = e.Edit(context.Background(), filepath.Join(t.TempDir(), "draft.yaml"))

	assert.ErrorIs(t, err, domain.ErrEditorFailed)
}
