// Package editor runs the user's external editor.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/leanwork/lean/internal/domain"
)

// EnvVar names the environment variable holding the editor command.
const EnvVar = "EDITOR"

// Ensure Editor implements domain.Editor.
var _ domain.Editor = (*Editor)(nil)

// Editor runs an editor command as a foreground subprocess attached to the terminal.
// Fields are ordered to minimize memory padding.
type Editor struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	program string
	args    []string
}

// New creates an Editor for command, e.g. "vim" or "code --wait".
// The command is split on whitespace; the file path is appended as the last argument.
func New(command string) (*Editor, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, domain.ErrEditorNotSet
	}
	return &Editor{
		program: fields[0],
		args:    fields[1:],
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

// FromEnv creates an Editor from the EDITOR environment variable.
// An unset or blank variable is ErrEditorNotSet.
func FromEnv() (*Editor, error) {
	return New(os.Getenv(EnvVar))
}

// WithIO replaces the terminal streams connected to the editor.
func (e *Editor) WithIO(stdin io.Reader, stdout, stderr io.Writer) *Editor {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Command returns the editor program and its fixed arguments.
func (e *Editor) Command() []string {
	return append([]string{e.program}, e.args...)
}

// Edit opens path in the editor and blocks until the editor exits.
// There is no timeout: a human is editing. A spawn failure or non-zero exit
// is returned as ErrEditorFailed.
func (e *Editor) Edit(ctx context.Context, path string) error {
	args := append(append([]string{}, e.args...), path)
	// #nosec G204 - the editor command is chosen by the user running lean
	cmd := exec.CommandContext(ctx, e.program, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEditorFailed, e.program, err)
	}
	return nil
}
