package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/leanwork/lean/internal/domain"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Column widths of the task list.
const (
	statusWidth   = 11 // len("in progress")
	doneWidth     = 4  // len("100%")
	maxTitleWidth = 48
)

// highlightStyle is the chroma style used for `tasks show` on a terminal.
const highlightStyle = "catppuccin-mocha"

// Status colors of the task list.
var (
	colorFinished   = lipgloss.Color("#a6e3a1") // Green
	colorPaused     = lipgloss.Color("#f9e2af") // Yellow
	colorInProgress = lipgloss.Color("#89b4fa") // Blue
	colorUnstarted  = lipgloss.Color("#6c7086") // Gray
	colorHeader     = lipgloss.Color("#cdd6f4")
)

func statusColor(s domain.TaskState) lipgloss.Color {
	switch s {
	case domain.TaskStateFinished:
		return colorFinished
	case domain.TaskStatePaused:
		return colorPaused
	case domain.TaskStateInProgress:
		return colorInProgress
	default:
		return colorUnstarted
	}
}

// printTaskList writes the task table.
// Colors are only emitted when w supports them.
func printTaskList(w io.Writer, tasks []*domain.StoredTask) {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(colorHeader)

	titleWidth := len("TITLE")
	for _, st := range tasks {
		titleWidth = max(titleWidth, runewidth.StringWidth(truncateTitle(st.Task.Title)))
	}

	_, _ = fmt.Fprintln(w, header.Render(
		pad("STATUS", statusWidth)+"  "+pad("DONE", doneWidth)+"  "+pad("TITLE", titleWidth)+"  ID",
	))

	for _, st := range tasks {
		state := st.Task.State()
		status := r.NewStyle().Foreground(statusColor(state)).Render(pad(state.Display(), statusWidth))
		done := fmt.Sprintf("%*d%%", doneWidth-1, st.Task.Percent())
		if state == domain.TaskStateFinished {
			done = pad("-", doneWidth)
		}
		title := pad(truncateTitle(st.Task.Title), titleWidth)
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n", status, done, title, st.ID)
	}
}

// truncateTitle normalizes a title and cuts it to maxTitleWidth display cells.
func truncateTitle(title string) string {
	return runewidth.Truncate(domain.Normalize(title), maxTitleWidth, "…")
}

// pad fills s with spaces up to width display cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// printTask writes one task record as YAML, preceded by its ID as a comment.
// On a terminal the YAML is syntax highlighted.
func printTask(w io.Writer, st *domain.StoredTask) error {
	data, err := st.Task.MarshalYAMLDocument()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "# %s\n", st.ID)
	if !isTerminal(w) {
		_, err = w.Write(data)
		return err
	}

	var buf strings.Builder
	if err := quick.Highlight(&buf, string(data), "yaml", "terminal256", highlightStyle); err != nil {
		_, err = w.Write(data)
		return err
	}
	_, err = io.WriteString(w, buf.String())
	return err
}

// printTasks writes several task records as a multi-document YAML stream.
func printTasks(w io.Writer, tasks []*domain.StoredTask) error {
	for i, st := range tasks {
		if i > 0 {
			_, _ = fmt.Fprintln(w, "---")
		}
		if err := printTask(w, st); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
