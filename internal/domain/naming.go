package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TaskFileExt is the extension of published task records.
const TaskFileExt = ".yaml"

// TaskState is the lifecycle state encoded in a task file name.
type TaskState string

const (
	TaskStateFinished   TaskState = "X" // finished_at is set
	TaskStatePaused     TaskState = "S" // paused, regardless of started_at
	TaskStateInProgress TaskState = "P" // started and not paused
	TaskStateUnstarted  TaskState = "U" // none of the above
)

// State returns the lifecycle state of a task.
// The checks are ordered: a task is never in two states at once.
func (t *Task) State() TaskState {
	switch {
	case t.IsFinished():
		return TaskStateFinished
	case t.IsPaused():
		return TaskStatePaused
	case t.IsStarted():
		return TaskStateInProgress
	default:
		return TaskStateUnstarted
	}
}

// Display returns a human-readable representation of the state.
func (s TaskState) Display() string {
	switch s {
	case TaskStateFinished:
		return "finished"
	case TaskStatePaused:
		return "paused"
	case TaskStateInProgress:
		return "in progress"
	case TaskStateUnstarted:
		return "unstarted"
	default:
		return string(s)
	}
}

// StatusPrefix returns the lifecycle prefix of the task file name.
// Format: X<timestamp> for finished tasks, otherwise NNN followed by S, P or U
// where NNN is the zero-padded done percentage.
func StatusPrefix(t *Task) string {
	state := t.State()
	if state == TaskStateFinished {
		return string(state) + t.FinishedAt.Format(time.RFC3339)
	}
	return fmt.Sprintf("%03d%s", t.Percent(), state)
}

// TaskFileName returns the canonical file name of a task.
// Format: <prefix>_<slug>.yaml
func TaskFileName(t *Task) string {
	return StatusPrefix(t) + "_" + t.Slug() + TaskFileExt
}

// TaskFileInfo is a task file name split into its parts.
type TaskFileInfo struct {
	Prefix  string
	State   TaskState
	Slug    string
	Percent int // -1 for finished tasks
}

// taskFilePattern matches <NNN><S|P|U>_<slug> and X<timestamp>_<slug>.
var taskFilePattern = regexp.MustCompile(`^(?:(\d{3})([SPU])|X([^_]+))_([a-z0-9_-]*)$`)

// ParseTaskFileName splits a task file name (with or without extension) into its parts.
// Returns false if the name does not follow the naming scheme.
func ParseTaskFileName(name string) (TaskFileInfo, bool) {
	name = strings.TrimSuffix(name, TaskFileExt)
	m := taskFilePattern.FindStringSubmatch(name)
	if m == nil {
		return TaskFileInfo{}, false
	}
	if m[3] != "" {
		return TaskFileInfo{
			Prefix:  string(TaskStateFinished) + m[3],
			State:   TaskStateFinished,
			Slug:    m[4],
			Percent: -1,
		}, true
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil {
		return TaskFileInfo{}, false
	}
	return TaskFileInfo{
		Prefix:  m[1] + m[2],
		State:   TaskState(m[2]),
		Slug:    m[4],
		Percent: pct,
	}, true
}
