// Package domain contains core business entities and interfaces.
package domain

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// Task is a single task record, stored as one YAML file below tasks/.
//
//nolint:govet // Field order is the YAML key order of the record file
type Task struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Occurrence  Occurrence  `yaml:"occurrence"`
	Effort      []float64   `yaml:"effort"`              // Estimates, in order of refinement
	Done        float64     `yaml:"done"`                // Fraction in [0, 1]
	CreatedAt   time.Time   `yaml:"created_at"`          // Whole seconds
	DueAt       *time.Time  `yaml:"due_at,omitempty"`
	StartedAt   *time.Time  `yaml:"started_at,omitempty"`
	PausedAt    []time.Time `yaml:"paused_at,omitempty"` // A task may be paused repeatedly
	ResumedAt   []time.Time `yaml:"resumed_at,omitempty"`
	FinishedAt  *time.Time  `yaml:"finished_at,omitempty"`
	CancelledAt *time.Time  `yaml:"cancelled_at,omitempty"`
	People      []Person    `yaml:"people,omitempty"`
}

// Person is a participant of a task.
type Person struct {
	Name string `yaml:"name"`
}

// ValidationPolicy selects which task fields are mandatory besides the title.
type ValidationPolicy struct {
	RequireDescription bool // Legacy rule: an empty description invalidates the task
}

// NewDefaultTask returns the blank task offered to the user when authoring starts.
func NewDefaultTask(now time.Time) *Task {
	return &Task{
		Occurrence: OneTime(),
		Effort:     []float64{},
		CreatedAt:  now.Truncate(time.Second),
	}
}

// Slug returns the slug of the normalized title.
func (t *Task) Slug() string {
	return Slug(Normalize(t.Title))
}

// Validate reports whether the task may be published.
// The title must reduce to a non-empty slug.
func (t *Task) Validate(policy ValidationPolicy) error {
	if t.Slug() == "" {
		return ErrEmptyTitle
	}
	if policy.RequireDescription && Normalize(t.Description) == "" {
		return ErrEmptyDescription
	}
	return t.Occurrence.Validate()
}

// IsFinished returns true if the task has a finish time.
func (t *Task) IsFinished() bool {
	return t.FinishedAt != nil
}

// IsPaused returns true if the task was ever paused.
func (t *Task) IsPaused() bool {
	return len(t.PausedAt) > 0
}

// IsStarted returns true if the task has a start time.
func (t *Task) IsStarted() bool {
	return t.StartedAt != nil
}

// Percent returns floor(done * 100), clamped to 0..100.
func (t *Task) Percent() int {
	// The epsilon keeps values like 0.29 from flooring to 28.
	p := int(math.Floor(t.Done*100 + 1e-9))
	if p >= 100 && t.Done < 1 {
		return 99
	}
	return min(max(p, 0), 100)
}

// ParseTask decodes a task record.
// Structural problems (bad YAML, missing created_at, malformed occurrence) are
// reported as ErrInvalidTask; the title is checked by Validate.
func ParseTask(data []byte) (*Task, error) {
	var task Task
	if err := yaml.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}
	if task.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: created_at is required", ErrInvalidTask)
	}
	if err := task.Occurrence.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}
	if task.Effort == nil {
		task.Effort = []float64{}
	}
	return &task, nil
}

// MarshalYAMLDocument encodes the task record with two-space indentation.
func (t *Task) MarshalYAMLDocument() ([]byte, error) {
	if t == nil {
		return nil, errors.New("task is nil")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encode task: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode task: %w", err)
	}
	return buf.Bytes(), nil
}
