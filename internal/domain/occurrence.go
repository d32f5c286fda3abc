package domain

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Weekday is a day of the week serialized as its three-letter English abbreviation.
type Weekday time.Weekday

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the abbreviation, e.g. "Mon".
func (d Weekday) String() string {
	if d < 0 || int(d) >= len(weekdayNames) {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday accepts abbreviations and full English names, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := time.Sunday; i <= time.Saturday; i++ {
		if s == strings.ToLower(weekdayNames[i]) || s == strings.ToLower(i.String()) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// MarshalYAML implements yaml.Marshaler.
func (d Weekday) MarshalYAML() (any, error) {
	if d < 0 || int(d) >= len(weekdayNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(d))
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Weekday) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RecurrenceKind discriminates the Recurrence variants.
type RecurrenceKind string

const (
	RecurrenceDaily   RecurrenceKind = "daily"
	RecurrenceWeekly  RecurrenceKind = "weekly"
	RecurrenceMonthly RecurrenceKind = "monthly"
)

// Recurrence is the repetition pattern of a periodic task.
// Day is used by weekly and monthly recurrences, Week only by monthly ones.
//
// YAML form (externally tagged):
//
//	daily
//	weekly: Mon
//	monthly: {week: 3, day: Fri}
type Recurrence struct {
	Kind RecurrenceKind
	Day  Weekday
	Week int
}

// Daily returns a daily recurrence.
func Daily() Recurrence {
	return Recurrence{Kind: RecurrenceDaily}
}

// Weekly returns a recurrence on the given weekday.
func Weekly(day Weekday) Recurrence {
	return Recurrence{Kind: RecurrenceWeekly, Day: day}
}

// Monthly returns a recurrence on the given weekday of the given week of the month.
func Monthly(week int, day Weekday) Recurrence {
	return Recurrence{Kind: RecurrenceMonthly, Week: week, Day: day}
}

// Validate checks that the recurrence is one of the known variants with sane values.
func (r Recurrence) Validate() error {
	switch r.Kind {
	case RecurrenceDaily, RecurrenceWeekly:
		return nil
	case RecurrenceMonthly:
		if r.Week < 1 || r.Week > 5 {
			return fmt.Errorf("%w: week must be between 1 and 5, got %d", ErrInvalidRecurrence, r.Week)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRecurrence, r.Kind)
	}
}

type monthlyYAML struct {
	Week int     `yaml:"week"`
	Day  Weekday `yaml:"day"`
}

// MarshalYAML implements yaml.Marshaler.
func (r Recurrence) MarshalYAML() (any, error) {
	switch r.Kind {
	case RecurrenceDaily:
		return string(RecurrenceDaily), nil
	case RecurrenceWeekly:
		return map[string]Weekday{string(RecurrenceWeekly): r.Day}, nil
	case RecurrenceMonthly:
		return map[string]monthlyYAML{string(RecurrenceMonthly): {Week: r.Week, Day: r.Day}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRecurrence, r.Kind)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Recurrence) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if RecurrenceKind(node.Value) != RecurrenceDaily {
			return fmt.Errorf("%w: line %d: unknown recurrence %q", ErrInvalidRecurrence, node.Line, node.Value)
		}
		*r = Daily()
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("%w: line %d: expected exactly one variant", ErrInvalidRecurrence, node.Line)
		}
		key, value := node.Content[0].Value, node.Content[1]
		switch RecurrenceKind(key) {
		case RecurrenceWeekly:
			var day Weekday
			if err := value.Decode(&day); err != nil {
				return err
			}
			*r = Weekly(day)
			return nil
		case RecurrenceMonthly:
			var m monthlyYAML
			if err := value.Decode(&m); err != nil {
				return err
			}
			*r = Monthly(m.Week, m.Day)
			return r.Validate()
		case RecurrenceDaily:
			*r = Daily()
			return nil
		default:
			return fmt.Errorf("%w: line %d: unknown recurrence %q", ErrInvalidRecurrence, node.Line, key)
		}
	default:
		return fmt.Errorf("%w: line %d: unexpected YAML node", ErrInvalidRecurrence, node.Line)
	}
}

// String returns a human-readable description, e.g. "monthly (week 3, Fri)".
func (r Recurrence) String() string {
	switch r.Kind {
	case RecurrenceDaily:
		return "daily"
	case RecurrenceWeekly:
		return fmt.Sprintf("weekly (%s)", r.Day)
	case RecurrenceMonthly:
		return fmt.Sprintf("monthly (week %d, %s)", r.Week, r.Day)
	default:
		return string(r.Kind)
	}
}

// OccurrenceKind discriminates one-time from periodic tasks.
type OccurrenceKind string

const (
	OccurrenceOneTime  OccurrenceKind = "OneTime"
	OccurrencePeriodic OccurrenceKind = "Periodic"
)

// Occurrence is a tagged union: OneTime, or Periodic with a recurrence.
// Recurrence is nil for one-time tasks.
//
//nolint:govet // Field order is the YAML key order: the discriminator comes first
type Occurrence struct {
	Type       OccurrenceKind `yaml:"type"`
	Recurrence *Recurrence    `yaml:"recurrence,omitempty"`
}

// OneTime returns a one-time occurrence.
func OneTime() Occurrence {
	return Occurrence{Type: OccurrenceOneTime}
}

// Periodic returns an occurrence repeating with r.
func Periodic(r Recurrence) Occurrence {
	return Occurrence{Type: OccurrencePeriodic, Recurrence: &r}
}

// Validate checks that the variant and its payload agree.
func (o Occurrence) Validate() error {
	switch o.Type {
	case OccurrenceOneTime:
		if o.Recurrence != nil {
			return fmt.Errorf("%w: one-time task cannot have a recurrence", ErrInvalidOccurrence)
		}
		return nil
	case OccurrencePeriodic:
		if o.Recurrence == nil {
			return fmt.Errorf("%w: periodic task needs a recurrence", ErrInvalidOccurrence)
		}
		return o.Recurrence.Validate()
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidOccurrence, o.Type)
	}
}

// String returns a human-readable description.
func (o Occurrence) String() string {
	switch o.Type {
	case OccurrenceOneTime:
		return "one-time"
	case OccurrencePeriodic:
		if o.Recurrence == nil {
			return "periodic"
		}
		return o.Recurrence.String()
	default:
		return string(o.Type)
	}
}
