package models

import (
	"errors"
	"fmt"
	"strings"
)

// TaskKind tells which household domain a recurring task belongs to.
type TaskKind string

const (
	// KindCleaning is a room that is cleaned on a rotation between members.
	KindCleaning TaskKind = "cleaning"
	// KindPlants is a plant that is watered on a fixed interval. Plants have no assignee.
	KindPlants TaskKind = "plants"
)

var (
	ErrInvalidFrequency = errors.New("frequency must be at least 1 day")
	ErrInvalidKind      = errors.New("task kind must be cleaning or plants")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrMissingDate      = errors.New("date is required")
)

// ParseTaskKind accepts the kind names case-insensitively.
func ParseTaskKind(s string) (TaskKind, error) {
	switch TaskKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCleaning:
		return KindCleaning, nil
	case KindPlants:
		return KindPlants, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// RecurringTask is a chore or plant-care action with a fixed repeat interval.
// It generalizes the cleaning "room" and the watering "plant".
type RecurringTask struct {
	// ID is the unique identifier for the task (UUID format).
	ID string

	Kind TaskKind

	// Name is the room or plant name (e.g. "Bathroom", "Monstera").
	Name string

	// Detail is the room area for cleaning tasks and the species for plants.
	Detail string

	Notes string

	// LastCompleted is the calendar date the task was last performed.
	LastCompleted Date

	// FrequencyDays is the number of days between completions (>= 1).
	FrequencyDays int

	// Assignee is the member who does the task next. Cleaning only.
	Assignee string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// Rotates reports whether completing the task hands it to the next member.
func (t RecurringTask) Rotates() bool {
	return t.Kind == KindCleaning
}

// Validate checks the invariants a task must hold before it is stored.
func (t RecurringTask) Validate() error {
	if _, err := ParseTaskKind(string(t.Kind)); err != nil {
		return err
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.FrequencyDays < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrequency, t.FrequencyDays)
	}
	if t.LastCompleted.IsZero() {
		return ErrMissingDate
	}
	return nil
}
