// Package clock supplies "today" to the rest of the household tracker.
// Dates are always resolved in a configured location so that a task due
// "today" does not flip at UTC midnight.
package clock

import (
	"time"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (s SystemClock) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// Today returns the calendar date the clock currently reads.
func Today(c Clock) models.Date {
	return models.DateOf(c.Now())
}

// LoadLocation resolves a zone name. "" and "Local" give time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
