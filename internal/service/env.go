package service

import (
	"context"
	"log/slog"

	"github.com/SchwenderOne/roscher4gpt5/internal/clock"
	"github.com/SchwenderOne/roscher4gpt5/internal/identity"
	"github.com/SchwenderOne/roscher4gpt5/internal/metrics"
	"github.com/SchwenderOne/roscher4gpt5/internal/middleware"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/recurrence"
)

// Env bundles the collaborators shared by the household services.
type Env struct {
	Directory *identity.Directory
	Clock     clock.Clock
	// WindowDays is the default upcoming window for schedules. Nil means
	// recurrence.DefaultWindowDays; a pointer to 0 limits upcoming to today.
	WindowDays *int
	// Metrics may be nil.
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func (e Env) withDefaults() Env {
	if e.Clock == nil {
		e.Clock = clock.SystemClock{}
	}
	if e.WindowDays == nil || *e.WindowDays < 0 {
		days := recurrence.DefaultWindowDays
		e.WindowDays = &days
	}
	if e.Logger == nil {
		e.Logger = slog.Default()
	}
	return e
}

func (e Env) window() int {
	if e.WindowDays == nil {
		return recurrence.DefaultWindowDays
	}
	return *e.WindowDays
}

func (e Env) today() models.Date {
	return clock.Today(e.Clock)
}

// caller returns the member name of the authenticated user, falling back to
// the first household member for anonymous calls.
func (e Env) caller(ctx context.Context, members []string) string {
	if name := middleware.GetDisplayName(ctx); name != "" {
		return name
	}
	if len(members) > 0 {
		return members[0]
	}
	return ""
}
