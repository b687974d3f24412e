package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/SchwenderOne/roscher4gpt5/internal/clock"
	"github.com/SchwenderOne/roscher4gpt5/internal/identity"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage/sqlite"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// household bundles what every data command needs.
type household struct {
	store   *sqlite.SQLiteStore
	members []string
	today   models.Date
}

// openHousehold opens (and migrates) the database and resolves the members
// and today's date.
func openHousehold(ctx context.Context) (*household, error) {
	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	members, err := identity.NewDirectory(store, cfg.Members).Names(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &household{
		store:   store,
		members: members,
		today:   clock.Today(clock.SystemClock{Location: loc}),
	}, nil
}

func (h *household) Close() error {
	return h.store.Close()
}
