// Package identity resolves who belongs to the household.
//
// Registered accounts are the members, in registration order. While fewer
// people have registered than there are configured default names, the unused
// defaults fill the remaining slots so rotation and even splits still involve
// the whole household.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// UserLister is the subset of storage the directory needs.
type UserLister interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Directory lists household members.
type Directory struct {
	users    UserLister
	fallback []string
}

// NewDirectory builds a directory over users with fallback names for slots
// nobody has registered into yet.
func NewDirectory(users UserLister, fallback []string) *Directory {
	cleaned := make([]string, 0, len(fallback))
	for _, name := range fallback {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return &Directory{users: users, fallback: cleaned}
}

// Members returns the household in a stable order. Users sharing a display
// name (ignoring case) are listed once. The list holds at least as many
// members as there are fallback names.
func (d *Directory) Members(ctx context.Context) ([]models.Member, error) {
	users, err := d.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list household members: %w", err)
	}

	var members []models.Member
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		key := models.CanonicalName(u.DisplayName)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		members = append(members, models.Member{ID: u.ID, DisplayName: strings.TrimSpace(u.DisplayName)})
	}
	for _, name := range d.fallback {
		if len(members) >= len(d.fallback) {
			break
		}
		key := models.CanonicalName(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		members = append(members, models.Member{ID: name, DisplayName: name})
	}
	return members, nil
}

// Names returns just the member display names.
func (d *Directory) Names(ctx context.Context) ([]string, error) {
	members, err := d.Members(ctx)
	if err != nil {
		return nil, err
	}
	return models.MemberNames(members), nil
}
