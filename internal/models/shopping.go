package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssignedBoth marks a shopping item bought for the whole household.
const AssignedBoth = "Both"

type ItemStatus string

const (
	ItemOpen   ItemStatus = "open"
	ItemBought ItemStatus = "bought"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidItemStatus = errors.New("status must be open or bought")
)

// ShoppingItem is an entry on the shared shopping list. Long-term items are
// larger planned purchases with an optional target date.
type ShoppingItem struct {
	ID       string
	Name     string
	Quantity int

	// Price is optional.
	Price *decimal.Decimal

	// Assigned is a member name or AssignedBoth.
	Assigned string

	// Split is only meaningful when Assigned is AssignedBoth.
	Split Split

	PickToday  bool
	LongTerm   bool
	TargetDate *Date
	Status     ItemStatus

	CreatedAt int64
	UpdatedAt int64
}

// Shared reports whether the item is split across the household.
func (i ShoppingItem) Shared() bool {
	return strings.EqualFold(strings.TrimSpace(i.Assigned), AssignedBoth)
}

// Validate checks the invariants a shopping item must hold before it is stored.
func (i ShoppingItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, i.Quantity)
	}
	if i.Price != nil && i.Price.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, i.Price.String())
	}
	switch i.Status {
	case ItemOpen, ItemBought:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidItemStatus, i.Status)
	}
	one := decimal.NewFromInt(1)
	for member, share := range i.Split {
		if share.IsNegative() || share.GreaterThan(one) {
			return fmt.Errorf("%w: %s has %s", ErrInvalidShare, member, share.String())
		}
	}
	return nil
}
