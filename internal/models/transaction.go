package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TxStatus is informational; it never changes how a transaction nets.
type TxStatus string

const (
	StatusPaid      TxStatus = "paid"
	StatusDue       TxStatus = "due"
	StatusScheduled TxStatus = "scheduled"
)

// SettlementCategory is the category recorded on balance-clearing transfers.
const SettlementCategory = "Settlement"

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidShare  = errors.New("split shares must be between 0 and 1")
	ErrInvalidStatus = errors.New("status must be paid, due or scheduled")
	ErrMissingPayer  = errors.New("payer is required")

	// ErrSettlementEdit is returned when a settlement record would change.
	// Settlements can only be deleted.
	ErrSettlementEdit = errors.New("settlement records cannot be edited")
)

// ParseTxStatus accepts status names case-insensitively; empty means paid.
func ParseTxStatus(s string) (TxStatus, error) {
	switch TxStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusPaid:
		return StatusPaid, nil
	case StatusDue:
		return StatusDue, nil
	case StatusScheduled:
		return StatusScheduled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Transaction is a shared expense record, or a settlement transfer when
// IsSettlement is set. Settlements net exactly like expenses.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	Date     Date
	Category string

	// Amount is a positive value in the household currency, cent precision.
	Amount decimal.Decimal

	// Payer is the display name of the member who paid.
	Payer string

	Split  Split
	Note   string
	Status TxStatus

	IsSettlement bool

	CreatedAt int64
	UpdatedAt int64
}

// Validate checks record-level invariants. Unknown member names are allowed:
// the ledger ignores them rather than rejecting the record.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, t.Amount.String())
	}
	if strings.TrimSpace(t.Payer) == "" {
		return ErrMissingPayer
	}
	if _, err := ParseTxStatus(string(t.Status)); err != nil {
		return err
	}
	one := decimal.NewFromInt(1)
	for member, share := range t.Split {
		if share.IsNegative() || share.GreaterThan(one) {
			return fmt.Errorf("%w: %s has %s", ErrInvalidShare, member, share.String())
		}
	}
	return nil
}
