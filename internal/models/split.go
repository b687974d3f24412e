package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Split maps a member name to that member's fractional share of an amount.
// Shares of the members involved sum to 1; uninvolved members have 0.
type Split map[string]decimal.Decimal

// CanonicalName returns the form member names are compared in.
func CanonicalName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameMember reports whether two names refer to the same member, ignoring
// case and surrounding whitespace.
func SameMember(a, b string) bool {
	return CanonicalName(a) == CanonicalName(b)
}

// Share returns the share recorded for member, matching keys loosely.
// A member without an entry has a zero share.
func (s Split) Share(member string) decimal.Decimal {
	if v, ok := s[member]; ok {
		return v
	}
	for k, v := range s {
		if SameMember(k, member) {
			return v
		}
	}
	return decimal.Zero
}

// Total returns the sum of all shares.
func (s Split) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s {
		total = total.Add(v)
	}
	return total
}

// Clone returns an independent copy of the split.
func (s Split) Clone() Split {
	if s == nil {
		return nil
	}
	out := make(Split, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// EvenSplit shares an amount equally among members.
func EvenSplit(members []string) Split {
	if len(members) == 0 {
		return Split{}
	}
	share := decimal.NewFromInt(1).DivRound(decimal.NewFromInt(int64(len(members))), 8)
	out := make(Split, len(members))
	for _, m := range members {
		out[m] = share
	}
	return out
}
