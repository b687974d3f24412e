package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// ErrInvalidSplit is returned when shares cannot be built for the request.
var ErrInvalidSplit = errors.New("invalid split")

// ExpenseKind selects how an expense is split between the household.
type ExpenseKind string

const (
	// ExpenseShared splits the amount equally among all members.
	ExpenseShared ExpenseKind = "shared"
	// ExpenseMine assigns the whole amount to the payer (nothing is owed).
	ExpenseMine ExpenseKind = "me"
	// ExpenseRoommate assigns the whole amount to the other member.
	ExpenseRoommate ExpenseKind = "roommate"
)

// SharesFor builds the split for an expense kind. Members that are not
// involved get an explicit zero share.
func SharesFor(kind ExpenseKind, payer string, members []string) (models.Split, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: must have at least one member", ErrInvalidSplit)
	}

	switch kind {
	case ExpenseShared, "":
		return models.EvenSplit(members), nil
	case ExpenseMine:
		return exclusive(members, func(m string) bool { return models.SameMember(m, payer) }), nil
	case ExpenseRoommate:
		other := ""
		for _, m := range members {
			if !models.SameMember(m, payer) {
				other = m
				break
			}
		}
		if other == "" {
			return nil, fmt.Errorf("%w: no other member besides %q", ErrInvalidSplit, payer)
		}
		return exclusive(members, func(m string) bool { return m == other }), nil
	default:
		return nil, fmt.Errorf("%w: unknown expense kind %q", ErrInvalidSplit, kind)
	}
}

// SplitFromPercent builds a two-member split from whole percentages such as
// "70/30". The percentages are normalized so the shares always sum to 1.
func SplitFromPercent(members []string, first, second int) (models.Split, error) {
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: percentage split needs two members", ErrInvalidSplit)
	}
	if first < 0 || second < 0 || first+second == 0 {
		return nil, fmt.Errorf("%w: percentages %d/%d", ErrInvalidSplit, first, second)
	}
	total := decimal.NewFromInt(int64(first + second))
	a := decimal.NewFromInt(int64(first)).DivRound(total, 8)
	return models.Split{
		members[0]: a,
		members[1]: decimal.NewFromInt(1).Sub(a),
	}, nil
}

func exclusive(members []string, owns func(string) bool) models.Split {
	out := make(models.Split, len(members))
	for _, m := range members {
		if owns(m) {
			out[m] = decimal.NewFromInt(1)
		} else {
			out[m] = decimal.Zero
		}
	}
	return out
}
