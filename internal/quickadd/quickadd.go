// Package quickadd turns one line of free text into a household record.
//
//	clean Bathroom every 7 days
//	add plant Monstera every 10 days
//	Groceries 23,40
//	add milk x2 split 70/30
package quickadd

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// ErrNoMatch is returned when the text does not describe a record.
var ErrNoMatch = errors.New("quick add: text not understood")

const (
	defaultCategory = "Other"
	quickAddNote    = "Quick add"
)

var (
	cleaningPattern = regexp.MustCompile(`(?i)clean\s+(.+?)\s+every\s+(\d+)\s+days`)
	plantPattern    = regexp.MustCompile(`(?i)add\s+plant\s+(.+?)\s+every\s+(\d+)\s+days`)
	amountPattern   = regexp.MustCompile(`(\d+[.,]?\d*)`)
	itemPattern     = regexp.MustCompile(`(?i)^\s*add\s+(\S.*?)(?:\s+x(\d+))?(?:\s+split\s+(\d+)/(\d+))?\s*$`)
)

// Task parses a cleaning or plant instruction. Text that does not match falls
// back to a placeholder record the user is expected to edit; matched reports
// which case applied.
func Task(kind models.TaskKind, text string, today models.Date, members []string) (task models.RecurringTask, matched bool) {
	pattern := cleaningPattern
	if kind == models.KindPlants {
		pattern = plantPattern
	}

	first := ""
	if len(members) > 0 {
		first = members[0]
	}

	if m := pattern.FindStringSubmatch(text); m != nil {
		freq, err := strconv.Atoi(m[2])
		if err == nil && freq >= 1 {
			task = models.RecurringTask{
				Kind:          kind,
				Name:          strings.TrimSpace(m[1]),
				LastCompleted: today,
				FrequencyDays: freq,
			}
			if kind == models.KindCleaning {
				task.Assignee = first
			}
			return task, true
		}
	}

	if kind == models.KindPlants {
		return models.RecurringTask{
			Kind:          models.KindPlants,
			Name:          "New plant",
			Detail:        "Aloe",
			Notes:         quickAddNote,
			LastCompleted: today,
			FrequencyDays: 10,
		}, false
	}
	return models.RecurringTask{
		Kind:          models.KindCleaning,
		Name:          "New Room",
		Detail:        "Common",
		Notes:         quickAddNote,
		LastCompleted: today,
		FrequencyDays: 7,
		Assignee:      first,
	}, false
}

// Expense takes the first number in text as the amount of an evenly split
// expense paid by payer. The whole text becomes the note.
func Expense(text, payer string, members []string, today models.Date) (models.Transaction, error) {
	m := amountPattern.FindString(text)
	if m == "" {
		return models.Transaction{}, fmt.Errorf("%w: no amount in %q", ErrNoMatch, text)
	}
	amount, err := decimal.NewFromString(strings.Replace(m, ",", ".", 1))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}
	if !amount.IsPositive() {
		return models.Transaction{}, models.ErrInvalidAmount
	}

	return models.Transaction{
		Date:     today,
		Category: defaultCategory,
		Amount:   calculator.RoundCents(amount),
		Payer:    payer,
		Split:    models.EvenSplit(members),
		Note:     strings.TrimSpace(text),
		Status:   models.StatusPaid,
	}, nil
}

// ShoppingItem parses "add <name> [x<qty>] [split <a>/<b>]". The percentages
// apply to the first two members in order; without them the item is split
// evenly.
func ShoppingItem(text string, members []string) (models.ShoppingItem, error) {
	m := itemPattern.FindStringSubmatch(text)
	if m == nil {
		return models.ShoppingItem{}, fmt.Errorf("%w: %q", ErrNoMatch, text)
	}

	item := models.ShoppingItem{
		Name:     strings.TrimSpace(m[1]),
		Quantity: 1,
		Assigned: models.AssignedBoth,
		Split:    models.EvenSplit(members),
		Status:   models.ItemOpen,
	}
	if m[2] != "" {
		qty, err := strconv.Atoi(m[2])
		if err != nil || qty < 1 {
			return models.ShoppingItem{}, fmt.Errorf("%w: quantity %q", ErrNoMatch, m[2])
		}
		item.Quantity = qty
	}
	if m[3] != "" {
		a, _ := strconv.Atoi(m[3])
		b, _ := strconv.Atoi(m[4])
		split, err := calculator.SplitFromPercent(members, a, b)
		if err != nil {
			return models.ShoppingItem{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
		}
		item.Split = split
	}
	return item, nil
}
