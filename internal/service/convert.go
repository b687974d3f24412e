package service

import (
	"strings"

	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/recurrence"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
)

// parseDateOr parses an optional YYYY-MM-DD field, using fallback when empty.
func parseDateOr(s string, fallback models.Date) (models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return models.ParseDate(strings.TrimSpace(s))
}

func userToAPI(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func entryToAPI(e recurrence.Entry) api.Task {
	t := e.Task
	return api.Task{
		ID:            t.ID,
		Kind:          string(t.Kind),
		Name:          t.Name,
		Detail:        t.Detail,
		Notes:         t.Notes,
		LastCompleted: t.LastCompleted.String(),
		FrequencyDays: t.FrequencyDays,
		Assignee:      t.Assignee,
		NextDue:       e.NextDue.String(),
		DaysUntilDue:  e.DaysLeft,
		Status:        string(e.Status),
		Label:         e.Label,
	}
}

func entriesToAPI(entries []recurrence.Entry) []api.Task {
	out := make([]api.Task, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryToAPI(e))
	}
	return out
}

func splitToAPI(s models.Split) api.Split {
	if s == nil {
		return nil
	}
	out := make(api.Split, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func splitFromAPI(s api.Split) models.Split {
	if len(s) == 0 {
		return nil
	}
	out := make(models.Split, len(s))
	for k, v := range s {
		out[strings.TrimSpace(k)] = v
	}
	return out
}

func txToAPI(t *models.Transaction) api.Transaction {
	return api.Transaction{
		ID:           t.ID,
		Date:         t.Date.String(),
		Category:     t.Category,
		Amount:       t.Amount,
		Payer:        t.Payer,
		Split:        splitToAPI(t.Split),
		Note:         t.Note,
		Status:       string(t.Status),
		IsSettlement: t.IsSettlement,
		CreatedAt:    t.CreatedAt,
	}
}

func balancesToAPI(summary []calculator.MemberBalance) []api.MemberBalance {
	out := make([]api.MemberBalance, 0, len(summary))
	for _, b := range summary {
		out = append(out, api.MemberBalance{
			Member: b.MemberName,
			Net:    calculator.RoundCents(b.NetBalance),
			Paid:   calculator.RoundCents(b.TotalPaid),
			Owed:   calculator.RoundCents(b.TotalOwed),
		})
	}
	return out
}

func settlementToAPI(s *models.Settlement) *api.Settlement {
	if s == nil {
		return nil
	}
	return &api.Settlement{From: s.From, To: s.To, Amount: s.Amount}
}

func itemToAPI(i *models.ShoppingItem) api.Item {
	item := api.Item{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Assigned:  i.Assigned,
		Split:     splitToAPI(i.Split),
		PickToday: i.PickToday,
		LongTerm:  i.LongTerm,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
	}
	if i.TargetDate != nil {
		item.TargetDate = i.TargetDate.String()
	}
	return item
}

func derefTasks(tasks []*models.RecurringTask) []models.RecurringTask {
	out := make([]models.RecurringTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *t)
	}
	return out
}

func derefTransactions(txs []*models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, *t)
	}
	return out
}
