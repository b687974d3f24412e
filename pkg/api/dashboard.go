package api

import "github.com/shopspring/decimal"

// DomainSummary is the dashboard card of one task domain.
type DomainSummary struct {
	// Due holds overdue tasks and tasks due today, most overdue first.
	Due      []Task `json:"due"`
	Overdue  int    `json:"overdue"`
	Upcoming int    `json:"upcoming"`
	Total    int    `json:"total"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Today    string        `json:"today"`
	Member   string        `json:"member"`
	Cleaning DomainSummary `json:"cleaning"`
	Plants   DomainSummary `json:"plants"`

	// Balance is the caller's net balance; positive means they are owed.
	Balance    decimal.Decimal `json:"balance"`
	Suggestion *Settlement     `json:"suggestion,omitempty"`

	// Picks are open shopping items marked for today.
	Picks     []Item `json:"picks"`
	OpenItems int    `json:"openItems"`
}
