package api

import "github.com/shopspring/decimal"

type Transaction struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Payer        string          `json:"payer"`
	Split        Split           `json:"split"`
	Note         string          `json:"note,omitempty"`
	Status       string          `json:"status"`
	IsSettlement bool            `json:"isSettlement"`
	CreatedAt    int64           `json:"createdAt"`
}

type ListTransactionsRequest struct {
	// Query matches category or note.
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type CreateTransactionRequest struct {
	Date     string          `json:"date,omitempty"` // defaults to today
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	// Payer defaults to the caller.
	Payer string `json:"payer,omitempty"`
	// Split wins over SplitKind when both are set.
	Split Split `json:"split,omitempty"`
	// SplitKind is shared, me or roommate; shared when empty.
	SplitKind string `json:"splitKind,omitempty"`
	Note      string `json:"note,omitempty"`
	Status    string `json:"status,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// UpdateTransactionRequest is a partial update: nil fields are left unchanged.
type UpdateTransactionRequest struct {
	ID       string           `json:"id"`
	Date     *string          `json:"date,omitempty"`
	Category *string          `json:"category,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Payer    *string          `json:"payer,omitempty"`
	Split    Split            `json:"split,omitempty"`
	Note     *string          `json:"note,omitempty"`
	Status   *string          `json:"status,omitempty"`
}

type UpdateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	ID string `json:"id"`
}

type DeleteTransactionResponse struct{}

type QuickAddExpenseRequest struct {
	Text string `json:"text"`
}

type QuickAddExpenseResponse struct {
	Transaction Transaction `json:"transaction"`
}

// MemberBalance is positive when the member is owed money.
type MemberBalance struct {
	Member string          `json:"member"`
	Net    decimal.Decimal `json:"net"`
	Paid   decimal.Decimal `json:"paid"`
	Owed   decimal.Decimal `json:"owed"`
}

type Settlement struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	Balances []MemberBalance `json:"balances"`
	// Suggestion is nil when nobody owes anything.
	Suggestion *Settlement `json:"suggestion,omitempty"`
	// Debts is the simplified set of transfers that clears every balance.
	Debts []Settlement `json:"debts"`
	// Mine is the caller's net balance.
	Mine decimal.Decimal `json:"mine"`
}

type SettleUpRequest struct {
	Date string `json:"date,omitempty"`
}

type SettleUpResponse struct {
	// Transaction is the recorded settlement, nil when nothing was owed.
	Transaction *Transaction    `json:"transaction,omitempty"`
	Balances    []MemberBalance `json:"balances"`
}
