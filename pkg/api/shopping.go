package api

import "github.com/shopspring/decimal"

type Item struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Quantity   int              `json:"quantity"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Assigned   string           `json:"assigned"`
	Split      Split            `json:"split,omitempty"`
	PickToday  bool             `json:"pickToday"`
	LongTerm   bool             `json:"longTerm"`
	TargetDate string           `json:"targetDate,omitempty"`
	// Status is open or bought.
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}

type ListItemsRequest struct{}

type ListItemsResponse struct {
	Items []Item `json:"items"`
	// Open counts open list items, Picks open items picked for today, and
	// LongTerm planned purchases.
	Open     int `json:"open"`
	Picks    int `json:"picks"`
	LongTerm int `json:"longTerm"`
}

type CreateItemRequest struct {
	Name     string           `json:"name"`
	Quantity int              `json:"quantity,omitempty"` // defaults to 1
	Price    *decimal.Decimal `json:"price,omitempty"`
	// Assigned is a member name or "Both" (the default).
	Assigned   string `json:"assigned,omitempty"`
	Split      Split  `json:"split,omitempty"`
	PickToday  bool   `json:"pickToday,omitempty"`
	LongTerm   bool   `json:"longTerm,omitempty"`
	TargetDate string `json:"targetDate,omitempty"`
}

type CreateItemResponse struct {
	Item Item `json:"item"`
}

// UpdateItemRequest is a partial update: nil fields are left unchanged.
// An empty TargetDate clears it.
type UpdateItemRequest struct {
	ID         string           `json:"id"`
	Name       *string          `json:"name,omitempty"`
	Quantity   *int             `json:"quantity,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Assigned   *string          `json:"assigned,omitempty"`
	Split      Split            `json:"split,omitempty"`
	PickToday  *bool            `json:"pickToday,omitempty"`
	LongTerm   *bool            `json:"longTerm,omitempty"`
	TargetDate *string          `json:"targetDate,omitempty"`
	Status     *string          `json:"status,omitempty"`
}

type UpdateItemResponse struct {
	Item Item `json:"item"`
}

type DeleteItemRequest struct {
	ID string `json:"id"`
}

type DeleteItemResponse struct{}

type ToggleBoughtRequest struct {
	ID string `json:"id"`
}

type ToggleBoughtResponse struct {
	Item Item `json:"item"`
}

type QuickAddItemRequest struct {
	Text string `json:"text"`
}

type QuickAddItemResponse struct {
	Item Item `json:"item"`
}
