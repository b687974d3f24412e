// Package api holds the request and response messages of the household.v1
// Connect services. Messages travel as JSON: dates are "YYYY-MM-DD" strings
// and money and shares are decimal strings.
package api

import "github.com/shopspring/decimal"

// Split maps a member name to a fractional share between 0 and 1.
type Split map[string]decimal.Decimal

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []Member `json:"members"`
	// Current is the caller's member name.
	Current string `json:"current"`
}
