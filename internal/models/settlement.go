package models

import "github.com/shopspring/decimal"

// Settlement is a suggested transfer that clears the balance between two members.
type Settlement struct {
	// From is the member who owes (debtor settling up).
	From string

	// To is the member who is owed (creditor being paid).
	To string

	// Amount is rounded to the cent.
	Amount decimal.Decimal
}
