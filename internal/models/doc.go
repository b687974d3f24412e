// Package models defines the core domain models of the household tracker.
//
// # Models
//
//   - RecurringTask: a room to clean or a plant to water on a fixed interval
//   - Transaction: a shared expense, or a settlement transfer between members
//   - ShoppingItem: an entry on the shared shopping list
//   - User / Member: the people sharing the household
//   - Date: a calendar date with DST-safe day arithmetic
//
// Members are identified by display name (e.g. "Lucas", "Alex"). Names coming
// from records are compared loosely (case and surrounding whitespace are
// ignored), see SameMember.
//
// # Design Principles
//
// 1. **Plain values**: models carry no behaviour beyond validation; derived
// state (next due date, balances) lives in the recurrence and calculator packages
// 2. **Avoid circular references**: use ID strings and names instead of pointers
// 3. **Money is decimal**: amounts and shares use shopspring/decimal, never float64
package models
