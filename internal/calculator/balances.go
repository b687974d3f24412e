package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// CentPlaces is the number of decimal places money is rounded to.
const CentPlaces = 2

// MemberBalance represents the balance information for one household member.
type MemberBalance struct {
	MemberName string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid  decimal.Decimal // Total amount paid across all transactions
	TotalOwed  decimal.Decimal // Total share of transactions this member is responsible for
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// NormalizeName returns the form member names are compared in.
func NormalizeName(s string) string {
	return models.CanonicalName(s)
}

// resolver maps loosely formatted names onto the canonical member list.
type resolver map[string]string

func newResolver(members []string) resolver {
	r := make(resolver, len(members))
	for _, m := range members {
		r[NormalizeName(m)] = m
	}
	return r
}

func (r resolver) member(name string) (string, bool) {
	m, ok := r[NormalizeName(name)]
	return m, ok
}

// shares re-keys a split by canonical member name. Keys that match no member
// are dropped.
func (r resolver) shares(split models.Split) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(split))
	for k, v := range split {
		if m, ok := r.member(k); ok {
			out[m] = out[m].Add(v)
		}
	}
	return out
}

// ComputeNetBalances nets every transaction into a balance per member.
//
// For each transaction and member m:
//
//	net[m] += amount * (m is payer ? 1 : 0) - amount * share[m]
//
// Settlements participate like any other transaction. Payer and split names
// are matched case- and whitespace-insensitively; names that match no member
// contribute nothing. Every member appears in the result.
func ComputeNetBalances(members []string, txs []models.Transaction) map[string]decimal.Decimal {
	summary := Summarize(members, txs)
	net := make(map[string]decimal.Decimal, len(summary))
	for _, s := range summary {
		net[s.MemberName] = s.NetBalance
	}
	return net
}

// Summarize computes paid, owed and net totals per member, in member order.
func Summarize(members []string, txs []models.Transaction) []MemberBalance {
	r := newResolver(members)
	balances := make(map[string]*MemberBalance, len(members))
	for _, m := range members {
		balances[m] = &MemberBalance{MemberName: m}
	}

	for _, tx := range txs {
		shares := r.shares(tx.Split)
		payer, payerKnown := r.member(tx.Payer)

		if payerKnown {
			balances[payer].TotalPaid = balances[payer].TotalPaid.Add(tx.Amount)
		}
		for member, share := range shares {
			balances[member].TotalOwed = balances[member].TotalOwed.Add(tx.Amount.Mul(share))
		}
	}

	out := make([]MemberBalance, 0, len(members))
	for _, m := range members {
		bal := balances[m]
		bal.NetBalance = bal.TotalPaid.Sub(bal.TotalOwed)
		out = append(out, *bal)
	}
	return out
}

// RoundCents rounds an amount to the smallest currency unit, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// SuggestSettlement returns the transfer that clears the balance between the
// member who owes the most and the member who is owed the most. With two
// members that is the whole debt. It returns nil when the rounded amount is zero.
func SuggestSettlement(members []string, balances map[string]decimal.Decimal) *models.Settlement {
	debtor, creditor := "", ""
	var debt, credit decimal.Decimal
	for _, m := range orderedMembers(members, balances) {
		bal := balances[m]
		if bal.LessThan(debt) {
			debtor, debt = m, bal
		}
		if bal.GreaterThan(credit) {
			creditor, credit = m, bal
		}
	}
	if debtor == "" || creditor == "" {
		return nil
	}

	amount := RoundCents(decimal.Min(debt.Neg(), credit))
	if !amount.IsPositive() {
		return nil
	}
	return &models.Settlement{From: debtor, To: creditor, Amount: amount}
}

// BuildSettlementRecord builds the transaction that records a settlement:
// from pays, and the whole amount is assigned to to. Netting it moves both
// balances toward zero.
func BuildSettlementRecord(from, to string, amount decimal.Decimal, date models.Date) models.Transaction {
	return models.Transaction{
		Date:         date,
		Category:     models.SettlementCategory,
		Amount:       amount,
		Payer:        from,
		Split:        models.Split{from: decimal.Zero, to: decimal.NewFromInt(1)},
		Note:         "Settlement",
		Status:       models.StatusPaid,
		IsSettlement: true,
	}
}

// SimplifyDebts turns net balances into a short list of transfers by greedily
// matching debtors with creditors. Amounts below one cent are dropped.
func SimplifyDebts(members []string, balances map[string]decimal.Decimal) []DebtEdge {
	cent := decimal.New(1, -CentPlaces)

	// Create lists of creditors (owed money) and debtors (owe money)
	var creditors, debtors []string
	debtorBalance := make(map[string]decimal.Decimal)
	creditorBalance := make(map[string]decimal.Decimal)
	for _, m := range orderedMembers(members, balances) {
		bal := balances[m]
		if bal.IsPositive() {
			creditors = append(creditors, m)
			creditorBalance[m] = bal
		} else if bal.IsNegative() {
			debtors = append(debtors, m)
			debtorBalance[m] = bal.Neg() // Make positive
		}
	}

	// Largest first so the biggest debts are matched with the biggest credits
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtorBalance[debtors[i]].GreaterThan(debtorBalance[debtors[j]])
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditorBalance[creditors[i]].GreaterThan(creditorBalance[creditors[j]])
	})

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i]
		creditor := creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := decimal.Min(debtorBalance[debtor], creditorBalance[creditor])
		if rounded := RoundCents(amount); rounded.GreaterThanOrEqual(cent) {
			edges = append(edges, DebtEdge{From: debtor, To: creditor, Amount: rounded})
		}

		debtorBalance[debtor] = debtorBalance[debtor].Sub(amount)
		creditorBalance[creditor] = creditorBalance[creditor].Sub(amount)

		// Move to next debtor/creditor if fully settled
		if debtorBalance[debtor].LessThan(cent) {
			i++
		}
		if creditorBalance[creditor].LessThan(cent) {
			j++
		}
	}
	return edges
}

// orderedMembers returns the members first, in order, followed by any other
// balance keys sorted by name, so results do not depend on map order.
func orderedMembers(members []string, balances map[string]decimal.Decimal) []string {
	seen := make(map[string]bool, len(members))
	out := make([]string, 0, len(balances))
	for _, m := range members {
		if _, ok := balances[m]; ok && !seen[m] {
			out = append(out, m)
			seen[m] = true
		}
	}
	var rest []string
	for k := range balances {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
