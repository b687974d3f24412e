package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/quickadd"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
)

var _ apiconnect.FinanceServiceHandler = (*FinanceService)(nil)

// splitTolerance bounds how far explicit shares may sum away from 1.
var splitTolerance = decimal.New(1, -6)

// FinanceService implements the Connect FinanceService over the shared ledger.
type FinanceService struct {
	store storage.TransactionStore
	env   Env
}

// NewFinanceService creates a new FinanceService with the given storage backend.
func NewFinanceService(store storage.TransactionStore, env Env) *FinanceService {
	return &FinanceService{store: store, env: env.withDefaults()}
}

// member resolves name to its canonical household spelling.
func member(members []string, name string) (string, bool) {
	for _, m := range members {
		if models.SameMember(m, name) {
			return m, true
		}
	}
	return "", false
}

// checkSplit requires explicit shares to name household members and to sum to 1.
// Keys are rewritten to their canonical spelling.
func checkSplit(members []string, split models.Split) (models.Split, error) {
	out := make(models.Split, len(split))
	for name, share := range split {
		m, ok := member(members, name)
		if !ok {
			return nil, invalidArg("split names %q, who is not a household member", name)
		}
		out[m] = out[m].Add(share)
	}
	if total := out.Total(); total.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(splitTolerance) {
		return nil, invalidArg("split shares must sum to 1, got %s", total.String())
	}
	return out, nil
}

// ListTransactions returns the ledger, newest first, optionally filtered.
func (s *FinanceService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	txs, err := s.store.ListTransactions(ctx, storage.TransactionFilter{
		Query:    req.Msg.Query,
		Category: req.Msg.Category,
	})
	if err != nil {
		s.env.Logger.Error("ListTransactions: failed to list", "error", err)
		return nil, connectError(err)
	}

	out := make([]api.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, txToAPI(t))
	}
	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: out}), nil
}

// CreateTransaction records an expense. The payer defaults to the caller and
// the split to an equal share for everyone.
func (s *FinanceService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	msg := req.Msg
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	payerName := strings.TrimSpace(msg.Payer)
	if payerName == "" {
		payerName = s.env.caller(ctx, members)
	}
	payer, ok := member(members, payerName)
	if !ok {
		return nil, invalidArg("payer %q is not a household member", payerName)
	}

	var split models.Split
	if len(msg.Split) > 0 {
		split, err = checkSplit(members, splitFromAPI(msg.Split))
	} else {
		split, err = calculator.SharesFor(calculator.ExpenseKind(strings.ToLower(strings.TrimSpace(msg.SplitKind))), payer, members)
	}
	if err != nil {
		return nil, connectError(err)
	}

	date, err := parseDateOr(msg.Date, s.env.today())
	if err != nil {
		return nil, connectError(err)
	}
	status, err := models.ParseTxStatus(msg.Status)
	if err != nil {
		return nil, connectError(err)
	}

	tx := &models.Transaction{
		Date:     date,
		Category: strings.TrimSpace(msg.Category),
		Amount:   calculator.RoundCents(msg.Amount),
		Payer:    payer,
		Split:    split,
		Note:     strings.TrimSpace(msg.Note),
		Status:   status,
	}
	if tx.Category == "" {
		tx.Category = "Other"
	}
	return s.create(ctx, tx)
}

func (s *FinanceService) create(ctx context.Context, tx *models.Transaction) (*connect.Response[api.CreateTransactionResponse], error) {
	if err := tx.Validate(); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		s.env.Logger.Error("CreateTransaction: failed to save", "error", err)
		return nil, connectError(err)
	}
	s.env.Metrics.TransactionCreated(tx.Category)

	s.env.Logger.Info("Transaction created",
		"transaction_id", tx.ID,
		"category", tx.Category,
		"amount", tx.Amount.StringFixed(calculator.CentPlaces),
		"payer", tx.Payer,
	)
	return connect.NewResponse(&api.CreateTransactionResponse{Transaction: txToAPI(tx)}), nil
}

// UpdateTransaction applies a partial update. A new split replaces the old one.
// Settlement records are never edited; delete and settle again instead.
func (s *FinanceService) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	msg := req.Msg
	tx, err := s.store.GetTransaction(ctx, msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	if tx.IsSettlement {
		s.env.Logger.Warn("UpdateTransaction: refused settlement edit", "transaction_id", tx.ID)
		return nil, connectError(models.ErrSettlementEdit)
	}
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	if msg.Date != nil {
		if tx.Date, err = models.ParseDate(strings.TrimSpace(*msg.Date)); err != nil {
			return nil, connectError(err)
		}
	}
	if msg.Category != nil {
		tx.Category = strings.TrimSpace(*msg.Category)
	}
	if msg.Amount != nil {
		tx.Amount = calculator.RoundCents(*msg.Amount)
	}
	if msg.Payer != nil {
		payer, ok := member(members, *msg.Payer)
		if !ok {
			return nil, invalidArg("payer %q is not a household member", *msg.Payer)
		}
		tx.Payer = payer
	}
	if len(msg.Split) > 0 {
		if tx.Split, err = checkSplit(members, splitFromAPI(msg.Split)); err != nil {
			return nil, err
		}
	}
	if msg.Note != nil {
		tx.Note = strings.TrimSpace(*msg.Note)
	}
	if msg.Status != nil {
		if tx.Status, err = models.ParseTxStatus(*msg.Status); err != nil {
			return nil, connectError(err)
		}
	}

	if err := tx.Validate(); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.UpdateTransaction(ctx, tx); err != nil {
		s.env.Logger.Error("UpdateTransaction: failed to save", "transaction_id", tx.ID, "error", err)
		return nil, connectError(err)
	}

	s.env.Logger.Info("Transaction updated", "transaction_id", tx.ID)
	return connect.NewResponse(&api.UpdateTransactionResponse{Transaction: txToAPI(tx)}), nil
}

// DeleteTransaction removes a transaction. Deleting a settlement reopens the
// balance it cleared.
func (s *FinanceService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	if err := s.store.DeleteTransaction(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	s.env.Logger.Info("Transaction deleted", "transaction_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteTransactionResponse{}), nil
}

// QuickAddExpense records an evenly split expense paid by the caller from
// text such as "Groceries 23,40".
func (s *FinanceService) QuickAddExpense(ctx context.Context, req *connect.Request[api.QuickAddExpenseRequest]) (*connect.Response[api.QuickAddExpenseResponse], error) {
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	tx, err := quickadd.Expense(req.Msg.Text, s.env.caller(ctx, members), members, s.env.today())
	if err != nil {
		return nil, connectError(err)
	}
	resp, err := s.create(ctx, &tx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.QuickAddExpenseResponse{Transaction: resp.Msg.Transaction}), nil
}

// ledger is a consistent snapshot of members and transactions with the
// balances derived from it.
type ledger struct {
	members []string
	txs     []models.Transaction
	net     map[string]decimal.Decimal
	summary []calculator.MemberBalance
}

func (s *FinanceService) snapshot(ctx context.Context) (*ledger, error) {
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.store.ListTransactions(ctx, storage.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return newLedger(members, derefTransactions(all)), nil
}

func newLedger(members []string, txs []models.Transaction) *ledger {
	l := &ledger{members: members, txs: txs}
	l.summary = calculator.Summarize(members, txs)
	l.net = make(map[string]decimal.Decimal, len(l.summary))
	for _, b := range l.summary {
		l.net[b.MemberName] = b.NetBalance
	}
	return l
}

// GetBalances nets the whole ledger and suggests how to settle it.
func (s *FinanceService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	l, err := s.snapshot(ctx)
	if err != nil {
		s.env.Logger.Error("GetBalances: failed to load ledger", "error", err)
		return nil, connectError(err)
	}

	edges := calculator.SimplifyDebts(l.members, l.net)
	debts := make([]api.Settlement, 0, len(edges))
	for _, e := range edges {
		debts = append(debts, api.Settlement{From: e.From, To: e.To, Amount: e.Amount})
	}

	me := s.env.caller(ctx, l.members)
	mine := decimal.Zero
	if m, ok := member(l.members, me); ok {
		mine = calculator.RoundCents(l.net[m])
	}

	s.env.Logger.Debug("Balances computed", "transactions", len(l.txs), "members", len(l.members))
	return connect.NewResponse(&api.GetBalancesResponse{
		Balances:   balancesToAPI(l.summary),
		Suggestion: settlementToAPI(calculator.SuggestSettlement(l.members, l.net)),
		Debts:      debts,
		Mine:       mine,
	}), nil
}

// SettleUp records the suggested settlement as a transaction. When nobody
// owes anything it records nothing.
func (s *FinanceService) SettleUp(ctx context.Context, req *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error) {
	date, err := parseDateOr(req.Msg.Date, s.env.today())
	if err != nil {
		return nil, connectError(err)
	}
	l, err := s.snapshot(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	suggestion := calculator.SuggestSettlement(l.members, l.net)
	if suggestion == nil {
		s.env.Logger.Info("SettleUp: nothing owed")
		return connect.NewResponse(&api.SettleUpResponse{Balances: balancesToAPI(l.summary)}), nil
	}

	record := calculator.BuildSettlementRecord(suggestion.From, suggestion.To, suggestion.Amount, date)
	if err := s.store.CreateTransaction(ctx, &record); err != nil {
		s.env.Logger.Error("SettleUp: failed to record settlement", "error", err)
		return nil, connectError(err)
	}
	s.env.Metrics.SettlementRecorded()

	s.env.Logger.Info("Settlement recorded",
		"transaction_id", record.ID,
		"from", record.Payer,
		"to", suggestion.To,
		"amount", record.Amount.StringFixed(calculator.CentPlaces),
	)

	after := newLedger(l.members, append(l.txs, record))
	settled := txToAPI(&record)
	return connect.NewResponse(&api.SettleUpResponse{
		Transaction: &settled,
		Balances:    balancesToAPI(after.summary),
	}), nil
}
