package service

import (
	"context"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/recurrence"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
)

var _ apiconnect.DashboardServiceHandler = (*DashboardService)(nil)

// DashboardService summarizes every domain for the caller in one call.
type DashboardService struct {
	store storage.Store
	env   Env
}

func NewDashboardService(store storage.Store, env Env) *DashboardService {
	return &DashboardService{store: store, env: env.withDefaults()}
}

func summarizeDomain(tasks []models.RecurringTask, kind models.TaskKind, today models.Date, window int) api.DomainSummary {
	var ofKind []models.RecurringTask
	for _, t := range tasks {
		if t.Kind == kind {
			ofKind = append(ofKind, t)
		}
	}
	b := recurrence.Schedule(ofKind, today, window)

	summary := api.DomainSummary{
		Due:      entriesToAPI(b.Due),
		Upcoming: len(b.Upcoming),
		Total:    len(ofKind),
	}
	for _, e := range b.Due {
		if e.Status == recurrence.StatusOverdue {
			summary.Overdue++
		}
	}
	return summary
}

// GetDashboard loads tasks, the ledger and the shopping list concurrently
// and derives the caller's overview from them.
func (s *DashboardService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	var (
		members []string
		tasks   []*models.RecurringTask
		txs     []*models.Transaction
		items   []*models.ShoppingItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		members, err = s.env.Directory.Names(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.store.ListTasks(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		txs, err = s.store.ListTransactions(gctx, storage.TransactionFilter{})
		return err
	})
	g.Go(func() (err error) {
		items, err = s.store.ListItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.env.Logger.Error("GetDashboard: failed to load household", "error", err)
		return nil, connectError(err)
	}

	today := s.env.today()
	all := derefTasks(tasks)
	resp := &api.GetDashboardResponse{
		Today:    today.String(),
		Member:   s.env.caller(ctx, members),
		Cleaning: summarizeDomain(all, models.KindCleaning, today, s.env.window()),
		Plants:   summarizeDomain(all, models.KindPlants, today, s.env.window()),
		Balance:  decimal.Zero,
		Picks:    []api.Item{},
	}

	net := calculator.ComputeNetBalances(members, derefTransactions(txs))
	if m, ok := member(members, resp.Member); ok {
		resp.Balance = calculator.RoundCents(net[m])
	}
	resp.Suggestion = settlementToAPI(calculator.SuggestSettlement(members, net))

	for _, i := range items {
		if i.Status != models.ItemOpen || i.LongTerm {
			continue
		}
		resp.OpenItems++
		if i.PickToday {
			resp.Picks = append(resp.Picks, itemToAPI(i))
		}
	}
	return connect.NewResponse(resp), nil
}
