package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
)

// FinanceServiceName is the fully-qualified name of the FinanceService.
const FinanceServiceName = "household.v1.FinanceService"

const (
	FinanceServiceListTransactionsProcedure  = "/household.v1.FinanceService/ListTransactions"
	FinanceServiceCreateTransactionProcedure = "/household.v1.FinanceService/CreateTransaction"
	FinanceServiceUpdateTransactionProcedure = "/household.v1.FinanceService/UpdateTransaction"
	FinanceServiceDeleteTransactionProcedure = "/household.v1.FinanceService/DeleteTransaction"
	FinanceServiceQuickAddExpenseProcedure   = "/household.v1.FinanceService/QuickAddExpense"
	FinanceServiceGetBalancesProcedure       = "/household.v1.FinanceService/GetBalances"
	FinanceServiceSettleUpProcedure          = "/household.v1.FinanceService/SettleUp"
)

// FinanceServiceHandler is implemented by the server side of the FinanceService.
type FinanceServiceHandler interface {
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	QuickAddExpense(context.Context, *connect.Request[api.QuickAddExpenseRequest]) (*connect.Response[api.QuickAddExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	SettleUp(context.Context, *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + FinanceServiceName + "/", route(map[string]*connect.Handler{
		FinanceServiceListTransactionsProcedure:  connect.NewUnaryHandler(FinanceServiceListTransactionsProcedure, svc.ListTransactions, opts...),
		FinanceServiceCreateTransactionProcedure: connect.NewUnaryHandler(FinanceServiceCreateTransactionProcedure, svc.CreateTransaction, opts...),
		FinanceServiceUpdateTransactionProcedure: connect.NewUnaryHandler(FinanceServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts...),
		FinanceServiceDeleteTransactionProcedure: connect.NewUnaryHandler(FinanceServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...),
		FinanceServiceQuickAddExpenseProcedure:   connect.NewUnaryHandler(FinanceServiceQuickAddExpenseProcedure, svc.QuickAddExpense, opts...),
		FinanceServiceGetBalancesProcedure:       connect.NewUnaryHandler(FinanceServiceGetBalancesProcedure, svc.GetBalances, opts...),
		FinanceServiceSettleUpProcedure:          connect.NewUnaryHandler(FinanceServiceSettleUpProcedure, svc.SettleUp, opts...),
	})
}

// FinanceServiceClient is a client for the FinanceService.
type FinanceServiceClient interface {
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	QuickAddExpense(context.Context, *connect.Request[api.QuickAddExpenseRequest]) (*connect.Response[api.QuickAddExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	SettleUp(context.Context, *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error)
}

type financeServiceClient struct {
	listTransactions  *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	createTransaction *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	updateTransaction *connect.Client[api.UpdateTransactionRequest, api.UpdateTransactionResponse]
	deleteTransaction *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
	quickAddExpense   *connect.Client[api.QuickAddExpenseRequest, api.QuickAddExpenseResponse]
	getBalances       *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	settleUp          *connect.Client[api.SettleUpRequest, api.SettleUpResponse]
}

// NewFinanceServiceClient constructs a client for the FinanceService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinanceServiceClient {
	opts = clientOptions(opts)
	return &financeServiceClient{
		listTransactions:  connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+FinanceServiceListTransactionsProcedure, opts...),
		createTransaction: connect.NewClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL+FinanceServiceCreateTransactionProcedure, opts...),
		updateTransaction: connect.NewClient[api.UpdateTransactionRequest, api.UpdateTransactionResponse](httpClient, baseURL+FinanceServiceUpdateTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL+FinanceServiceDeleteTransactionProcedure, opts...),
		quickAddExpense:   connect.NewClient[api.QuickAddExpenseRequest, api.QuickAddExpenseResponse](httpClient, baseURL+FinanceServiceQuickAddExpenseProcedure, opts...),
		getBalances:       connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](httpClient, baseURL+FinanceServiceGetBalancesProcedure, opts...),
		settleUp:          connect.NewClient[api.SettleUpRequest, api.SettleUpResponse](httpClient, baseURL+FinanceServiceSettleUpProcedure, opts...),
	}
}

func (c *financeServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *financeServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *financeServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *financeServiceClient) QuickAddExpense(ctx context.Context, req *connect.Request[api.QuickAddExpenseRequest]) (*connect.Response[api.QuickAddExpenseResponse], error) {
	return c.quickAddExpense.CallUnary(ctx, req)
}

func (c *financeServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *financeServiceClient) SettleUp(ctx context.Context, req *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error) {
	return c.settleUp.CallUnary(ctx, req)
}
