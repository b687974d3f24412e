package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
)

// ShoppingServiceName is the fully-qualified name of the ShoppingService.
const ShoppingServiceName = "household.v1.ShoppingService"

const (
	ShoppingServiceListItemsProcedure    = "/household.v1.ShoppingService/ListItems"
	ShoppingServiceCreateItemProcedure   = "/household.v1.ShoppingService/CreateItem"
	ShoppingServiceUpdateItemProcedure   = "/household.v1.ShoppingService/UpdateItem"
	ShoppingServiceDeleteItemProcedure   = "/household.v1.ShoppingService/DeleteItem"
	ShoppingServiceToggleBoughtProcedure = "/household.v1.ShoppingService/ToggleBought"
	ShoppingServiceQuickAddItemProcedure = "/household.v1.ShoppingService/QuickAddItem"
)

// ShoppingServiceHandler is implemented by the server side of the ShoppingService.
type ShoppingServiceHandler interface {
	ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error)
	CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ToggleBought(context.Context, *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error)
	QuickAddItem(context.Context, *connect.Request[api.QuickAddItemRequest]) (*connect.Response[api.QuickAddItemResponse], error)
}

// NewShoppingServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewShoppingServiceHandler(svc ShoppingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ShoppingServiceName + "/", route(map[string]*connect.Handler{
		ShoppingServiceListItemsProcedure:    connect.NewUnaryHandler(ShoppingServiceListItemsProcedure, svc.ListItems, opts...),
		ShoppingServiceCreateItemProcedure:   connect.NewUnaryHandler(ShoppingServiceCreateItemProcedure, svc.CreateItem, opts...),
		ShoppingServiceUpdateItemProcedure:   connect.NewUnaryHandler(ShoppingServiceUpdateItemProcedure, svc.UpdateItem, opts...),
		ShoppingServiceDeleteItemProcedure:   connect.NewUnaryHandler(ShoppingServiceDeleteItemProcedure, svc.DeleteItem, opts...),
		ShoppingServiceToggleBoughtProcedure: connect.NewUnaryHandler(ShoppingServiceToggleBoughtProcedure, svc.ToggleBought, opts...),
		ShoppingServiceQuickAddItemProcedure: connect.NewUnaryHandler(ShoppingServiceQuickAddItemProcedure, svc.QuickAddItem, opts...),
	})
}

// ShoppingServiceClient is a client for the ShoppingService.
type ShoppingServiceClient interface {
	ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error)
	CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ToggleBought(context.Context, *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error)
	QuickAddItem(context.Context, *connect.Request[api.QuickAddItemRequest]) (*connect.Response[api.QuickAddItemResponse], error)
}

type shoppingServiceClient struct {
	listItems    *connect.Client[api.ListItemsRequest, api.ListItemsResponse]
	createItem   *connect.Client[api.CreateItemRequest, api.CreateItemResponse]
	updateItem   *connect.Client[api.UpdateItemRequest, api.UpdateItemResponse]
	deleteItem   *connect.Client[api.DeleteItemRequest, api.DeleteItemResponse]
	toggleBought *connect.Client[api.ToggleBoughtRequest, api.ToggleBoughtResponse]
	quickAddItem *connect.Client[api.QuickAddItemRequest, api.QuickAddItemResponse]
}

// NewShoppingServiceClient constructs a client for the ShoppingService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewShoppingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ShoppingServiceClient {
	opts = clientOptions(opts)
	return &shoppingServiceClient{
		listItems:    connect.NewClient[api.ListItemsRequest, api.ListItemsResponse](httpClient, baseURL+ShoppingServiceListItemsProcedure, opts...),
		createItem:   connect.NewClient[api.CreateItemRequest, api.CreateItemResponse](httpClient, baseURL+ShoppingServiceCreateItemProcedure, opts...),
		updateItem:   connect.NewClient[api.UpdateItemRequest, api.UpdateItemResponse](httpClient, baseURL+ShoppingServiceUpdateItemProcedure, opts...),
		deleteItem:   connect.NewClient[api.DeleteItemRequest, api.DeleteItemResponse](httpClient, baseURL+ShoppingServiceDeleteItemProcedure, opts...),
		toggleBought: connect.NewClient[api.ToggleBoughtRequest, api.ToggleBoughtResponse](httpClient, baseURL+ShoppingServiceToggleBoughtProcedure, opts...),
		quickAddItem: connect.NewClient[api.QuickAddItemRequest, api.QuickAddItemResponse](httpClient, baseURL+ShoppingServiceQuickAddItemProcedure, opts...),
	}
}

func (c *shoppingServiceClient) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	return c.listItems.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	return c.createItem.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) ToggleBought(ctx context.Context, req *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error) {
	return c.toggleBought.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) QuickAddItem(ctx context.Context, req *connect.Request[api.QuickAddItemRequest]) (*connect.Response[api.QuickAddItemResponse], error) {
	return c.quickAddItem.CallUnary(ctx, req)
}
