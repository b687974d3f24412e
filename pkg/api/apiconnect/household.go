package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService.
const HouseholdServiceName = "household.v1.HouseholdService"

const (
	HouseholdServiceListMembersProcedure = "/household.v1.HouseholdService/ListMembers"
)

// HouseholdServiceHandler is implemented by the server side of the HouseholdService.
type HouseholdServiceHandler interface {
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
}

// NewHouseholdServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewHouseholdServiceHandler(svc HouseholdServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + HouseholdServiceName + "/", route(map[string]*connect.Handler{
		HouseholdServiceListMembersProcedure: connect.NewUnaryHandler(HouseholdServiceListMembersProcedure, svc.ListMembers, opts...),
	})
}

// HouseholdServiceClient is a client for the HouseholdService.
type HouseholdServiceClient interface {
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
}

type householdServiceClient struct {
	listMembers *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
}

// NewHouseholdServiceClient constructs a client for the HouseholdService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HouseholdServiceClient {
	opts = clientOptions(opts)
	return &householdServiceClient{
		listMembers: connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](httpClient, baseURL+HouseholdServiceListMembersProcedure, opts...),
	}
}

func (c *householdServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}
