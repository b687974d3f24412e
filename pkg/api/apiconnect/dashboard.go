package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
)

// DashboardServiceName is the fully-qualified name of the DashboardService.
const DashboardServiceName = "household.v1.DashboardService"

const (
	DashboardServiceGetDashboardProcedure = "/household.v1.DashboardService/GetDashboard"
)

// DashboardServiceHandler is implemented by the server side of the DashboardService.
type DashboardServiceHandler interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + DashboardServiceName + "/", route(map[string]*connect.Handler{
		DashboardServiceGetDashboardProcedure: connect.NewUnaryHandler(DashboardServiceGetDashboardProcedure, svc.GetDashboard, opts...),
	})
}

// DashboardServiceClient is a client for the DashboardService.
type DashboardServiceClient interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

type dashboardServiceClient struct {
	getDashboard *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
}

// NewDashboardServiceClient constructs a client for the DashboardService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	opts = clientOptions(opts)
	return &dashboardServiceClient{
		getDashboard: connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL+DashboardServiceGetDashboardProcedure, opts...),
	}
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}
