package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/SchwenderOne/roscher4gpt5/internal/auth"
	"github.com/SchwenderOne/roscher4gpt5/internal/clock"
	"github.com/SchwenderOne/roscher4gpt5/internal/identity"
	"github.com/SchwenderOne/roscher4gpt5/internal/metrics"
	"github.com/SchwenderOne/roscher4gpt5/internal/middleware"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage/sqlite"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
	"github.com/SchwenderOne/roscher4gpt5/pkg/logging"
)

// testServer runs every household service against a temporary database,
// behind the same auth interceptor the server uses.
type testServer struct {
	url     string
	store   *sqlite.SQLiteStore
	clock   *clock.MockClock
	metrics *metrics.Metrics
}

type clients struct {
	auth      apiconnect.AuthServiceClient
	household apiconnect.HouseholdServiceClient
	tasks     apiconnect.TaskServiceClient
	finance   apiconnect.FinanceServiceClient
	shopping  apiconnect.ShoppingServiceClient
	dashboard apiconnect.DashboardServiceClient
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	ts := &testServer{
		store:   store,
		clock:   &clock.MockClock{FixedNow: time.Date(2025, 8, 8, 10, 0, 0, 0, time.UTC)},
		metrics: metrics.New(),
	}
	logger := logging.New(io.Discard, slog.LevelError)
	env := Env{
		Directory: identity.NewDirectory(store, []string{"Lucas", "Alex"}),
		Clock:     ts.clock,
		Metrics:   ts.metrics,
		Logger:    logger,
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	interceptors := connect.WithInterceptors(middleware.RequireAuth(jwtManager,
		apiconnect.AuthServiceRegisterProcedure,
		apiconnect.AuthServiceLoginProcedure,
	))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, store, jwtManager, logger), interceptors))
	mux.Handle(apiconnect.NewHouseholdServiceHandler(NewHouseholdService(env), interceptors))
	mux.Handle(apiconnect.NewTaskServiceHandler(NewTaskService(store, env), interceptors))
	mux.Handle(apiconnect.NewFinanceServiceHandler(NewFinanceService(store, env), interceptors))
	mux.Handle(apiconnect.NewShoppingServiceHandler(NewShoppingService(store, env), interceptors))
	mux.Handle(apiconnect.NewDashboardServiceHandler(NewDashboardService(store, env), interceptors))

	server := httptest.NewServer(mux)
	ts.url = server.URL
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return ts
}

// bearer attaches token to every outgoing request.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// as returns clients authenticated with token; an empty token is anonymous.
func (s *testServer) as(token string) clients {
	opts := connect.WithInterceptors(bearer(token))
	return clients{
		auth:      apiconnect.NewAuthServiceClient(http.DefaultClient, s.url, opts),
		household: apiconnect.NewHouseholdServiceClient(http.DefaultClient, s.url, opts),
		tasks:     apiconnect.NewTaskServiceClient(http.DefaultClient, s.url, opts),
		finance:   apiconnect.NewFinanceServiceClient(http.DefaultClient, s.url, opts),
		shopping:  apiconnect.NewShoppingServiceClient(http.DefaultClient, s.url, opts),
		dashboard: apiconnect.NewDashboardServiceClient(http.DefaultClient, s.url, opts),
	}
}

// register signs up a member and returns clients acting as them.
func (s *testServer) register(t *testing.T, name string) clients {
	t.Helper()
	resp, err := s.as("").auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       name + "@example.com",
		DisplayName: name,
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return s.as(resp.Msg.Token)
}

// household registers Lucas and Alex, in that order.
func (s *testServer) household(t *testing.T) (lucas, alex clients) {
	t.Helper()
	return s.register(t, "Lucas"), s.register(t, "Alex")
}

func (s *testServer) setToday(date string) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	s.clock.SetNow(d.Add(10 * time.Hour))
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("expected code %v, got %v (%v)", code, got, err)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func wantDecimal(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s = %s, want %s", what, got.String(), want)
	}
}

func ptr[T any](v T) *T { return &v }
