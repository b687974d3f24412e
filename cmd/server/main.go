package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/SchwenderOne/roscher4gpt5/internal/auth"
	"github.com/SchwenderOne/roscher4gpt5/internal/clock"
	"github.com/SchwenderOne/roscher4gpt5/internal/config"
	"github.com/SchwenderOne/roscher4gpt5/internal/identity"
	"github.com/SchwenderOne/roscher4gpt5/internal/metrics"
	"github.com/SchwenderOne/roscher4gpt5/internal/middleware"
	"github.com/SchwenderOne/roscher4gpt5/internal/service"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage/sqlite"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
	"github.com/SchwenderOne/roscher4gpt5/pkg/logging"
)

// rpcPrefix is the path prefix of every Connect procedure.
const rpcPrefix = "/household.v1."

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup structured logging
	logging.Setup(cfg.LogLevel)
	logger := slog.Default()

	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	secret, isDefault := cfg.Secret()
	if isDefault {
		slog.Warn("JWT_SECRET is not set, using the development secret")
	}
	jwtManager := auth.NewJWTManager(secret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	m := metrics.New()
	env := service.Env{
		Directory:  identity.NewDirectory(store, cfg.Members),
		Clock:      clock.SystemClock{Location: loc},
		WindowDays: &cfg.UpcomingWindowDays,
		Metrics:    m,
		Logger:     logger,
	}

	// Metrics see every call; auth runs before logging so log lines carry the member.
	interceptors := connect.WithInterceptors(
		m.Interceptor(),
		middleware.RequireAuth(jwtManager,
			apiconnect.AuthServiceRegisterProcedure,
			apiconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, store, jwtManager, logger), interceptors))
	mux.Handle(apiconnect.NewHouseholdServiceHandler(service.NewHouseholdService(env), interceptors))
	mux.Handle(apiconnect.NewTaskServiceHandler(service.NewTaskService(store, env), interceptors))
	mux.Handle(apiconnect.NewFinanceServiceHandler(service.NewFinanceService(store, env), interceptors))
	mux.Handle(apiconnect.NewShoppingServiceHandler(service.NewShoppingService(store, env), interceptors))
	mux.Handle(apiconnect.NewDashboardServiceHandler(service.NewDashboardService(store, env), interceptors))
	mux.Handle("/metrics", m.Handler())

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return fmt.Errorf("resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// staticHandler serves the web front end. Unknown paths fall back to
// index.html; unknown RPC paths are a plain 404.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, rpcPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
