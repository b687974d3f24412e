// Package metrics exposes Prometheus counters for RPC traffic and household
// activity.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	tasksCompleted *prometheus.CounterVec
	settlements    prometheus.Counter
	transactions   *prometheus.CounterVec
}

// New registers all collectors, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "household_rpc_requests_total",
			Help: "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "household_rpc_duration_seconds",
			Help:    "RPC latency by procedure.",
			Buckets: prometheus.DefBuckets,
		}, []string{"procedure"}),
		tasksCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "household_tasks_completed_total",
			Help: "Recurring tasks marked done, by kind.",
		}, []string{"kind"}),
		settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "household_settlements_total",
			Help: "Settlement transfers recorded.",
		}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "household_transactions_created_total",
			Help: "Ledger transactions created, by category.",
		}, []string{"category"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.tasksCompleted,
		m.settlements,
		m.transactions,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) TaskCompleted(kind string) {
	if m == nil {
		return
	}
	m.tasksCompleted.WithLabelValues(kind).Inc()
}

func (m *Metrics) SettlementRecorded() {
	if m == nil {
		return
	}
	m.settlements.Inc()
}

func (m *Metrics) TransactionCreated(category string) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(category).Inc()
}

// Interceptor counts every unary RPC and observes its latency.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.rpcRequests.WithLabelValues(procedure, codeOf(err)).Inc()
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
