package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	m := New()
	m.TaskCompleted("cleaning")
	m.TaskCompleted("cleaning")
	m.TaskCompleted("plants")
	m.SettlementRecorded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.tasksCompleted.WithLabelValues("cleaning")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tasksCompleted.WithLabelValues("plants")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.settlements))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.TaskCompleted("plants")
		m.SettlementRecorded()
		m.TransactionCreated("Groceries")
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.SettlementRecorded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "household_settlements_total 1"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "ok", codeOf(nil))
	assert.Equal(t, "not_found", codeOf(connect.NewError(connect.CodeNotFound, errors.New("x"))))
	assert.Equal(t, "unknown", codeOf(errors.New("plain")))
}
