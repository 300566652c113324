//go:build unit

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reservation-service/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := metrics.New()

	m.Observe("reserve", metrics.OutcomeOK, time.Now())
	m.Observe("reserve", metrics.OutcomeOK, time.Now())
	m.Observe("reserve", metrics.OutcomeConflict, time.Now())
	m.IncStreamed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations().WithLabelValues("reserve", metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("reserve", metrics.OutcomeConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Streamed()))
}

func TestMetrics_InstancesAreIsolated(t *testing.T) {
	a, b := metrics.New(), metrics.New()

	a.Observe("get", metrics.OutcomeOK, time.Now())

	assert.Equal(t, 0.0, testutil.ToFloat64(b.Operations().WithLabelValues("get", metrics.OutcomeOK)))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Observe("cancel", metrics.OutcomeNotFound, time.Now())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `rsvp_reservation_operations_total{operation="cancel",outcome="not_found"} 1`)
	assert.Contains(t, string(body), "rsvp_reservation_operation_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
