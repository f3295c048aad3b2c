package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.Calculations.WithLabelValues(metrics.StatusSuccess).Inc()
	m.RoutesProcessed.Add(3)
	m.WorstDistance.Set(7.5)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues(metrics.StatusSuccess)), 1e-9)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.RoutesProcessed), 1e-9)
	assert.InDelta(t, 7.5, testutil.ToFloat64(m.WorstDistance), 1e-9)

	count, err := testutil.GatherAndCount(reg, "compass_routes_processed_total", "compass_calculations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		metrics.NewMetrics(reg)
	})
}
