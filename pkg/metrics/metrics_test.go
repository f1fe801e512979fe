package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("arena-booking", reg)

	m.IncPriceFallback("padel")
	m.IncPriceFallback("padel")
	m.IncConflictFailClosed()
	m.IncSelectionRejection("not_consecutive")
	m.ObserveBackend("calculate-price", "error", time.Now())

	assert.Equal(t, float64(2), testutil.ToFloat64(m.PriceFallbacksTotal.WithLabelValues("padel")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConflictFailClosedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SelectionRejectionsTotal.WithLabelValues("not_consecutive")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BackendRequestsTotal.WithLabelValues("calculate-price", "error")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncPriceFallback("padel")
		m.IncConflictFailClosed()
		m.IncSelectionRejection("x")
		m.IncBookingSubmitted("ok")
		m.ObserveBackend("x", "ok", time.Now())
	})
}
