package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec

	PriceFallbacksTotal      *prometheus.CounterVec
	ConflictFailClosedTotal  prometheus.Counter
	SelectionRejectionsTotal *prometheus.CounterVec
	BookingsSubmittedTotal   *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном registerer (для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BackendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "arena_backend_requests_total",
			Help:        "Total number of requests to the arena backend",
			ConstLabels: constLabels,
		}, []string{"endpoint", "outcome"}),

		BackendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "arena_backend_request_duration_seconds",
			Help:        "Arena backend request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),

		PriceFallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_fallbacks_total",
			Help:        "Number of times the static hourly rate was used instead of the dynamic price",
			ConstLabels: constLabels,
		}, []string{"sport"}),

		ConflictFailClosedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "conflict_check_fail_closed_total",
			Help:        "Number of conflict checks treated as conflicts because the backend was unreachable",
			ConstLabels: constLabels,
		}),

		SelectionRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_selection_rejections_total",
			Help:        "Number of rejected slot toggles",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		BookingsSubmittedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_submitted_total",
			Help:        "Number of booking submissions by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendRequestsTotal,
		m.BackendRequestDuration,
		m.PriceFallbacksTotal,
		m.ConflictFailClosedTotal,
		m.SelectionRejectionsTotal,
		m.BookingsSubmittedTotal,
	)

	return m
}

// ObserveBackend фиксирует вызов бэкенда арены
// Безопасен для nil-получателя, чтобы клиент работал и без метрик
func (m *Metrics) ObserveBackend(endpoint, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.BackendRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

// IncPriceFallback фиксирует использование резервного тарифа
func (m *Metrics) IncPriceFallback(sport string) {
	if m == nil {
		return
	}
	m.PriceFallbacksTotal.WithLabelValues(sport).Inc()
}

// IncConflictFailClosed фиксирует проверку конфликтов, закрытую из-за ошибки
func (m *Metrics) IncConflictFailClosed() {
	if m == nil {
		return
	}
	m.ConflictFailClosedTotal.Inc()
}

// IncSelectionRejection фиксирует отклоненный выбор слота
func (m *Metrics) IncSelectionRejection(reason string) {
	if m == nil {
		return
	}
	m.SelectionRejectionsTotal.WithLabelValues(reason).Inc()
}

// IncBookingSubmitted фиксирует результат отправки бронирования
func (m *Metrics) IncBookingSubmitted(result string) {
	if m == nil {
		return
	}
	m.BookingsSubmittedTotal.WithLabelValues(result).Inc()
}
