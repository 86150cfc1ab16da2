package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	availabilityRules prometheus.Gauge
	bookedSlots       prometheus.Gauge
	bookedDates       prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном регистре prometheus
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		availabilityRules: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "schedule_availability_rules",
			Help:        "Current number of per-date availability rules",
			ConstLabels: constLabels,
		}),
		bookedSlots: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "schedule_booked_slots",
			Help:        "Current number of booked time slots",
			ConstLabels: constLabels,
		}),
		bookedDates: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "schedule_booked_dates",
			Help:        "Current number of dates with at least one booking",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// SetAvailabilityRules обновляет gauge количества правил доступности
func (m *Metrics) SetAvailabilityRules(count int) {
	m.availabilityRules.Set(float64(count))
}

// SetBookedSlots обновляет gauges занятых слотов
func (m *Metrics) SetBookedSlots(dates, slots int) {
	m.bookedDates.Set(float64(dates))
	m.bookedSlots.Set(float64(slots))
}
