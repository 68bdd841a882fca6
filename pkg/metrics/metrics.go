package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	SlotsGenerated *prometheus.HistogramVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_open_connections",
				Help:        "Number of established connections.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		DBInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_in_use_connections",
				Help:        "Number of connections currently in use.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		DBIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_idle_connections",
				Help:        "Number of idle connections.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		DBWaitCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_wait_count",
				Help:        "Total number of connections waited for.",
				ConstLabels: constLabels,
			},
			[]string{"db"},
		),
		SlotsGenerated: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "availability_slots_generated",
				Help:        "Number of bookable slots returned per availability request.",
				ConstLabels: constLabels,
				Buckets:     []float64{0, 1, 2, 4, 8, 12, 16, 24, 32, 48},
			},
			[]string{"view"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.SlotsGenerated,
	)

	return m
}

// ObserveSlots записывает количество сгенерированных слотов. Безопасен для nil
func (m *Metrics) ObserveSlots(view string, count int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues(view).Observe(float64(count))
}
