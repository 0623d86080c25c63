// Package metrics holds the prometheus collectors shared by the HTTP
// middleware and the database wrapper.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service collectors registered with the default registry.
type Metrics struct {
	httpDuration *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	dbDuration   *prometheus.HistogramVec
	dbPoolOpen   prometheus.Gauge
	dbPoolIdle   prometheus.Gauge
	dbPoolInUse  prometheus.Gauge
}

// New registers the collectors for the given service name.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration by method, path and status code.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, path and status code.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		dbDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration by operation.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		dbPoolOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the database pool.",
			ConstLabels: labels,
		}),
		dbPoolIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the database pool.",
			ConstLabels: labels,
		}),
		dbPoolInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "In-use connections in the database pool.",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTP records one handled HTTP request.
func (m *Metrics) ObserveHTTP(method, path, status string, duration time.Duration) {
	m.httpDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	m.httpRequests.WithLabelValues(method, path, status).Inc()
}

// ObserveDBQuery records one database query.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetPoolStats publishes the current connection pool numbers.
func (m *Metrics) SetPoolStats(open, idle, inUse int) {
	m.dbPoolOpen.Set(float64(open))
	m.dbPoolIdle.Set(float64(idle))
	m.dbPoolInUse.Set(float64(inUse))
}
