package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	RequestLatency *prometheus.HistogramVec
	Requests       *prometheus.CounterVec
	Comparisons    *prometheus.CounterVec
	CatalogSize    prometheus.Gauge
}

// New creates the metrics and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry() so servers can be built more than once.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stablecard_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stablecard_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		}, []string{"route", "method", "status"}),
		Comparisons: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stablecard_comparisons_total",
			Help: "Total issuer comparisons by mode (scored or unscored)",
		}, []string{"mode"}),
		CatalogSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stablecard_catalog_issuers",
			Help: "Number of issuers in the loaded catalog",
		}),
	}
}

func (m *Metrics) ObserveRequest(route, method, status string, durationSeconds float64) {
	m.RequestLatency.WithLabelValues(route, method).Observe(durationSeconds)
	m.Requests.WithLabelValues(route, method, status).Inc()
}

func (m *Metrics) IncrementComparisons(mode string) {
	m.Comparisons.WithLabelValues(mode).Inc()
}

func (m *Metrics) SetCatalogSize(n int) {
	m.CatalogSize.Set(float64(n))
}
