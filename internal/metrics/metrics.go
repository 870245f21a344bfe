package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the directory backend.
// Construct it once at router setup; promauto registers with the default
// registry.
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Sheet fetch pipeline metrics
	SheetFetchTotal        prometheus.CounterVec
	SheetFetchRetriesTotal prometheus.CounterVec
	SheetFetchDuration     prometheus.HistogramVec
	ProfessorsProjected    prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docentes_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docentes_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "docentes_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docentes_cache_hits_total",
				Help: "Total config cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docentes_cache_misses_total",
				Help: "Total config cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		SheetFetchTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docentes_sheet_fetch_total",
				Help: "Spreadsheet fetch pipeline runs by faculty and outcome",
			},
			[]string{"faculty", "outcome"},
		),
		SheetFetchRetriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docentes_sheet_fetch_retries_total",
				Help: "Retried spreadsheet fetch attempts by faculty",
			},
			[]string{"faculty"},
		),
		SheetFetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docentes_sheet_fetch_duration_seconds",
				Help:    "End-to-end fetch pipeline duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"faculty"},
		),
		ProfessorsProjected: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docentes_professors_projected_total",
				Help: "Professor records produced by the mapping engine",
			},
			[]string{"faculty"},
		),
	}
}
