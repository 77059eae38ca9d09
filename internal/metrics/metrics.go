package metrics

import "github.com/prometheus/client_golang/prometheus"

// Core Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adscout",
			Name:      "search_requests_total",
			Help:      "Total number of search requests served, by retrieval engine",
		},
		[]string{"engine"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adscout",
			Name:      "search_duration_seconds",
			Help:      "Search request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"engine"},
	)

	InsightRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adscout",
			Name:      "insight_requests_total",
			Help:      "Total number of insight requests, by producing source",
		},
		[]string{"source"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adscout",
			Name:      "provider_requests_total",
			Help:      "Total content-provider attempts",
		},
		[]string{"provider", "status"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adscout",
			Name:      "provider_request_duration_seconds",
			Help:      "Content-provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"provider"},
	)

	EncoderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adscout",
			Name:      "encoder_requests_total",
			Help:      "Total query-encoder requests",
		},
		[]string{"model", "status"},
	)

	EncoderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adscout",
			Name:      "encoder_request_duration_seconds",
			Help:      "Query-encoder request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"model"},
	)
)

var coreMetricsRegistered bool

// RegisterCoreMetrics registers core Prometheus metrics. Must be called once from main.
func RegisterCoreMetrics() {
	if coreMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(InsightRequestsTotal)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderRequestDuration)
	prometheus.MustRegister(EncoderRequestsTotal)
	prometheus.MustRegister(EncoderRequestDuration)
	coreMetricsRegistered = true
}
