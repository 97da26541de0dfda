// Package metrics provides Prometheus metrics for the campus aggregator service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Store metrics
	storeOpLatency *prometheus.HistogramVec
	storeOpErrors  *prometheus.CounterVec

	// Domain metrics
	seedAttempts    *prometheus.CounterVec
	likeAdjustments *prometheus.CounterVec
	mediaReleases   *prometheus.CounterVec
	scoreOverwrites prometheus.Counter
	submissionCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "campus",
		subsystem:        "aggregator",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all Prometheus metrics on the configured registry.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.storeOpLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_operation_latency_milliseconds",
			Help:      "Document store operation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"operation"},
	)

	m.storeOpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_operation_errors_total",
			Help:      "Total number of failed document store operations",
		},
		[]string{"operation"},
	)

	m.seedAttempts = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "registry_seed_attempts_total",
			Help:      "Registry seeding attempts by outcome (inserted, existing, failed)",
		},
		[]string{"outcome"},
	)

	m.likeAdjustments = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "like_adjustments_total",
			Help:      "Like counter adjustments by direction",
		},
		[]string{"direction"},
	)

	m.mediaReleases = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "media_releases_total",
			Help:      "Media reference release attempts by outcome",
		},
		[]string{"outcome"},
	)

	m.scoreOverwrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_overwrites_total",
		Help:      "Total number of ledger score overwrites",
	})

	m.submissionCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "engagement_submissions",
		Help:      "Current number of engagement submissions tracked",
	})
}

// GetRegistry returns the registry metrics are served from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records the duration of one HTTP request.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordStoreOperation records the latency of a document store call.
func RecordStoreOperation(operation string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeOpLatency.WithLabelValues(operation).Observe(durationMs)
}

// RecordStoreError counts a failed document store call.
func RecordStoreError(operation string) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeOpErrors.WithLabelValues(operation).Inc()
}

// RecordSeedOutcome counts one per-name seeding attempt.
func RecordSeedOutcome(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.seedAttempts.WithLabelValues(outcome).Inc()
}

// RecordLikeAdjustment counts a like counter delta by direction.
func RecordLikeAdjustment(direction string) {
	if !globalManager.enabled {
		return
	}
	globalManager.likeAdjustments.WithLabelValues(direction).Inc()
}

// RecordMediaRelease counts a media release attempt by outcome.
func RecordMediaRelease(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.mediaReleases.WithLabelValues(outcome).Inc()
}

// RecordScoreOverwrite counts one ledger overwrite.
func RecordScoreOverwrite() {
	if !globalManager.enabled {
		return
	}
	globalManager.scoreOverwrites.Inc()
}

// UpdateSubmissionCount sets the tracked submission gauge.
func UpdateSubmissionCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.submissionCount.Set(float64(count))
}
