package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricChatReply            = "chat.reply"
	MetricChatRemoteDegraded   = "chat.remote.degraded"
	MetricChatRemoteLatency    = "chat.remote"
	MetricChatActiveSessions   = "chat.sessions.active"
	MetricDashboardFetchFailed = "dashboard.fetch.failed"
	MetricDashboardBuild       = "dashboard.build"
	MetricFormSubmission       = "form.submission"
	MetricBackendRequest       = "backend.request"
	MetricCircuitBreakerState  = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	chatReplies         *prometheus.CounterVec
	chatDegradations    *prometheus.CounterVec
	chatRemoteDuration  prometheus.Histogram
	chatActiveSessions  prometheus.Gauge
	dashboardFailures   *prometheus.CounterVec
	dashboardDuration   prometheus.Histogram
	formSubmissions     *prometheus.CounterVec
	backendRequests     *prometheus.CounterVec
	backendDuration     *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with the default registry
func NewPrometheusMetrics() *PrometheusMetrics {
	return newPrometheusMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewPrometheusMetricsWithRegistry registers the collectors with reg; tests use a fresh registry
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	return newPrometheusMetrics(promauto.With(reg))
}

func newPrometheusMetrics(factory promauto.Factory) *PrometheusMetrics {
	return &PrometheusMetrics{
		chatReplies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_replies_total",
				Help: "Total number of chat replies by source",
			},
			[]string{"source"},
		),
		chatDegradations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_remote_degradations_total",
				Help: "Total number of sessions that switched to fallback replies",
			},
			[]string{"reasoner"},
		),
		chatRemoteDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chat_remote_duration_milliseconds",
				Help:    "Remote reasoner call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		chatActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "chat_active_sessions",
				Help: "Current number of chat sessions held in memory",
			},
		),
		dashboardFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_fetch_failures_total",
				Help: "Total number of failed dashboard fetches by source",
			},
			[]string{"source"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Time to fetch and aggregate the dashboard summary in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		formSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_submissions_total",
				Help: "Total number of form submissions by operation and status",
			},
			[]string{"operation", "status"},
		),
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of finance backend requests by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		backendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_milliseconds",
				Help:    "Finance backend request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricChatReply:
		m.chatReplies.WithLabelValues(tags["source"]).Inc()
	case MetricChatRemoteDegraded:
		m.chatDegradations.WithLabelValues(tags["reasoner"]).Inc()
	case MetricDashboardFetchFailed:
		m.dashboardFailures.WithLabelValues(tags["source"]).Inc()
	case MetricFormSubmission:
		m.formSubmissions.WithLabelValues(tags["operation"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricChatRemoteLatency:
		m.chatRemoteDuration.Observe(float64(duration.Milliseconds()))
	case MetricDashboardBuild:
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricChatActiveSessions:
		m.chatActiveSessions.Set(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

// RecordBackendRequest lets PrometheusMetrics observe the backend client directly
func (m *PrometheusMetrics) RecordBackendRequest(operation, outcome string, duration time.Duration) {
	m.backendRequests.WithLabelValues(operation, outcome).Inc()
	m.backendDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}

// noopMetrics is used when no recorder is configured
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func metricsOrNoop(m MetricsRecorderInterface) MetricsRecorderInterface {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
