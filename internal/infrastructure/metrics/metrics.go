package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Furniture-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Provider call duration
	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "provider_duration_seconds",
			Help:      "Chat-completion provider call duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"operation", "model"},
	)

	// Provider errors by type
	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "provider_errors_total",
			Help:      "Provider failures by operation and error type",
		},
		[]string{"operation", "error_type"},
	)

	// Token usage
	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "tokens_total",
			Help:      "Tokens reported by the provider",
		},
		[]string{"operation", "type"},
	)

	// Agent selections by source
	AgentSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "agent_selections_total",
			Help:      "Agent selections by source (model or fallback)",
		},
		[]string{"source"},
	)

	// Replies cut off by the token limit
	TruncatedReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture",
			Subsystem: "api",
			Name:      "truncated_replies_total",
			Help:      "Completions that stopped on the token limit",
		},
		[]string{"operation"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordProviderCall records a provider round trip
func RecordProviderCall(operation, model string, durationSec float64) {
	ProviderDuration.WithLabelValues(operation, model).Observe(durationSec)
}

// RecordProviderError records a provider failure
func RecordProviderError(operation, errorType string) {
	ProviderErrors.WithLabelValues(operation, errorType).Inc()
}

// RecordTokens records token usage
func RecordTokens(operation string, promptTokens, completionTokens int) {
	TokensTotal.WithLabelValues(operation, "prompt").Add(float64(promptTokens))
	TokensTotal.WithLabelValues(operation, "completion").Add(float64(completionTokens))
}

// RecordAgentSelection records whether the agent used the model answer or the fallback
func RecordAgentSelection(source string) {
	AgentSelections.WithLabelValues(source).Inc()
}

// RecordTruncatedReply records a length-limited completion
func RecordTruncatedReply(operation string) {
	TruncatedReplies.WithLabelValues(operation).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
