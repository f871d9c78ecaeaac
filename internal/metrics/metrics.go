// Package metrics exposes Prometheus counters for the relay surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the relay. Each instance carries
// its own registry so servers and tests can be constructed independently.
type Metrics struct {
	registry *prometheus.Registry

	ToolInvocations *prometheus.CounterVec   // labels: tool, outcome
	ToolDuration    *prometheus.HistogramVec // labels: tool
	WebhookForwards *prometheus.CounterVec   // labels: outcome
	HTTPRequests    *prometheus.CounterVec   // labels: method, path, status
}

// NewMetrics registers and returns all relay metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ToolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_tool_invocations_total",
			Help: "Tool invocations by tool name and outcome",
		}, []string{"tool", "outcome"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "relay_tool_duration_seconds",
			Help:    "Tool invocation latency, dominated by the upstream call",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		WebhookForwards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_webhook_forwards_total",
			Help: "Inbound webhook alerts by forwarding outcome",
		}, []string{"outcome"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_http_requests_total",
			Help: "HTTP requests by method, path, and status",
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(
		m.ToolInvocations,
		m.ToolDuration,
		m.WebhookForwards,
		m.HTTPRequests,
	)

	return m
}

// Handler returns the exposition endpoint for this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
