package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/entity"
)

const namespace = "barangay"

// Outcome labels for classification counters
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the prometheus collectors of the service
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	classifications  *prometheus.CounterVec
	incidents        *prometheus.CounterVec
	providerDuration prometheus.Histogram
}

// New creates collectors registered on a dedicated registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classify calls by outcome.",
		}, []string{"outcome"}),
		incidents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classified_incidents_total",
			Help:      "Successful classifications by incident type and urgency level.",
		}, []string{"incident_type", "urgency_level"}),
		providerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of the generative model call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.classifications, m.incidents, m.providerDuration)
	return m
}

// Handler exposes the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveClassification records the outcome of one classify call.
// result is nil for failures.
func (m *Metrics) ObserveClassification(result *entity.Classification, providerElapsed time.Duration) {
	m.providerDuration.Observe(providerElapsed.Seconds())
	if result == nil {
		m.classifications.WithLabelValues(OutcomeError).Inc()
		return
	}
	m.classifications.WithLabelValues(OutcomeSuccess).Inc()
	m.incidents.WithLabelValues(string(result.IncidentType), string(result.UrgencyLevel)).Inc()
}
