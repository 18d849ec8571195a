// Package metrics exposes Prometheus instrumentation for the simulation
// service: HTTP traffic, graph loads, and simulation runs.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Graph Metrics
	GraphNodesTotal   prometheus.Gauge
	GraphEdgesTotal   prometheus.Gauge
	IngestEdgesTotal  prometheus.Counter
	IngestErrorsTotal prometheus.Counter

	// Simulation Metrics
	SimulationsTotal         *prometheus.CounterVec
	SimulationDuration       *prometheus.HistogramVec
	SimulationSteps          *prometheus.HistogramVec
	SkippedRemovalsTotal     prometheus.Counter
	BatchSimulationsInFlight prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// NewRegistry creates a Registry with all metrics registered against a fresh
// Prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initHTTPMetrics()
	r.initGraphMetrics()
	r.initSimulationMetrics()
	return r
}

// DefaultRegistry returns the process-wide registry instance.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Handler returns an HTTP handler serving the registry in Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
