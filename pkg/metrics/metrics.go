package metrics

import "time"

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordResponseSize records the size of an HTTP response body
func (r *Registry) RecordResponseSize(method, path string, size float64) {
	r.HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(size)
}

// IncHTTPRequestsInFlight increments the in-flight request gauge
func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight decrements the in-flight request gauge
func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordSimulation records one simulation run with its duration, step count,
// and skipped removals
func (r *Registry) RecordSimulation(strategy, kind, status string, duration time.Duration, steps, skipped int) {
	r.SimulationsTotal.WithLabelValues(strategy, kind, status).Inc()
	r.SimulationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	r.SimulationSteps.WithLabelValues(kind).Observe(float64(steps))
	if skipped > 0 {
		r.SkippedRemovalsTotal.Add(float64(skipped))
	}
}

// UpdateGraphMetrics updates the loaded-graph gauges
func (r *Registry) UpdateGraphMetrics(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// RecordIngest records an edge-list load
func (r *Registry) RecordIngest(edges int, err error) {
	if err != nil {
		r.IngestErrorsTotal.Inc()
		return
	}
	r.IngestEdgesTotal.Add(float64(edges))
}
