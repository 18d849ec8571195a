package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.SimulationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "percolate_simulations_total",
			Help: "Total number of robustness simulations executed",
		},
		[]string{"strategy", "kind", "status"},
	)

	r.SimulationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "percolate_simulation_duration_seconds",
			Help:    "Robustness simulation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"strategy"},
	)

	r.SimulationSteps = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "percolate_simulation_steps",
			Help:    "Number of removal steps per simulation",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"kind"},
	)

	r.SkippedRemovalsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "percolate_skipped_removals_total",
			Help: "Total number of removal targets already missing when their step ran",
		},
	)

	r.BatchSimulationsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "percolate_batch_simulations_in_flight",
			Help: "Number of batch simulation jobs currently running",
		},
	)
}
