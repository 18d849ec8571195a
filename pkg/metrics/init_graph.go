package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "percolate_graph_nodes_total",
			Help: "Number of nodes in the currently loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "percolate_graph_edges_total",
			Help: "Number of edges in the currently loaded graph",
		},
	)

	r.IngestEdgesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "percolate_ingest_edges_total",
			Help: "Total number of edge records ingested",
		},
	)

	r.IngestErrorsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "percolate_ingest_errors_total",
			Help: "Total number of edge-list loads that failed",
		},
	)
}
