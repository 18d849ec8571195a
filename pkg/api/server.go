// Package api exposes the robustness simulation over HTTP: load an edge
// list, run removal simulations against it, and scrape metrics.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/cfoyle/percolate/pkg/config"
	"github.com/cfoyle/percolate/pkg/graph"
	"github.com/cfoyle/percolate/pkg/logging"
	"github.com/cfoyle/percolate/pkg/metrics"
)

// Server represents the HTTP API server. The loaded graph is swapped
// atomically by POST /graph and read under lock by simulations, which clone
// it before mutating anything.
type Server struct {
	mu        sync.RWMutex
	graph     *graph.Graph
	cfg       config.Config
	logger    logging.Logger
	metrics   *metrics.Registry
	startTime time.Time
	version   string
}

// NewServer creates a new API server. A nil logger defaults to the standard
// JSON logger; a nil registry defaults to the process-wide one.
func NewServer(cfg config.Config, logger logging.Logger, registry *metrics.Registry) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	return &Server{
		cfg:       cfg,
		logger:    logger,
		metrics:   registry,
		startTime: time.Now(),
		version:   "1.0.0",
	}
}

// Handler builds the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())

	// Graph endpoints
	mux.HandleFunc("/graph", s.handleGraph)
	mux.HandleFunc("/stats", s.handleStats)

	// Simulation endpoints
	mux.HandleFunc("/simulate", s.handleSimulate)
	mux.HandleFunc("/simulate/batch", s.handleSimulateBatch)

	return s.recoveryMiddleware(s.loggingMiddleware(s.metricsMiddleware(mux)))
}

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start() error {
	server := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
		IdleTimeout:  s.cfg.IdleTimeout(),
	}

	s.logger.Info("percolate API server starting",
		logging.String("addr", s.cfg.ListenAddr),
	)
	return server.ListenAndServe()
}

// currentGraph returns the loaded graph, or nil when none has been loaded.
func (s *Server) currentGraph() *graph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// setGraph swaps in a newly loaded graph.
func (s *Server) setGraph(g *graph.Graph) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
	s.metrics.UpdateGraphMetrics(g.NodeCount(), g.EdgeCount())
}
