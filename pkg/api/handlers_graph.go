package api

import (
	"net/http"
	"strconv"

	"github.com/cfoyle/percolate/pkg/ingest"
	"github.com/cfoyle/percolate/pkg/logging"
)

// handleGraph loads a CSV edge list (Source,Target,Weight) posted as the
// request body and makes it the active graph.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	maxEdges := s.cfg.MaxEdges
	if v := r.URL.Query().Get("max_edges"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, "max_edges must be a non-negative integer")
			return
		}
		maxEdges = n
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBodySize)
	g, rows, err := ingest.LoadEdgeList(r.Body, ingest.Options{MaxEdges: maxEdges})
	s.metrics.RecordIngest(rows, err)
	if err != nil {
		s.logger.Warn("edge list load failed", logging.Error(err))
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.setGraph(g)
	s.logger.Info("graph loaded",
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("rows", rows),
	)

	s.respondJSON(w, http.StatusCreated, s.describeGraph())
}

// handleStats describes the currently loaded graph.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.currentGraph() == nil {
		s.respondError(w, http.StatusConflict, "no graph loaded")
		return
	}
	s.respondJSON(w, http.StatusOK, s.describeGraph())
}

func (s *Server) describeGraph() GraphResponse {
	g := s.currentGraph()
	components := g.ConnectedComponents()
	largest := 0
	for _, c := range components.Components {
		if c.Size > largest {
			largest = c.Size
		}
	}
	return GraphResponse{
		Nodes:            g.NodeCount(),
		Edges:            g.EdgeCount(),
		Components:       len(components.Components),
		LargestComponent: largest,
		MaxDegree:        g.ComputeDegreeStats().MaxDegree,
	}
}

// handleHealth reports liveness and whether a graph is loaded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Version:     s.version,
		Uptime:      timeSince(s.startTime),
		GraphLoaded: s.currentGraph() != nil,
	})
}
