package api

import "github.com/cfoyle/percolate/pkg/robustness"

// API Request/Response Types

// SimulateRequest represents a single simulation request.
type SimulateRequest struct {
	TargetKind string  `json:"target_kind" validate:"required,oneof=node edge"`
	Strategy   string  `json:"strategy" validate:"required,oneof=random targeted-degree overlap-ascending overlap-descending"`
	Fraction   float64 `json:"fraction" validate:"gte=0,lte=1"` // 0 means the configured default
	Seed       int64   `json:"seed"`
}

// SimulateResponse represents a completed simulation.
type SimulateResponse struct {
	RunID    string                       `json:"run_id"`
	Strategy string                       `json:"strategy"`
	Kind     string                       `json:"kind"`
	Steps    int                          `json:"steps"`
	Skipped  int                          `json:"skipped"`
	Points   []robustness.TrajectoryPoint `json:"points"`
	Time     string                       `json:"time"`
}

// BatchJobRequest represents one job inside a batch simulation request.
type BatchJobRequest struct {
	Name       string  `json:"name"`
	TargetKind string  `json:"target_kind" validate:"required,oneof=node edge"`
	Strategy   string  `json:"strategy" validate:"required,oneof=random targeted-degree overlap-ascending overlap-descending"`
	Fraction   float64 `json:"fraction" validate:"gte=0,lte=1"`
	Seed       int64   `json:"seed"`
}

// BatchRequest represents a batch of independent simulations.
type BatchRequest struct {
	Jobs    []BatchJobRequest `json:"jobs" validate:"required,min=1,max=64,dive"`
	Workers int               `json:"workers" validate:"gte=0,lte=64"` // 0 means the configured default
}

// BatchJobResponse represents one job outcome inside a batch response.
type BatchJobResponse struct {
	Name     string                       `json:"name"`
	Strategy string                       `json:"strategy"`
	Kind     string                       `json:"kind"`
	Error    string                       `json:"error,omitempty"`
	Skipped  int                          `json:"skipped"`
	Points   []robustness.TrajectoryPoint `json:"points,omitempty"`
}

// BatchResponse represents a completed batch of simulations.
type BatchResponse struct {
	RunID string             `json:"run_id"`
	Jobs  []BatchJobResponse `json:"jobs"`
	Time  string             `json:"time"`
}

// GraphResponse describes the currently loaded graph.
type GraphResponse struct {
	Nodes            int `json:"nodes"`
	Edges            int `json:"edges"`
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`
	MaxDegree        int `json:"max_degree"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	GraphLoaded bool   `json:"graph_loaded"`
}

// ErrorResponse is the error payload returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
