package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoyle/percolate/pkg/config"
	"github.com/cfoyle/percolate/pkg/logging"
	"github.com/cfoyle/percolate/pkg/metrics"
)

const cycleCSV = `Source,Target,Weight
A,B,1
B,C,1
C,D,1
D,E,1
E,A,1
`

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s := NewServer(config.Default(), logging.NewNopLogger(), metrics.NewRegistry())
	return s, s.Handler()
}

func loadTestGraph(t *testing.T, handler http.Handler) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graph", strings.NewReader(cycleCSV))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "graph load should succeed: %s", rec.Body.String())
}

func postJSON(handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.False(t, resp.GraphLoaded)
}

func TestGraphLoadAndStats(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Nodes)
	assert.Equal(t, 5, resp.Edges)
	assert.Equal(t, 1, resp.Components)
	assert.Equal(t, 5, resp.LargestComponent)
	assert.Equal(t, 2, resp.MaxDegree)
}

func TestGraphLoadRejectsBadCSV(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/graph", strings.NewReader("from,to\nA,B\n"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsWithoutGraph(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSimulateTargetedDegree(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	rec := postJSON(handler, "/simulate", SimulateRequest{
		TargetKind: "node",
		Strategy:   "targeted-degree",
		Fraction:   1.0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 5, resp.Steps)
	assert.Equal(t, 0, resp.Skipped)
	require.Len(t, resp.Points, 5)
	assert.Equal(t, 0.0, resp.Points[4].FractionRemaining)

	for i := 1; i < len(resp.Points); i++ {
		assert.LessOrEqual(t, resp.Points[i].FractionRemaining, resp.Points[i-1].FractionRemaining)
	}
}

func TestSimulateSeededRandomReproducible(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	req := SimulateRequest{TargetKind: "node", Strategy: "random", Fraction: 1.0, Seed: 7}

	var first, second SimulateResponse
	require.NoError(t, json.Unmarshal(postJSON(handler, "/simulate", req).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(postJSON(handler, "/simulate", req).Body.Bytes(), &second))

	assert.Equal(t, first.Points, second.Points)
}

func TestSimulateWithoutGraph(t *testing.T) {
	_, handler := newTestServer(t)

	rec := postJSON(handler, "/simulate", SimulateRequest{
		TargetKind: "node",
		Strategy:   "targeted-degree",
		Fraction:   1.0,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSimulateValidation(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	tests := []struct {
		name string
		req  SimulateRequest
	}{
		{"unknown strategy", SimulateRequest{TargetKind: "node", Strategy: "chaos", Fraction: 1.0}},
		{"unknown kind", SimulateRequest{TargetKind: "vertex", Strategy: "random", Fraction: 1.0}},
		{"fraction above 1", SimulateRequest{TargetKind: "node", Strategy: "random", Fraction: 2.0}},
		{"strategy kind mismatch", SimulateRequest{TargetKind: "edge", Strategy: "random", Fraction: 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(handler, "/simulate", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestSimulateBatch(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	rec := postJSON(handler, "/simulate/batch", BatchRequest{
		Jobs: []BatchJobRequest{
			{Name: "attack", TargetKind: "node", Strategy: "targeted-degree", Fraction: 1.0},
			{Name: "random", TargetKind: "node", Strategy: "random", Fraction: 1.0, Seed: 3},
			{Name: "edges", TargetKind: "edge", Strategy: "overlap-ascending", Fraction: 1.0},
		},
		Workers: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 3)

	for _, job := range resp.Jobs {
		assert.Empty(t, job.Error, "job %s should succeed", job.Name)
		assert.Len(t, job.Points, 5)
	}
	assert.Equal(t, "attack", resp.Jobs[0].Name)
}

func TestSimulateBatchValidation(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	rec := postJSON(handler, "/simulate/batch", BatchRequest{Jobs: nil})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	_, handler := newTestServer(t)
	loadTestGraph(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "percolate_graph_nodes_total")
}

func TestMethodNotAllowed(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/simulate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
