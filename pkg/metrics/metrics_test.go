package metrics

import (
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

var errTest = errors.New("ingest failed")

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.SimulationsTotal == nil {
		t.Error("SimulationsTotal not initialized")
	}
	if r.GraphNodesTotal == nil {
		t.Error("GraphNodesTotal not initialized")
	}
	if r.SkippedRemovalsTotal == nil {
		t.Error("SkippedRemovalsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()
	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("POST", "/simulate", "200", 100*time.Millisecond)
	r.RecordHTTPRequest("POST", "/simulate", "200", 50*time.Millisecond)
	r.RecordHTTPRequest("POST", "/simulate", "400", 5*time.Millisecond)

	counter, err := r.HTTPRequestsTotal.GetMetricWithLabelValues("POST", "/simulate", "200")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 2 {
		t.Errorf("Expected counter 2, got %v", got)
	}
}

func TestRecordSimulation(t *testing.T) {
	r := NewRegistry()

	r.RecordSimulation("targeted-degree", "node", "ok", 20*time.Millisecond, 100, 0)
	r.RecordSimulation("targeted-degree", "node", "ok", 30*time.Millisecond, 100, 3)
	r.RecordSimulation("random", "node", "error", time.Millisecond, 0, 0)

	counter, err := r.SimulationsTotal.GetMetricWithLabelValues("targeted-degree", "node", "ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 2 {
		t.Errorf("Expected 2 ok simulations, got %v", got)
	}

	var skipped dto.Metric
	if err := r.SkippedRemovalsTotal.Write(&skipped); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := skipped.GetCounter().GetValue(); got != 3 {
		t.Errorf("Expected 3 skipped removals, got %v", got)
	}
}

func TestUpdateGraphMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(100, 250)

	var nodes dto.Metric
	if err := r.GraphNodesTotal.Write(&nodes); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := nodes.GetGauge().GetValue(); got != 100 {
		t.Errorf("Expected 100 nodes, got %v", got)
	}

	var edges dto.Metric
	if err := r.GraphEdgesTotal.Write(&edges); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := edges.GetGauge().GetValue(); got != 250 {
		t.Errorf("Expected 250 edges, got %v", got)
	}
}

func TestRecordIngest(t *testing.T) {
	r := NewRegistry()

	r.RecordIngest(500, nil)
	r.RecordIngest(0, errTest)

	var ok dto.Metric
	if err := r.IngestEdgesTotal.Write(&ok); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := ok.GetCounter().GetValue(); got != 500 {
		t.Errorf("Expected 500 ingested edges, got %v", got)
	}

	var failed dto.Metric
	if err := r.IngestErrorsTotal.Write(&failed); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := failed.GetCounter().GetValue(); got != 1 {
		t.Errorf("Expected 1 ingest error, got %v", got)
	}
}
