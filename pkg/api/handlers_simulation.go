package api

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cfoyle/percolate/pkg/batch"
	"github.com/cfoyle/percolate/pkg/logging"
	"github.com/cfoyle/percolate/pkg/robustness"
)

// handleSimulate runs a single removal simulation against the loaded graph.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req SimulateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	g := s.currentGraph()
	if g == nil {
		s.respondError(w, http.StatusConflict, "no graph loaded")
		return
	}

	kind, err := robustness.ParseTargetKind(req.TargetKind)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	strategy, err := robustness.ParseStrategy(req.Strategy)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	fraction := req.Fraction
	if fraction == 0 {
		fraction = s.cfg.DefaultFraction
	}

	var rng *rand.Rand
	if strategy == robustness.StrategyRandom {
		rng = rand.New(rand.NewSource(req.Seed))
	}

	start := time.Now()
	plan, err := robustness.ComputeOrder(g, kind, strategy, fraction, rng)
	if err != nil {
		s.metrics.RecordSimulation(req.Strategy, req.TargetKind, "error", time.Since(start), 0, 0)
		s.respondError(w, simulationErrorStatus(err), err.Error())
		return
	}

	result, err := robustness.Run(g, plan, s.logger)
	if err != nil {
		s.metrics.RecordSimulation(req.Strategy, req.TargetKind, "error", time.Since(start), 0, 0)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	elapsed := time.Since(start)
	s.metrics.RecordSimulation(req.Strategy, req.TargetKind, "ok", elapsed, len(result.Points), result.Skipped)

	runID := uuid.NewString()
	s.logger.Info("simulation complete",
		logging.String("run_id", runID),
		logging.String("strategy", req.Strategy),
		logging.String("kind", req.TargetKind),
		logging.Int("steps", len(result.Points)),
		logging.Int("skipped", result.Skipped),
		logging.Duration("elapsed", elapsed),
	)

	s.respondJSON(w, http.StatusOK, SimulateResponse{
		RunID:    runID,
		Strategy: req.Strategy,
		Kind:     req.TargetKind,
		Steps:    len(result.Points),
		Skipped:  result.Skipped,
		Points:   result.Points,
		Time:     elapsed.String(),
	})
}

// handleSimulateBatch fans independent simulations out across the worker
// pool, one graph clone per job.
func (s *Server) handleSimulateBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req BatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	g := s.currentGraph()
	if g == nil {
		s.respondError(w, http.StatusConflict, "no graph loaded")
		return
	}

	jobs := make([]batch.Job, 0, len(req.Jobs))
	for _, jr := range req.Jobs {
		kind, err := robustness.ParseTargetKind(jr.TargetKind)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		strategy, err := robustness.ParseStrategy(jr.Strategy)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		fraction := jr.Fraction
		if fraction == 0 {
			fraction = s.cfg.DefaultFraction
		}
		jobs = append(jobs, batch.Job{
			Name:     jr.Name,
			Kind:     kind,
			Strategy: strategy,
			Fraction: fraction,
			Seed:     jr.Seed,
		})
	}

	workers := req.Workers
	if workers == 0 {
		workers = s.cfg.BatchWorkers
	}

	s.metrics.BatchSimulationsInFlight.Add(float64(len(jobs)))
	start := time.Now()
	outcomes := batch.RunAll(g, jobs, workers, s.logger)
	elapsed := time.Since(start)
	s.metrics.BatchSimulationsInFlight.Sub(float64(len(jobs)))

	resp := BatchResponse{
		RunID: uuid.NewString(),
		Jobs:  make([]BatchJobResponse, 0, len(outcomes)),
		Time:  elapsed.String(),
	}
	for _, o := range outcomes {
		jr := BatchJobResponse{
			Name:     o.Job.Name,
			Strategy: o.Job.Strategy.String(),
			Kind:     o.Job.Kind.String(),
		}
		if o.Err != nil {
			jr.Error = o.Err.Error()
			s.metrics.RecordSimulation(jr.Strategy, jr.Kind, "error", elapsed, 0, 0)
		} else {
			jr.Skipped = o.Result.Skipped
			jr.Points = o.Result.Points
			s.metrics.RecordSimulation(jr.Strategy, jr.Kind, "ok", elapsed, len(o.Result.Points), o.Result.Skipped)
		}
		resp.Jobs = append(resp.Jobs, jr)
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// simulationErrorStatus maps plan computation errors onto HTTP statuses.
func simulationErrorStatus(err error) int {
	switch {
	case errors.Is(err, robustness.ErrEmptyGraph):
		return http.StatusUnprocessableEntity
	case errors.Is(err, robustness.ErrInvalidStrategy),
		errors.Is(err, robustness.ErrInvalidFraction),
		errors.Is(err, robustness.ErrUnknownStrategy),
		errors.Is(err, robustness.ErrUnknownTargetKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func timeSince(t time.Time) string {
	return time.Since(t).Round(time.Second).String()
}
