// Package batch fans independent robustness simulations out across a worker
// pool. Every job receives its own clone of the base graph, so jobs share no
// state and the set runs embarrassingly parallel.
package batch

import (
	"math/rand"

	"github.com/cfoyle/percolate/pkg/graph"
	"github.com/cfoyle/percolate/pkg/logging"
	"github.com/cfoyle/percolate/pkg/robustness"
)

// Job describes one simulation: a ranking strategy applied to a fraction of
// the target elements, with a seed for the random strategy.
type Job struct {
	Name     string
	Kind     robustness.TargetKind
	Strategy robustness.Strategy
	Fraction float64
	Seed     int64
}

// Outcome pairs a job with its trajectory or failure.
type Outcome struct {
	Job    Job
	Result *robustness.Result
	Err    error
}

// RunAll executes all jobs against clones of base using up to workers
// goroutines and returns outcomes in job order. A nil logger defaults to a
// no-op logger.
func RunAll(base *graph.Graph, jobs []Job, workers int, logger logging.Logger) []Outcome {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	outcomes := make([]Outcome, len(jobs))
	pool := newWorkerPool(workers)

	for i, job := range jobs {
		i, job := i, job
		pool.submit(func() {
			result, err := runJob(base, job, logger)
			outcomes[i] = Outcome{Job: job, Result: result, Err: err}
		})
	}
	pool.wait()

	return outcomes
}

func runJob(base *graph.Graph, job Job, logger logging.Logger) (*robustness.Result, error) {
	var rng *rand.Rand
	if job.Strategy == robustness.StrategyRandom {
		rng = rand.New(rand.NewSource(job.Seed))
	}

	plan, err := robustness.ComputeOrder(base, job.Kind, job.Strategy, job.Fraction, rng)
	if err != nil {
		return nil, err
	}

	logger.Debug("batch job starting",
		logging.String("job", job.Name),
		logging.String("strategy", job.Strategy.String()),
		logging.String("kind", job.Kind.String()),
		logging.Int("steps", plan.Len()),
	)
	return robustness.Run(base, plan, logger)
}
