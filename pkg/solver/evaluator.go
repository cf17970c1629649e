package solver

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/aurumlabs/goldrush/pkg/cache"
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

// Evaluator wraps the cost oracle with a structural-fingerprint memoizer.
// Oracle errors are wrapped with the OracleFailure code, keeping the
// original error reachable through Unwrap; they are never retried.
type Evaluator struct {
	costs cache.CostCache
}

// NewEvaluator creates an evaluator over the given cost cache.
func NewEvaluator(costs cache.CostCache) *Evaluator {
	return &Evaluator{costs: costs}
}

// Evaluate returns the candidate's cost, consulting the candidate's own
// cached value, then the fingerprint cache, then the oracle.
func (e *Evaluator) Evaluate(p core.ProblemInstance, c *core.Candidate) (float64, error) {
	if cost, ok := c.Cost(); ok {
		return cost, nil
	}

	key := c.Fingerprint()
	if cost, ok := e.costs.Get(key); ok {
		c.SetCost(cost)
		return cost, nil
	}

	cost, err := p.Cost(c.Path, c.Trips)
	if err != nil {
		return 0, errors.Wrap(err, errors.OracleFailure, "cost oracle failed")
	}

	e.costs.Set(key, cost)
	c.SetCost(cost)
	return cost, nil
}

// EvaluatePopulation evaluates every candidate in the arena, fanning the
// oracle calls out over at most maxGoroutines workers. Candidates are
// distinct, evaluation is pure, and the cache is concurrency-safe, so the
// parallel schedule cannot change results. The first oracle error aborts
// the whole solve.
func (e *Evaluator) EvaluatePopulation(ctx context.Context, p core.ProblemInstance, pop *core.Population, maxGoroutines int) error {
	if err := errors.CheckContext(ctx, "population evaluation"); err != nil {
		return err
	}

	workers := pool.New().WithMaxGoroutines(maxGoroutines)

	var mu sync.Mutex
	var firstErr error

	for _, candidate := range pop.Candidates {
		candidate := candidate
		workers.Go(func() {
			if _, err := e.Evaluate(p, candidate); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
	}

	workers.Wait()
	return firstErr
}

// Stats exposes the underlying cache statistics for progress reporting.
func (e *Evaluator) Stats() cache.Stats {
	return e.costs.Stats()
}
