package solver

import (
	"context"
	"math/rand"
	"time"

	"github.com/aurumlabs/goldrush/pkg/cache"
	"github.com/aurumlabs/goldrush/pkg/config"
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
	"github.com/aurumlabs/goldrush/pkg/logging"
)

// Solver runs the adaptive hybrid search. A Solver is reusable across
// problem instances; each AdaptiveSolve call derives its own random stream
// from the configured seed, so runs do not interfere.
type Solver struct {
	cfg    config.SolverConfig
	logger *logging.Logger
	costs  cache.CostCache
}

// Option configures a Solver.
type Option func(*Solver)

// WithConfig replaces the whole solver configuration.
func WithConfig(cfg config.SolverConfig) Option {
	return func(s *Solver) {
		s.cfg = cfg
	}
}

// WithSeed fixes the random seed. Seed 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(s *Solver) {
		s.cfg.Seed = seed
	}
}

// WithLogger replaces the global logger for this solver.
func WithLogger(l *logging.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// WithCostCache replaces the fitness memoization backend.
func WithCostCache(c cache.CostCache) Option {
	return func(s *Solver) {
		s.costs = c
	}
}

// New creates a solver with the default configuration, applying any
// options. The configuration is validated; invalid options panic here
// rather than failing mid-search.
func New(opts ...Option) *Solver {
	s := &Solver{
		cfg:    config.DefaultSolverConfig(),
		logger: logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.costs == nil {
		s.costs = cache.NewMemoryCache(s.cfg.CacheEntries)
	}
	if err := s.cfg.Validate(); err != nil {
		panic(err)
	}
	return s
}

// AdaptiveSolve searches for the cheapest collection plan and returns the
// best path, its trip counts and its cost. Context cancellation and the
// configured budgets terminate the search cleanly with the best candidate
// found so far; instance infeasibility and oracle failures are returned as
// errors.
func (s *Solver) AdaptiveSolve(ctx context.Context, p core.ProblemInstance) (core.Path, core.TripCounts, float64, error) {
	if err := core.ValidateInstance(p); err != nil {
		return nil, nil, 0, err
	}

	baseline, err := p.Baseline()
	if err != nil {
		return nil, nil, 0, errors.Wrap(err, errors.OracleFailure, "baseline oracle failed")
	}

	// Nothing to collect: the empty plan is optimal.
	if len(goldNodes(p)) == 0 {
		cost, err := p.Cost(core.Path{}, core.TripCounts{})
		if err != nil {
			return nil, nil, 0, errors.Wrap(err, errors.OracleFailure, "cost oracle failed")
		}
		return core.Path{}, core.TripCounts{}, cost, nil
	}

	rng := core.NewRand(s.cfg.Seed)
	evaluator := NewEvaluator(s.costs)
	refiner := NewRefiner(evaluator, s.cfg.HillClimbBudget)
	controller := NewController(p, s.cfg.ImprovementWindow)

	pop, err := initialPopulation(p, s.cfg.PopulationSize, rng)
	if err != nil {
		return nil, nil, 0, err
	}

	s.logger.Info(ctx, "Starting adaptive solve: population_size=%d, max_generations=%d, baseline=%.4f",
		s.cfg.PopulationSize, s.cfg.MaxGenerations, baseline)

	var deadline time.Time
	if s.cfg.TimeBudget > 0 {
		deadline = time.Now().Add(s.cfg.TimeBudget)
	}

	denom := baseline
	if denom <= 0 {
		denom = 1
	}

	var best *core.Candidate
	bestCost := 0.0
	stagnation := 0

	for generation := 0; generation < s.cfg.MaxGenerations; generation++ {
		if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
			s.logger.Info(ctx, "Budget reached at generation %d, returning best so far", generation)
			break
		}

		genCtx := logging.WithGeneration(ctx, generation)
		pop.Generation = generation

		if err := evaluator.EvaluatePopulation(genCtx, p, pop, s.cfg.MaxGoroutines); err != nil {
			if errors.CodeOf(err) == errors.Canceled || errors.CodeOf(err) == errors.Timeout {
				break
			}
			return nil, nil, 0, err
		}

		// Hill climbing on the most promising candidates, breadth set by
		// the controller. Each candidate climbs on its own derived stream.
		pop.Sort(betterThan)
		refineCount := controller.RefineCount(pop.Size())
		for i := 0; i < refineCount; i++ {
			stream := uint64(generation)*uint64(pop.Size()) + uint64(i)
			refined, err := refiner.Refine(p, pop.Candidates[i], controller.Density(), core.DeriveRand(rng, stream))
			if err != nil {
				return nil, nil, 0, err
			}
			pop.Candidates[i] = refined
		}

		generationBest := pop.Best(betterThan)
		generationCost, _ := generationBest.Cost()

		improvement := 0.0
		if best == nil || betterThan(generationBest, best) {
			if best != nil {
				improvement = (bestCost - generationCost) / denom
			}
			best = generationBest.Clone()
			bestCost = generationCost
			stagnation = 0
		} else {
			stagnation++
		}

		controller.Observe(improvement)

		s.logger.Debug(logging.WithSearchInfo(genCtx, &logging.SearchInfo{
			BestCost:    bestCost,
			Improvement: improvement,
			Mode:        controller.Mode().String(),
		}), "Generation complete: alpha=%.3f, density=%.3f, refined=%d",
			controller.Alpha(), controller.Density(), refineCount)

		if stagnation >= s.cfg.StagnationLimit {
			s.logger.Info(genCtx, "No improvement for %d generations, stopping", stagnation)
			break
		}
		if improvement > 0 && improvement < s.cfg.ConvergenceThreshold && controller.Mode() == ModeExploiting {
			s.logger.Info(genCtx, "Improvements below convergence threshold, stopping")
			break
		}

		if generation < s.cfg.MaxGenerations-1 {
			pop, err = s.evolve(p, pop, controller, rng)
			if err != nil {
				return nil, nil, 0, err
			}
		}
	}

	if best == nil {
		// The budget expired before the first evaluation finished.
		return nil, nil, 0, errors.New(errors.Canceled, "search canceled before any candidate was evaluated")
	}

	s.logger.Info(ctx, "Solve complete: best_cost=%.4f, baseline=%.4f, trips=%d, cache_hits=%d",
		bestCost, baseline, len(best.Trips), evaluator.Stats().Hits)

	return best.Path, best.Trips, bestCost, nil
}

// evolve builds the next generation arena: elites carried unmodified, the
// remainder bred by tournament selection, order crossover and mutation.
func (s *Solver) evolve(p core.ProblemInstance, pop *core.Population, controller *Controller, rng *rand.Rand) (*core.Population, error) {
	size := s.cfg.PopulationSize
	offspring := make([]*core.Candidate, 0, size)

	eliteCount := int(float64(size) * s.cfg.ElitismRate)
	offspring = append(offspring, selectElite(pop, eliteCount)...)

	// Softer selection pressure while exploring, harder while exploiting.
	var parents []*core.Candidate
	if controller.Mode() == ModeExploring {
		parents = rouletteSelection(pop, size/2, rng)
	} else {
		parents = tournamentSelection(pop, size/2, s.cfg.TournamentSize, rng)
	}

	for len(offspring) < size {
		parent1 := parents[rng.Intn(len(parents))]
		parent2 := parents[rng.Intn(len(parents))]
		for attempts := 0; parent2.ID == parent1.ID && len(parents) > 1 && attempts < 4; attempts++ {
			parent2 = parents[rng.Intn(len(parents))]
		}

		child1, child2, err := crossover(p, parent1, parent2, rng)
		if err != nil {
			return nil, err
		}

		child1, err = mutate(p, child1, controller.Alpha(), rng)
		if err != nil {
			return nil, err
		}
		child1.Generation = pop.Generation + 1
		offspring = append(offspring, child1)

		if len(offspring) < size {
			child2, err = mutate(p, child2, controller.Alpha(), rng)
			if err != nil {
				return nil, err
			}
			child2.Generation = pop.Generation + 1
			offspring = append(offspring, child2)
		}
	}

	return core.NewPopulation(pop.Generation+1, offspring), nil
}

// AdaptiveSolve runs the search with a one-shot solver.
func AdaptiveSolve(ctx context.Context, p core.ProblemInstance, opts ...Option) (core.Path, core.TripCounts, float64, error) {
	return New(opts...).AdaptiveSolve(ctx, p)
}

// Solve composes AdaptiveSolve and ConvertSolution: it returns the ordered
// pickup sequence for the best plan found.
func Solve(ctx context.Context, p core.ProblemInstance, opts ...Option) (core.SolutionOutput, error) {
	path, trips, _, err := AdaptiveSolve(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return ConvertSolution(p, path, trips)
}
