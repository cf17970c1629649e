// Package solver implements the adaptive hybrid solver for the gold
// collection problem: a genetic algorithm population search interleaved
// with hill climbing refinement, under a controller that adapts search
// intensity from observed convergence behavior.
//
// The entry points are AdaptiveSolve, which returns the best path, trip
// counts and cost found for a ProblemInstance, and ConvertSolution, which
// turns that internal representation into the ordered (node, gold) pickup
// sequence consumed by callers. Solve composes the two.
//
// All stochastic choices flow from a single seeded random source, so a run
// is reproducible given the same seed and problem instance.
package solver
