// Package goldrush is an adaptive hybrid metaheuristic for planning gold
// collection tours on weighted graphs under a carrier capacity limit.
//
// A problem instance exposes a graph, a depot, per-node gold deposits and a
// black-box cost oracle. The solver searches for a visit order and a trip
// partition that collect all gold at minimal oracle cost, returning to the
// depot whenever the carrier is full.
//
// Key components:
//
//   - core: candidate representation (visit path plus per-trip counts),
//     instance validation and the ProblemInstance contract.
//
//   - solver: the search itself. A genetic algorithm over visit orders is
//     hybridized with first-improvement hill climbing, steered by a
//     two-mode adaptive controller that shifts effort between exploration
//     and exploitation as improvements slow down. ConvertSolution turns a
//     winning plan into the ordered pickup sequence.
//
//   - cache: LRU memoization of oracle evaluations keyed by structural
//     candidate fingerprints.
//
//   - config: solver tuning with validation and YAML loading.
//
//   - logging, errors: structured logging and coded errors shared across
//     the module.
//
// The entry points are solver.AdaptiveSolve, which returns the best plan
// and its cost, and solver.Solve, which also converts the plan into
// pickups. Runs are deterministic for a fixed seed.
package goldrush
