package solver

import (
	"math/rand"

	"github.com/aurumlabs/goldrush/pkg/core"
)

// Refiner applies first-improvement hill climbing to a candidate. Moves are
// tried in a fixed ordering (pairwise swap, then segment reversal, then
// relocation), each pair subsampled by density through the candidate's own
// RNG stream, and the whole invocation is bounded by an evaluation budget.
// A move is kept only on strict cost improvement, so refinement never
// returns a candidate worse than its input.
type Refiner struct {
	evaluator *Evaluator
	budget    int
}

// NewRefiner creates a refiner with the given per-invocation evaluation
// budget.
func NewRefiner(evaluator *Evaluator, budget int) *Refiner {
	return &Refiner{evaluator: evaluator, budget: budget}
}

type move struct {
	kind int // 0 swap, 1 reverse, 2 relocate
	i, j int
}

// Refine climbs from the candidate to a local optimum or until the budget
// is spent, whichever comes first.
func (r *Refiner) Refine(p core.ProblemInstance, c *core.Candidate, density float64, rng *rand.Rand) (*core.Candidate, error) {
	current := c
	currentCost, err := r.evaluator.Evaluate(p, current)
	if err != nil {
		return nil, err
	}

	budget := r.budget
	for budget > 0 {
		order := baseOrder(current.Path)
		if len(order) < 2 {
			return current, nil
		}

		improvedCandidate, improvedCost, spent, err := r.climbStep(p, order, currentCost, density, budget, rng)
		if err != nil {
			return nil, err
		}
		budget -= spent
		if improvedCandidate == nil {
			// Local optimum under the sampled neighborhood.
			return current, nil
		}
		improvedCandidate.ParentIDs = []string{current.ID}
		improvedCandidate.Generation = current.Generation
		current = improvedCandidate
		currentCost = improvedCost
	}

	return current, nil
}

// climbStep scans the neighborhood in its fixed ordering and returns the
// first strictly improving neighbor, or nil when none is found within the
// budget. The number of oracle evaluations spent is returned either way.
func (r *Refiner) climbStep(p core.ProblemInstance, order []core.NodeID, currentCost, density float64, budget int, rng *rand.Rand) (*core.Candidate, float64, int, error) {
	spent := 0
	n := len(order)

	for _, m := range neighborhood(n) {
		if spent >= budget {
			return nil, 0, spent, nil
		}
		// Density scales the sampled breadth of the neighborhood.
		if density < 1 && rng.Float64() >= density {
			continue
		}

		neighbor := applyMove(order, m)
		candidate, err := candidateFromOrder(p, neighbor, rng)
		if err != nil {
			return nil, 0, spent, err
		}

		cost, err := r.evaluator.Evaluate(p, candidate)
		spent++
		if err != nil {
			return nil, 0, spent, err
		}
		if cost < currentCost {
			return candidate, cost, spent, nil
		}
	}

	return nil, 0, spent, nil
}

// neighborhood enumerates the move ordering: all swaps, then all segment
// reversals, then all relocations. The ordering is fixed so behavior is
// reproducible under a fixed seed.
func neighborhood(n int) []move {
	var moves []move
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			moves = append(moves, move{kind: 0, i: i, j: j})
		}
	}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			moves = append(moves, move{kind: 1, i: i, j: j})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				moves = append(moves, move{kind: 2, i: i, j: j})
			}
		}
	}
	return moves
}

func applyMove(order []core.NodeID, m move) []core.NodeID {
	out := append([]core.NodeID(nil), order...)
	switch m.kind {
	case 0:
		out[m.i], out[m.j] = out[m.j], out[m.i]
	case 1:
		for i, j := m.i, m.j; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	default:
		node := out[m.i]
		out = append(out[:m.i], out[m.i+1:]...)
		rest := make([]core.NodeID, 0, len(order))
		rest = append(rest, out[:m.j]...)
		rest = append(rest, node)
		rest = append(rest, out[m.j:]...)
		out = rest
	}
	return out
}
