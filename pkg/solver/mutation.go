package solver

import (
	"math/rand"

	"github.com/aurumlabs/goldrush/pkg/core"
)

// mutate perturbs a candidate's base order in place on the candidate,
// re-normalizing through PlanTrips. alpha controls both the per-candidate
// mutation probability and how many operators are stacked; a skipped
// mutation returns the candidate unchanged.
func mutate(p core.ProblemInstance, c *core.Candidate, alpha float64, rng *rand.Rand) (*core.Candidate, error) {
	rate := 0.2 + 0.7*alpha
	if rng.Float64() >= rate {
		return c, nil
	}

	order := baseOrder(c.Path)
	if len(order) < 2 {
		return c, nil
	}

	ops := 1 + int(alpha*2)
	for i := 0; i < ops; i++ {
		switch rng.Intn(3) {
		case 0:
			swapNodes(order, rng)
		case 1:
			reverseSegment(order, rng)
		default:
			reinsertNode(order, rng)
		}
	}

	mutated, err := candidateFromOrder(p, order, rng)
	if err != nil {
		return nil, err
	}
	mutated.ParentIDs = []string{c.ID}
	mutated.Generation = c.Generation
	return mutated, nil
}

func swapNodes(order []core.NodeID, rng *rand.Rand) {
	i := rng.Intn(len(order))
	j := rng.Intn(len(order))
	order[i], order[j] = order[j], order[i]
}

func reverseSegment(order []core.NodeID, rng *rand.Rand) {
	i := rng.Intn(len(order))
	j := rng.Intn(len(order))
	if i > j {
		i, j = j, i
	}
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}

func reinsertNode(order []core.NodeID, rng *rand.Rand) {
	from := rng.Intn(len(order))
	node := order[from]
	rest := append(append([]core.NodeID(nil), order[:from]...), order[from+1:]...)
	to := rng.Intn(len(rest) + 1)

	copy(order, rest[:to])
	order[to] = node
	copy(order[to+1:], rest[to:])
}
