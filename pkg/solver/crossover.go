package solver

import (
	"math/rand"

	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

// crossover recombines two parents with order crossover (OX1) over their
// base orders and normalizes both offspring through PlanTrips. A child that
// cannot be normalized is replaced by a fresh random candidate rather than
// aborting the generation.
func crossover(p core.ProblemInstance, parent1, parent2 *core.Candidate, rng *rand.Rand) (*core.Candidate, *core.Candidate, error) {
	order1 := baseOrder(parent1.Path)
	order2 := baseOrder(parent2.Path)

	child1 := orderCrossover(order1, order2, rng)
	child2 := orderCrossover(order2, order1, rng)

	a, err := candidateFromOrder(p, child1, rng)
	if err != nil {
		return nil, nil, err
	}
	b, err := candidateFromOrder(p, child2, rng)
	if err != nil {
		return nil, nil, err
	}

	a.ParentIDs = []string{parent1.ID, parent2.ID}
	b.ParentIDs = []string{parent2.ID, parent1.ID}
	return a, b, nil
}

// orderCrossover keeps a random slice of the first parent in place and
// fills the remaining positions with the other parent's nodes in their
// relative order.
func orderCrossover(keep, fill []core.NodeID, rng *rand.Rand) []core.NodeID {
	n := len(keep)
	if n < 2 {
		return append([]core.NodeID(nil), keep...)
	}

	lo := rng.Intn(n)
	hi := rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}

	child := make([]core.NodeID, n)
	inSlice := make(map[core.NodeID]bool, hi-lo+1)
	for i := lo; i <= hi; i++ {
		child[i] = keep[i]
		inSlice[keep[i]] = true
	}

	pos := (hi + 1) % n
	for i := 0; i < n; i++ {
		node := fill[(hi+1+i)%n]
		if inSlice[node] {
			continue
		}
		child[pos] = node
		pos = (pos + 1) % n
	}

	return child
}

// candidateFromOrder normalizes an order into a candidate, regenerating a
// fresh shuffled candidate on repair failure. Any other error is passed
// through.
func candidateFromOrder(p core.ProblemInstance, order []core.NodeID, rng *rand.Rand) (*core.Candidate, error) {
	path, trips, err := PlanTrips(p, order)
	if err == nil {
		return core.NewCandidate(path, trips), nil
	}
	if errors.CodeOf(err) != errors.RepairFailure {
		return nil, err
	}

	fresh := shuffledOrder(goldNodes(p), rng)
	path, trips, err = PlanTrips(p, fresh)
	if err != nil {
		return nil, err
	}
	return core.NewCandidate(path, trips), nil
}
