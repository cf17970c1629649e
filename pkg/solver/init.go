package solver

import (
	"math/rand"

	"github.com/aurumlabs/goldrush/pkg/core"
)

// initialPopulation seeds the arena with feasible candidates: a mix of
// randomized nearest-neighbor tours anchored at the depot and pure shuffles
// for diversity. Every order is normalized through PlanTrips, so the
// population starts structurally valid.
func initialPopulation(p core.ProblemInstance, size int, rng *rand.Rand) (*core.Population, error) {
	nodes := goldNodes(p)
	candidates := make([]*core.Candidate, 0, size)

	for i := 0; i < size; i++ {
		var order []core.NodeID
		if i%2 == 0 {
			order = nearestNeighborOrder(p, nodes, rng)
		} else {
			order = shuffledOrder(nodes, rng)
		}

		path, trips, err := PlanTrips(p, order)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, core.NewCandidate(path, trips))
	}

	return core.NewPopulation(0, candidates), nil
}

// nearestNeighborOrder builds a depot-anchored greedy order over hop
// distance, with rng-perturbed tie breaking so repeated calls diversify.
// Unreachable-by-edge jumps fall back to appending the remaining nodes in
// shuffled order; the cost oracle prices the actual routes.
func nearestNeighborOrder(p core.ProblemInstance, nodes []core.NodeID, rng *rand.Rand) []core.NodeID {
	remaining := make(map[core.NodeID]bool, len(nodes))
	for _, n := range nodes {
		remaining[n] = true
	}

	order := make([]core.NodeID, 0, len(nodes))
	at := p.Depot()
	if remaining[at] {
		// Depot gold is free to collect first.
		order = append(order, at)
		delete(remaining, at)
	}

	for len(remaining) > 0 {
		var next core.NodeID
		best := -1.0
		for _, edge := range p.Neighbors(at) {
			if !remaining[edge.To] {
				continue
			}
			// Perturb the weight so greedy ties (and near ties) break
			// differently between population members.
			w := edge.Weight * (1 + 0.2*rng.Float64())
			if best < 0 || w < best {
				best = w
				next = edge.To
			}
		}
		if best < 0 {
			// No adjacent unvisited node; shuffle in whatever remains.
			rest := make([]core.NodeID, 0, len(remaining))
			for _, n := range nodes {
				if remaining[n] {
					rest = append(rest, n)
				}
			}
			rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
			return append(order, rest...)
		}
		order = append(order, next)
		delete(remaining, next)
		at = next
	}

	return order
}

// shuffledOrder returns an rng permutation of the gold nodes.
func shuffledOrder(nodes []core.NodeID, rng *rand.Rand) []core.NodeID {
	order := append([]core.NodeID(nil), nodes...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}
