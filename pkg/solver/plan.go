package solver

import (
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

// PlanTrips turns a visit order into a feasible Path+TripCounts pair. It is
// the single normalizer behind initialization, crossover and mutation, so
// every candidate entering the population satisfies the structural
// invariants: each trip starts and ends at the depot and its planned pickup
// never exceeds capacity.
//
// The walk drains each node at its first encounter, opening fresh trips as
// the carrier fills; a node holding more gold than one trip's capacity is
// revisited until empty. Later occurrences of an already drained node are
// dropped. An order that misses a gold-bearing node cannot be normalized
// and yields a RepairFailure.
func PlanTrips(p core.ProblemInstance, order []core.NodeID) (core.Path, core.TripCounts, error) {
	capacity := p.Capacity()
	if capacity <= 0 {
		// Guarded by instance validation; kept so a misuse cannot loop.
		return nil, nil, errors.New(errors.RepairFailure, "capacity admits no pickups")
	}

	remaining := make(map[core.NodeID]float64, len(order))
	pending := 0
	for _, node := range p.Nodes() {
		if gold := p.Gold(node); gold > 0 {
			remaining[node] = gold
			pending++
		}
	}

	var path core.Path
	var trips core.TripCounts
	load := 0.0
	visits := 0

	closeTrip := func() {
		if visits > 0 {
			trips = append(trips, visits)
			visits = 0
			load = 0
		}
	}

	for _, node := range order {
		left, ok := remaining[node]
		if !ok || left <= 0 {
			continue
		}

		for left > 0 {
			if load >= capacity {
				closeTrip()
			}
			pickup := capacity - load
			if pickup > left {
				pickup = left
			}
			path = append(path, node)
			visits++
			load += pickup
			left -= pickup
		}
		delete(remaining, node)
		pending--
	}
	closeTrip()

	if pending > 0 {
		missing := make([]core.NodeID, 0, pending)
		for node := range remaining {
			missing = append(missing, node)
		}
		return nil, nil, errors.WithFields(
			errors.New(errors.RepairFailure, "visit order misses gold-bearing nodes"),
			errors.Fields{"missing": len(missing)},
		)
	}

	return path, trips, nil
}

// baseOrder reduces a path to the order of first visits. Variation
// operators work on this permutation of gold-bearing nodes; PlanTrips
// re-expands the repeats a capacity overflow requires.
func baseOrder(path core.Path) []core.NodeID {
	seen := make(map[core.NodeID]bool, len(path))
	order := make([]core.NodeID, 0, len(path))
	for _, node := range path {
		if !seen[node] {
			seen[node] = true
			order = append(order, node)
		}
	}
	return order
}

// goldNodes lists the gold-bearing nodes in the instance's node order,
// which fixes the deterministic base ordering used by construction.
func goldNodes(p core.ProblemInstance) []core.NodeID {
	var nodes []core.NodeID
	for _, node := range p.Nodes() {
		if p.Gold(node) > 0 {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
