package core

import (
	"github.com/aurumlabs/goldrush/pkg/errors"
)

// ValidateInstance checks a problem instance for conditions that make any
// search pointless. It is called once before the search starts; failures
// carry the InfeasibleInstance code and the solver never attempts a search.
func ValidateInstance(p ProblemInstance) error {
	nodes := p.Nodes()
	depot := p.Depot()

	depotKnown := false
	anyGold := false
	for _, node := range nodes {
		if node == depot {
			depotKnown = true
		}
		gold := p.Gold(node)
		if gold < 0 {
			return errors.WithFields(
				errors.New(errors.InfeasibleInstance, "negative gold deposit"),
				errors.Fields{"node": node, "gold": gold},
			)
		}
		if gold > 0 {
			anyGold = true
		}
	}
	if !depotKnown {
		return errors.WithFields(
			errors.New(errors.InfeasibleInstance, "depot is not a node of the graph"),
			errors.Fields{"depot": depot},
		)
	}

	if anyGold && p.Capacity() <= 0 {
		return errors.WithFields(
			errors.New(errors.InfeasibleInstance, "capacity admits no collection"),
			errors.Fields{"capacity": p.Capacity()},
		)
	}

	// Every gold-bearing node must be reachable from the depot.
	reachable := reachableFrom(p, depot)
	for _, node := range nodes {
		if p.Gold(node) > 0 && !reachable[node] {
			return errors.WithFields(
				errors.New(errors.InfeasibleInstance, "gold-bearing node unreachable from depot"),
				errors.Fields{"node": node, "depot": depot},
			)
		}
	}

	return nil
}

// reachableFrom runs a breadth-first traversal over the adjacency view.
func reachableFrom(p ProblemInstance, start NodeID) map[NodeID]bool {
	seen := map[NodeID]bool{start: true}
	queue := []NodeID{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, edge := range p.Neighbors(node) {
			if !seen[edge.To] {
				seen[edge.To] = true
				queue = append(queue, edge.To)
			}
		}
	}
	return seen
}
