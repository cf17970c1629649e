package solver

import (
	"github.com/aurumlabs/goldrush/pkg/core"
	"github.com/aurumlabs/goldrush/pkg/errors"
)

// ConvertSolution maps a best path and its trip counts into the externally
// consumed pickup sequence. It replays the greedy collection plan: per
// trip, per visit, collect as much of the node's remaining gold as the
// carrier has room for. Visits to already drained nodes are omitted, so
// the cumulative pickup per node never exceeds its deposit.
//
// A path and trip counts that do not reconstruct consistently indicate a
// defect in the search operators, not bad input, and fail with
// ConversionInconsistency. The function is pure: converting the same pair
// twice yields identical output.
func ConvertSolution(p core.ProblemInstance, path core.Path, trips core.TripCounts) (core.SolutionOutput, error) {
	if !trips.ConsistentWith(path) {
		return nil, errors.WithFields(
			errors.New(errors.ConversionInconsistency, "trip counts do not reconstruct the path"),
			errors.Fields{"visits": len(path), "trip_total": trips.Total()},
		)
	}

	capacity := p.Capacity()
	remaining := make(map[core.NodeID]float64)
	for _, node := range p.Nodes() {
		remaining[node] = p.Gold(node)
	}

	output := make(core.SolutionOutput, 0, len(path))
	offset := 0
	for _, count := range trips {
		load := 0.0
		for _, node := range path[offset : offset+count] {
			left, ok := remaining[node]
			if !ok {
				return nil, errors.WithFields(
					errors.New(errors.ConversionInconsistency, "path visits a node outside the instance"),
					errors.Fields{"node": node},
				)
			}
			pickup := capacity - load
			if pickup > left {
				pickup = left
			}
			if pickup <= 0 {
				continue
			}
			output = append(output, core.Pickup{Node: node, Gold: pickup})
			remaining[node] -= pickup
			load += pickup
		}
		offset += count
	}

	return output, nil
}
