package core

// NodeID uniquely identifies a node in the problem graph.
type NodeID string

// Edge is a directed adjacency record with a non-negative traversal cost.
type Edge struct {
	To     NodeID
	Weight float64
}

// ProblemInstance is the caller-owned contract the solver consumes. It is
// read-only for the duration of a solve and may be shared across parallel
// evaluations.
//
// Cost must be deterministic for identical inputs. Baseline returns a
// reference cost (e.g. a naive single-trip-per-node tour) used for
// normalization and reporting. Oracle errors are propagated to the caller
// unchanged; the solver never retries them.
type ProblemInstance interface {
	// Graph accessors.
	Nodes() []NodeID
	Neighbors(node NodeID) []Edge
	Depot() NodeID
	Gold(node NodeID) float64
	Capacity() float64

	// Search parameters.
	Alpha() float64   // variation intensity, in [0, 1]
	Beta() float64    // exploitation trigger threshold
	Density() float64 // population/neighbor sampling fraction, in (0, 1]

	// Oracles.
	Cost(path Path, trips TripCounts) (float64, error)
	Baseline() (float64, error)
}

// Path is an ordered sequence of node visits. Depot returns are implicit at
// trip boundaries: each trip starts and ends at the depot.
type Path []NodeID

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// TripCounts partitions a path into trips: TripCounts[i] is the number of
// visits in trip i. The concatenation of trip segments reconstructs the path
// exactly, so the counts must sum to the path length and every count is >= 1.
type TripCounts []int

// Clone returns an independent copy of the trip counts.
func (t TripCounts) Clone() TripCounts {
	out := make(TripCounts, len(t))
	copy(out, t)
	return out
}

// Total returns the number of visits covered by all trips.
func (t TripCounts) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// ConsistentWith reports whether the counts partition the given path.
func (t TripCounts) ConsistentWith(p Path) bool {
	for _, n := range t {
		if n < 1 {
			return false
		}
	}
	return t.Total() == len(p)
}

// Pickup records the amount of gold collected at one visit.
type Pickup struct {
	Node NodeID
	Gold float64
}

// SolutionOutput is the externally consumed collection plan: pickups in
// visitation order of the winning path. Cumulative gold per node never
// exceeds that node's deposit.
type SolutionOutput []Pickup
