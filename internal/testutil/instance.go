// Package testutil provides in-memory problem instances shared by tests.
package testutil

import (
	"container/heap"
	"fmt"
	"math"
	"sync"

	"github.com/aurumlabs/goldrush/pkg/core"
)

// Instance is a concrete, caller-style ProblemInstance backed by an
// undirected weighted graph. Its cost oracle charges every trip the
// shortest-path tour depot -> v1 -> ... -> vk -> depot.
type Instance struct {
	nodes    []core.NodeID
	adj      map[core.NodeID][]core.Edge
	gold     map[core.NodeID]float64
	depot    core.NodeID
	capacity float64

	alpha   float64
	beta    float64
	density float64

	mu    sync.Mutex
	dists map[core.NodeID]map[core.NodeID]float64

	// CostCalls counts oracle invocations, for memoization assertions.
	CostCalls int
}

// NewInstance creates an empty instance anchored at depot. The depot is
// always part of the node set.
func NewInstance(depot core.NodeID, capacity float64) *Instance {
	inst := &Instance{
		adj:      make(map[core.NodeID][]core.Edge),
		gold:     make(map[core.NodeID]float64),
		depot:    depot,
		capacity: capacity,
		alpha:    0.4,
		beta:     0.05,
		density:  0.5,
		dists:    make(map[core.NodeID]map[core.NodeID]float64),
	}
	inst.AddNode(depot, 0)
	return inst
}

// SetParams overrides the default alpha/beta/density tuning.
func (i *Instance) SetParams(alpha, beta, density float64) {
	i.alpha, i.beta, i.density = alpha, beta, density
}

// AddNode registers a node with its gold deposit.
func (i *Instance) AddNode(id core.NodeID, gold float64) {
	if _, ok := i.gold[id]; !ok {
		i.nodes = append(i.nodes, id)
	}
	i.gold[id] = gold
}

// AddEdge registers an undirected edge.
func (i *Instance) AddEdge(u, v core.NodeID, weight float64) {
	i.adj[u] = append(i.adj[u], core.Edge{To: v, Weight: weight})
	i.adj[v] = append(i.adj[v], core.Edge{To: u, Weight: weight})
}

func (i *Instance) Nodes() []core.NodeID                { return i.nodes }
func (i *Instance) Neighbors(n core.NodeID) []core.Edge { return i.adj[n] }
func (i *Instance) Depot() core.NodeID                  { return i.depot }
func (i *Instance) Gold(n core.NodeID) float64          { return i.gold[n] }
func (i *Instance) Capacity() float64                   { return i.capacity }
func (i *Instance) Alpha() float64                      { return i.alpha }
func (i *Instance) Beta() float64                       { return i.beta }
func (i *Instance) Density() float64                    { return i.density }

// Cost charges each trip its shortest-path tour cost from and back to the
// depot. Deterministic for identical inputs.
func (i *Instance) Cost(path core.Path, trips core.TripCounts) (float64, error) {
	i.mu.Lock()
	i.CostCalls++
	i.mu.Unlock()

	total := 0.0
	offset := 0
	for _, count := range trips {
		at := i.depot
		for _, node := range path[offset : offset+count] {
			d, err := i.dist(at, node)
			if err != nil {
				return 0, err
			}
			total += d
			at = node
		}
		back, err := i.dist(at, i.depot)
		if err != nil {
			return 0, err
		}
		total += back
		offset += count
	}
	return total, nil
}

// Baseline prices the naive plan of one dedicated out-and-back trip per
// required pickup at every gold-bearing node.
func (i *Instance) Baseline() (float64, error) {
	total := 0.0
	for _, node := range i.nodes {
		gold := i.gold[node]
		if gold <= 0 {
			continue
		}
		visits := 1
		if i.capacity > 0 {
			visits = int(math.Ceil(gold / i.capacity))
		}
		d, err := i.dist(i.depot, node)
		if err != nil {
			return 0, err
		}
		total += 2 * d * float64(visits)
	}
	return total, nil
}

func (i *Instance) dist(from, to core.NodeID) (float64, error) {
	if from == to {
		return 0, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	table, ok := i.dists[from]
	if !ok {
		table = i.dijkstra(from)
		i.dists[from] = table
	}
	d, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("no route from %s to %s", from, to)
	}
	return d, nil
}

type pqItem struct {
	node core.NodeID
	dist float64
}

type pq []pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(a, b int) bool  { return q[a].dist < q[b].dist }
func (q pq) Swap(a, b int)       { q[a], q[b] = q[b], q[a] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (i *Instance) dijkstra(from core.NodeID) map[core.NodeID]float64 {
	dist := map[core.NodeID]float64{from: 0}
	q := &pq{{node: from, dist: 0}}
	for q.Len() > 0 {
		item := heap.Pop(q).(pqItem)
		if item.dist > dist[item.node] {
			continue
		}
		for _, edge := range i.adj[item.node] {
			next := item.dist + edge.Weight
			if cur, ok := dist[edge.To]; !ok || next < cur {
				dist[edge.To] = next
				heap.Push(q, pqItem{node: edge.To, dist: next})
			}
		}
	}
	return dist
}

// FailingInstance wraps an Instance so either oracle can be forced to
// fail, for error propagation tests. A nil error delegates to the inner
// instance.
type FailingInstance struct {
	*Instance
	CostErr     error
	BaselineErr error
}

func (f *FailingInstance) Cost(path core.Path, trips core.TripCounts) (float64, error) {
	if f.CostErr != nil {
		return 0, f.CostErr
	}
	return f.Instance.Cost(path, trips)
}

func (f *FailingInstance) Baseline() (float64, error) {
	if f.BaselineErr != nil {
		return 0, f.BaselineErr
	}
	return f.Instance.Baseline()
}

// LineInstance builds depot--A--B in a line with the given weights and gold,
// the smallest interesting multi-trip topology.
func LineInstance(capacity, goldA, goldB float64) *Instance {
	inst := NewInstance("depot", capacity)
	inst.AddNode("A", goldA)
	inst.AddNode("B", goldB)
	inst.AddEdge("depot", "A", 1)
	inst.AddEdge("depot", "B", 2)
	inst.AddEdge("A", "B", 1)
	return inst
}

// RingInstance builds a ring of n gold nodes around the depot, each holding
// the given gold amount, with unit spoke and rim weights.
func RingInstance(n int, gold, capacity float64) *Instance {
	inst := NewInstance("depot", capacity)
	ids := make([]core.NodeID, n)
	for k := 0; k < n; k++ {
		ids[k] = core.NodeID(fmt.Sprintf("n%02d", k))
		inst.AddNode(ids[k], gold)
		inst.AddEdge("depot", ids[k], 1)
	}
	for k := 0; k < n; k++ {
		inst.AddEdge(ids[k], ids[(k+1)%n], 1)
	}
	return inst
}
