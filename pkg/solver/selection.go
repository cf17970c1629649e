package solver

import (
	"math/rand"

	"github.com/aurumlabs/goldrush/pkg/core"
)

// betterThan is the solver-wide ranking: lower cost wins, and on equal cost
// the candidate with fewer trips wins (fewer depot returns are assumed the
// cheaper baseline all else being equal). Candidates without an evaluated
// cost rank last.
func betterThan(a, b *core.Candidate) bool {
	costA, okA := a.Cost()
	costB, okB := b.Cost()
	if okA != okB {
		return okA
	}
	if !okA {
		return false
	}
	if costA != costB {
		return costA < costB
	}
	return len(a.Trips) < len(b.Trips)
}

// tournamentSelection draws count parents, each the winner of a small
// uniform tournament. Selection pressure comes from the tournament size.
func tournamentSelection(pop *core.Population, count, tournamentSize int, rng *rand.Rand) []*core.Candidate {
	selected := make([]*core.Candidate, 0, count)

	for i := 0; i < count; i++ {
		best := pop.Candidates[rng.Intn(len(pop.Candidates))]
		for j := 1; j < tournamentSize; j++ {
			challenger := pop.Candidates[rng.Intn(len(pop.Candidates))]
			if betterThan(challenger, best) {
				best = challenger
			}
		}
		selected = append(selected, best)
	}

	return selected
}

// rouletteSelection draws count parents with probability proportional to
// inverted cost, so cheaper candidates get the larger wheel slices.
func rouletteSelection(pop *core.Population, count int, rng *rand.Rand) []*core.Candidate {
	worst := 0.0
	for _, c := range pop.Candidates {
		if cost, ok := c.Cost(); ok && cost > worst {
			worst = cost
		}
	}

	weights := make([]float64, len(pop.Candidates))
	total := 0.0
	for i, c := range pop.Candidates {
		cost, ok := c.Cost()
		if !ok {
			continue
		}
		// Offset keeps the worst candidate on the wheel with a small slice.
		weights[i] = worst - cost + worst*0.05 + 1e-9
		total += weights[i]
	}

	if total == 0 {
		// No evaluated fitness yet; fall back to uniform draws.
		selected := make([]*core.Candidate, 0, count)
		for i := 0; i < count; i++ {
			selected = append(selected, pop.Candidates[rng.Intn(len(pop.Candidates))])
		}
		return selected
	}

	selected := make([]*core.Candidate, 0, count)
	for i := 0; i < count; i++ {
		spin := rng.Float64() * total
		cumulative := 0.0
		pick := pop.Candidates[len(pop.Candidates)-1]
		for j, w := range weights {
			cumulative += w
			if cumulative >= spin {
				pick = pop.Candidates[j]
				break
			}
		}
		selected = append(selected, pick)
	}

	return selected
}

// selectElite copies the top count candidates unmodified into the next
// generation.
func selectElite(pop *core.Population, count int) []*core.Candidate {
	if count <= 0 {
		return nil
	}
	if count > len(pop.Candidates) {
		count = len(pop.Candidates)
	}

	ranked := core.NewPopulation(pop.Generation, append([]*core.Candidate(nil), pop.Candidates...))
	ranked.Sort(betterThan)

	elite := make([]*core.Candidate, 0, count)
	for _, c := range ranked.Candidates[:count] {
		clone := c.Clone()
		clone.Generation = pop.Generation + 1
		elite = append(elite, clone)
	}
	return elite
}
