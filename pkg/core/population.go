package core

import "sort"

// Population is the candidate arena for one generation. Generations replace
// the arena wholesale, so candidates are never aliased across generations
// except through explicit cloning (elites).
type Population struct {
	Candidates []*Candidate
	Generation int
}

// NewPopulation creates a population for the given generation number.
func NewPopulation(generation int, candidates []*Candidate) *Population {
	return &Population{
		Candidates: candidates,
		Generation: generation,
	}
}

// Size returns the number of candidates in the arena.
func (p *Population) Size() int {
	return len(p.Candidates)
}

// Best returns the candidate ranked first by less, or nil for an empty
// population.
func (p *Population) Best(less func(a, b *Candidate) bool) *Candidate {
	if len(p.Candidates) == 0 {
		return nil
	}
	best := p.Candidates[0]
	for _, c := range p.Candidates[1:] {
		if less(c, best) {
			best = c
		}
	}
	return best
}

// Sort orders the arena in place by less. Sorting is stable so equally
// ranked candidates keep their insertion order, which keeps elite selection
// deterministic under a fixed seed.
func (p *Population) Sort(less func(a, b *Candidate) bool) {
	sort.SliceStable(p.Candidates, func(i, j int) bool {
		return less(p.Candidates[i], p.Candidates[j])
	})
}
