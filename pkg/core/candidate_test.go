package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateCostCache(t *testing.T) {
	c := NewCandidate(Path{"A", "B"}, TripCounts{2})

	_, ok := c.Cost()
	assert.False(t, ok, "fresh candidate has no evaluated cost")

	c.SetCost(12.5)
	cost, ok := c.Cost()
	require.True(t, ok)
	assert.Equal(t, 12.5, cost)

	c.Touch()
	_, ok = c.Cost()
	assert.False(t, ok, "Touch invalidates the cached cost")
}

func TestCandidateClone(t *testing.T) {
	c := NewCandidate(Path{"A", "B", "C"}, TripCounts{2, 1})
	c.SetCost(7)

	clone := c.Clone()

	assert.NotEqual(t, c.ID, clone.ID)
	assert.Equal(t, []string{c.ID}, clone.ParentIDs)
	assert.Equal(t, c.Path, clone.Path)
	assert.Equal(t, c.Trips, clone.Trips)

	cost, ok := clone.Cost()
	require.True(t, ok)
	assert.Equal(t, 7.0, cost)

	// Deep copy: mutating the clone leaves the original untouched.
	clone.Path[0] = "Z"
	clone.Trips[0] = 99
	assert.Equal(t, NodeID("A"), c.Path[0])
	assert.Equal(t, 2, c.Trips[0])
}

func TestCandidateFingerprint(t *testing.T) {
	a := NewCandidate(Path{"A", "B"}, TripCounts{2})
	b := NewCandidate(Path{"A", "B"}, TripCounts{2})
	c := NewCandidate(Path{"A", "B"}, TripCounts{1, 1})
	d := NewCandidate(Path{"B", "A"}, TripCounts{2})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "identity is structural, not by ID")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "trip split changes identity")
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint(), "visit order changes identity")
}

func TestTripCountsConsistency(t *testing.T) {
	path := Path{"A", "B", "C"}

	assert.True(t, TripCounts{2, 1}.ConsistentWith(path))
	assert.True(t, TripCounts{3}.ConsistentWith(path))
	assert.False(t, TripCounts{2, 2}.ConsistentWith(path), "counts exceed path length")
	assert.False(t, TripCounts{3, 0}.ConsistentWith(path), "empty trip is invalid")
	assert.False(t, TripCounts{2}.ConsistentWith(path), "counts fall short of path length")
}

func TestPopulationBestAndSort(t *testing.T) {
	byCost := func(a, b *Candidate) bool {
		ca, _ := a.Cost()
		cb, _ := b.Cost()
		return ca < cb
	}

	mk := func(cost float64) *Candidate {
		c := NewCandidate(Path{"A"}, TripCounts{1})
		c.SetCost(cost)
		return c
	}

	pop := NewPopulation(0, []*Candidate{mk(5), mk(2), mk(9)})
	best := pop.Best(byCost)
	require.NotNil(t, best)
	cost, _ := best.Cost()
	assert.Equal(t, 2.0, cost)

	pop.Sort(byCost)
	first, _ := pop.Candidates[0].Cost()
	last, _ := pop.Candidates[2].Cost()
	assert.Equal(t, 2.0, first)
	assert.Equal(t, 9.0, last)

	empty := NewPopulation(0, nil)
	assert.Nil(t, empty.Best(byCost))
}

func TestDeterministicRNG(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "same seed yields same stream")
	}

	zero := NewRand(0)
	fixed := NewRand(defaultRNGSeed)
	assert.Equal(t, fixed.Int63(), zero.Int63(), "seed 0 maps to the fixed default")

	s1 := DeriveRand(NewRand(7), 1)
	s2 := DeriveRand(NewRand(7), 2)
	assert.NotEqual(t, s1.Int63(), s2.Int63(), "streams are decorrelated")

	r1 := DeriveRand(NewRand(7), 3)
	r2 := DeriveRand(NewRand(7), 3)
	assert.Equal(t, r1.Int63(), r2.Int63(), "derivation is deterministic")
}
