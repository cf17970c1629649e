package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/google/uuid"
)

// Candidate is one feasible Path+TripCounts pairing under search. It caches
// its evaluated cost; the cache is invalidated whenever the structure
// changes.
type Candidate struct {
	ID         string
	ParentIDs  []string
	Generation int

	Path  Path
	Trips TripCounts

	cost      float64
	evaluated bool
}

// NewCandidate creates a candidate owning the given path and trip counts.
func NewCandidate(path Path, trips TripCounts) *Candidate {
	return &Candidate{
		ID:    uuid.New().String(),
		Path:  path,
		Trips: trips,
	}
}

// Clone returns a deep copy with a fresh identity recording the lineage.
func (c *Candidate) Clone() *Candidate {
	return &Candidate{
		ID:         uuid.New().String(),
		ParentIDs:  []string{c.ID},
		Generation: c.Generation,
		Path:       c.Path.Clone(),
		Trips:      c.Trips.Clone(),
		cost:       c.cost,
		evaluated:  c.evaluated,
	}
}

// Touch invalidates the cached cost after a structural change.
func (c *Candidate) Touch() {
	c.evaluated = false
}

// SetCost records the evaluated cost for the current structure.
func (c *Candidate) SetCost(cost float64) {
	c.cost = cost
	c.evaluated = true
}

// Cost returns the cached cost and whether it is valid.
func (c *Candidate) Cost() (float64, bool) {
	return c.cost, c.evaluated
}

// Fingerprint returns a stable structural identity for memoization:
// candidates with identical paths and trip counts share a fingerprint
// regardless of their ID or lineage.
func (c *Candidate) Fingerprint() string {
	h := sha256.New()
	var buf [8]byte
	for _, node := range c.Path {
		h.Write([]byte(node))
		h.Write([]byte{0})
	}
	h.Write([]byte{0xff})
	for _, n := range c.Trips {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))[:32]
}
