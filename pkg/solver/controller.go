package solver

import "github.com/aurumlabs/goldrush/pkg/core"

// Mode is the controller's search temperature.
type Mode int

const (
	// ModeExploring favors mutation breadth over local search.
	ModeExploring Mode = iota
	// ModeExploiting favors dense local search over mutation.
	ModeExploiting
)

func (m Mode) String() string {
	if m == ModeExploiting {
		return "exploiting"
	}
	return "exploring"
}

// Clamp bounds for the adapted parameters. Adaptation moves in bounded
// steps inside these ranges, so parameters cannot oscillate unboundedly.
const (
	minAlpha   = 0.01
	maxAlpha   = 1.0
	minDensity = 0.05
	maxDensity = 1.0
	alphaStep  = 0.08
	fracStep   = 0.15
)

// Controller adapts search intensity from observed per-generation
// improvement. It is an explicit two-mode state machine: exploring (high
// mutation, sparse hill climbing) and exploiting (low mutation, dense hill
// climbing). Exploitation that stalls for a full window falls back to
// exploring, which prevents irrecoverable premature convergence.
type Controller struct {
	mode Mode

	alpha      float64 // current mutation intensity
	density    float64 // neighbor-sampling density for hill climbing
	hcFraction float64 // fraction of the population refined per generation

	beta       float64 // exploitation trigger threshold
	window     []float64
	windowSize int
	stalled    int
}

// NewController derives the initial controller state from the instance
// parameters, clamping them into their valid ranges.
func NewController(p core.ProblemInstance, windowSize int) *Controller {
	return &Controller{
		mode:       ModeExploring,
		alpha:      clamp(p.Alpha(), minAlpha, maxAlpha),
		density:    clamp(p.Density(), minDensity, maxDensity),
		hcFraction: 0.1,
		beta:       p.Beta(),
		windowSize: windowSize,
	}
}

// Observe records one generation's relative improvement and adapts the
// parameters. Transitions and step directions are pure functions of the
// observed window, so controller behavior is mechanically checkable.
func (c *Controller) Observe(improvement float64) {
	c.window = append(c.window, improvement)
	if len(c.window) > c.windowSize {
		c.window = c.window[1:]
	}
	if improvement <= 0 {
		c.stalled++
	} else {
		c.stalled = 0
	}

	if len(c.window) < c.windowSize {
		return
	}

	mean := 0.0
	for _, v := range c.window {
		mean += v
	}
	mean /= float64(len(c.window))

	switch c.mode {
	case ModeExploring:
		if mean < c.beta {
			// The broad search has flattened out; switch to refinement.
			c.mode = ModeExploiting
			c.window = c.window[:0]
			c.stalled = 0
		} else {
			c.alpha = clamp(c.alpha+alphaStep/2, minAlpha, maxAlpha)
		}
	case ModeExploiting:
		if c.stalled >= c.windowSize {
			// Exploitation stalled across the whole window; widen again.
			c.mode = ModeExploring
			c.window = c.window[:0]
			c.stalled = 0
		}
	}

	// Drift the knobs toward the current mode's posture, one bounded step
	// per generation.
	if c.mode == ModeExploiting {
		c.alpha = clamp(c.alpha-alphaStep, minAlpha, maxAlpha)
		c.hcFraction = clamp(c.hcFraction+fracStep, 0, 1)
		c.density = clamp(c.density+alphaStep, minDensity, maxDensity)
	} else {
		c.hcFraction = clamp(c.hcFraction-fracStep, 0.05, 1)
	}
}

// Mode returns the current search temperature.
func (c *Controller) Mode() Mode { return c.mode }

// Alpha returns the current mutation intensity.
func (c *Controller) Alpha() float64 { return c.alpha }

// Density returns the current neighbor-sampling density.
func (c *Controller) Density() float64 { return c.density }

// RefineCount returns how many of size candidates receive hill climbing
// this generation, always at least one.
func (c *Controller) RefineCount(size int) int {
	count := int(c.hcFraction * float64(size))
	if count < 1 {
		count = 1
	}
	if count > size {
		count = size
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
