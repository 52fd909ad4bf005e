package ilot

import (
	"fmt"

	"github.com/rehmanul/ilot-placement/pkg/geom"
)

// ADAMinWidth is the minimum corridor width (meters) the fitness evaluator's
// ada-compliance metric checks against (§4.7).
const ADAMinWidth = 1.22

// Corridor is an orthogonal path connecting two or more îlots, owned by
// exactly one Candidate.
type Corridor struct {
	ID    string        `json:"id"`
	Path  geom.Polyline `json:"path"`
	Width float64       `json:"width"`

	// ConnectedIlots holds the ids of every îlot (or, for Stage-A row
	// corridors, every îlot in either row) this corridor links.
	ConnectedIlots []string `json:"connectedIlots"`

	// Accessible is true when the corridor's width satisfies the ADA
	// minimum (§3: "accessible flag = (width >= ADA minimum)"; §8.4: false
	// for width < 1.22m). For Stage-B corridors this is further gated on a
	// full A* path having been found: a corridor wide enough for ADA but
	// only realized by the direct-line fallback is not accessible either
	// (§4.6's fallback reconciliation). The fallback distinction itself is
	// recorded separately, via Candidate.Diagnostics.
	Accessible bool `json:"accessible"`
}

// Length returns the sum of segment lengths of the corridor's path.
func (c Corridor) Length() float64 {
	return c.Path.Length()
}

// Validate checks the corridor's geometric invariants.
func (c Corridor) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("corridor: id must not be empty")
	}
	if err := c.Path.Validate(); err != nil {
		return fmt.Errorf("corridor %q path: %w", c.ID, err)
	}
	if c.Width <= 0 {
		return fmt.Errorf("corridor %q width must be > 0, got %v", c.ID, c.Width)
	}
	if len(c.ConnectedIlots) == 0 {
		return fmt.Errorf("corridor %q must connect at least one ilot", c.ID)
	}
	return nil
}

// MeetsADA reports whether the corridor's width satisfies the ADA minimum.
func (c Corridor) MeetsADA() bool {
	return c.Width >= ADAMinWidth
}

// Clone returns a deep copy of the corridor.
func (c Corridor) Clone() Corridor {
	clone := c
	clone.Path = geom.Polyline{Points: append([]geom.Point(nil), c.Path.Points...)}
	clone.ConnectedIlots = append([]string(nil), c.ConnectedIlots...)
	return clone
}
