package placement

import (
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
)

// Crossover implements §4.4's spatial crossover: split bounds by a vertical
// line at x = width/2. Inherit from p1 every îlot whose center lies left
// of the line, then try to inherit from p2 every îlot whose center lies
// right of the line, skipping any that would violate validity against the
// already-inherited set. New ids are minted for every inherited îlot
// (§9's "new ids are minted at copy time").
func Crossover(p1, p2 *ilot.Candidate, bounds geom.Rect, idx *obstacle.Index, minClearance float64, ids *idSequence) *ilot.Candidate {
	splitX := bounds.MinX() + bounds.Width/2
	child := ilot.NewCandidate()

	for _, il := range p1.Ilots {
		if il.Center().X >= splitX {
			continue
		}
		clone := il.Clone()
		clone.ID = ids.next()
		clone.CorridorConnections = nil
		child.Ilots = append(child.Ilots, clone)
	}

	for _, il := range p2.Ilots {
		if il.Center().X < splitX {
			continue
		}
		if !isValidPlacement(il.Footprint(), bounds, idx, child.Ilots, minClearance) {
			continue
		}
		clone := il.Clone()
		clone.ID = ids.next()
		clone.CorridorConnections = nil
		child.Ilots = append(child.Ilots, clone)
	}

	return child
}
