package placement

import (
	"fmt"
	"sort"

	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
	"github.com/rehmanul/ilot-placement/pkg/rng"
)

// idSequence issues deterministic, monotonically increasing îlot ids,
// shared across an entire Run so ids stay unique within a candidate and
// stable across generations regardless of which candidate mints them.
type idSequence struct{ n int }

func (s *idSequence) next() string {
	s.n++
	return fmt.Sprintf("ilot-%d", s.n)
}

// randomDimensions samples a width and height uniformly within bucket's
// side-length range (§4.4).
func randomDimensions(bucket ilot.SizeBucket, r *rng.RNG) (float64, float64) {
	min, max := bucket.SizeRange()
	return r.Float64Range(min, max), r.Float64Range(min, max)
}

// isValidPlacement checks §4.4's validity contract: entirely inside
// bounds, disjoint from static obstacles, disjoint from every already
// accepted îlot in the same candidate by at least minClearance.
func isValidPlacement(footprint geom.Rect, bounds geom.Rect, idx *obstacle.Index, accepted []ilot.Ilot, minClearance float64) bool {
	if !bounds.Contains(footprint) {
		return false
	}
	if !idx.IsDisjoint(footprint, minClearance) {
		return false
	}
	for _, other := range accepted {
		if footprint.Overlaps(other.Footprint(), minClearance) {
			return false
		}
	}
	return true
}

// tryPlaceIlot attempts up to maxAttempts random placements of a new îlot
// of the given bucket, returning the first valid one found.
func tryPlaceIlot(bucket ilot.SizeBucket, id string, bounds geom.Rect, idx *obstacle.Index, accepted []ilot.Ilot, minClearance float64, maxAttempts int, r *rng.RNG) (ilot.Ilot, bool) {
	rotations := ilot.ValidRotations
	for attempt := 0; attempt < maxAttempts; attempt++ {
		width, height := randomDimensions(bucket, r)
		rotation := rotations[r.IntRange(0, len(rotations)-1)]
		w, h := geom.RotatedDimensions(width, height, int(rotation))

		maxX := bounds.MaxX() - w
		maxY := bounds.MaxY() - h
		if maxX < bounds.MinX() || maxY < bounds.MinY() {
			continue
		}
		x := r.Float64Range(bounds.MinX(), maxX)
		y := r.Float64Range(bounds.MinY(), maxY)

		candidate := ilot.Ilot{
			ID:       id,
			Position: geom.Point{X: x, Y: y},
			Width:    width,
			Height:   height,
			Rotation: rotation,
			Bucket:   bucket,
		}
		if isValidPlacement(candidate.Footprint(), bounds, idx, accepted, minClearance) {
			return candidate, true
		}
	}
	return ilot.Ilot{}, false
}

// sortedBuckets returns target's size buckets in a stable, deterministic
// order (small, medium, large), so population generation never depends on
// Go's randomized map iteration order.
func sortedBuckets(counts map[ilot.SizeBucket]int) []ilot.SizeBucket {
	buckets := make([]ilot.SizeBucket, 0, len(counts))
	for b := range counts {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })
	return buckets
}

// generateCandidate builds one candidate targeting utilization (a fraction
// of each bucket's catalog count), placing îlots one at a time and
// dropping any that fail every placement attempt (§4.4).
func generateCandidate(counts map[ilot.SizeBucket]int, utilization float64, bounds geom.Rect, idx *obstacle.Index, minClearance float64, maxAttempts int, ids *idSequence, r *rng.RNG) *ilot.Candidate {
	c := ilot.NewCandidate()
	for _, bucket := range sortedBuckets(counts) {
		target := int(float64(counts[bucket])*utilization + 0.5)
		for i := 0; i < target; i++ {
			placed, ok := tryPlaceIlot(bucket, ids.next(), bounds, idx, c.Ilots, minClearance, maxAttempts, r)
			if !ok {
				c.AddDiagnostic("dropped %s ilot: no valid placement found in %d attempts", bucket, maxAttempts)
				continue
			}
			c.Ilots = append(c.Ilots, placed)
		}
	}
	return c
}
