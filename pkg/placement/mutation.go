package placement

import (
	"github.com/rehmanul/ilot-placement/pkg/catalog"
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
	"github.com/rehmanul/ilot-placement/pkg/rng"
)

// mutationKind names §4.4's three mutation operations. Mutate draws one of
// them uniformly; the three are equally likely.
type mutationKind int

const (
	mutateJitter mutationKind = iota
	mutateAdd
	mutateRemove
)

// Mutate applies, with probability params.MutationRate, exactly one of
// jitter/add/remove to c in place, then re-filters the îlot list for
// validity (§4.4). target supplies the bucket pool for the add operation.
func Mutate(c *ilot.Candidate, params Params, target catalog.Target, bounds geom.Rect, idx *obstacle.Index, ids *idSequence, r *rng.RNG) {
	if r.Float64() >= params.MutationRate {
		return
	}

	switch mutationKind(r.IntRange(0, 2)) {
	case mutateJitter:
		jitterIlot(c, bounds, params.JitterMax, r)
	case mutateAdd:
		addIlot(c, target, bounds, idx, params.MinClearance, params.MaxPlacementAttempts, ids, r)
	case mutateRemove:
		removeIlot(c, r)
	}

	refilterValidity(c, bounds, idx, params.MinClearance)
}

func jitterIlot(c *ilot.Candidate, bounds geom.Rect, jitterMax float64, r *rng.RNG) {
	if len(c.Ilots) == 0 {
		return
	}
	i := r.Intn(len(c.Ilots))
	dx := r.Float64Range(-jitterMax, jitterMax)
	dy := r.Float64Range(-jitterMax, jitterMax)

	fp := c.Ilots[i].Footprint()
	newX := clamp(c.Ilots[i].Position.X+dx, bounds.MinX(), bounds.MaxX()-fp.Width)
	newY := clamp(c.Ilots[i].Position.Y+dy, bounds.MinY(), bounds.MaxY()-fp.Height)
	c.Ilots[i].Position = geom.Point{X: newX, Y: newY}
}

func addIlot(c *ilot.Candidate, target catalog.Target, bounds geom.Rect, idx *obstacle.Index, minClearance float64, maxAttempts int, ids *idSequence, r *rng.RNG) {
	buckets := sortedBuckets(target.Counts)
	if len(buckets) == 0 {
		buckets = []ilot.SizeBucket{ilot.SizeSmall, ilot.SizeMedium, ilot.SizeLarge}
	}
	bucket := buckets[r.IntRange(0, len(buckets)-1)]
	placed, ok := tryPlaceIlot(bucket, ids.next(), bounds, idx, c.Ilots, minClearance, maxAttempts, r)
	if ok {
		c.Ilots = append(c.Ilots, placed)
	}
}

func removeIlot(c *ilot.Candidate, r *rng.RNG) {
	if len(c.Ilots) <= 1 {
		return
	}
	i := r.Intn(len(c.Ilots))
	c.Ilots = append(c.Ilots[:i], c.Ilots[i+1:]...)
}

// refilterValidity drops any îlot that no longer satisfies §4.4's validity
// contract against the static obstacle index and every îlot accepted
// before it in iteration order. Mutation (in particular jitter) can
// invalidate a previously-valid placement; this restores the invariant
// before the candidate is scored.
func refilterValidity(c *ilot.Candidate, bounds geom.Rect, idx *obstacle.Index, minClearance float64) {
	var kept []ilot.Ilot
	for _, il := range c.Ilots {
		if isValidPlacement(il.Footprint(), bounds, idx, kept, minClearance) {
			kept = append(kept, il)
		} else {
			c.AddDiagnostic("dropped ilot %q after mutation: no longer a valid placement", il.ID)
		}
	}
	c.Ilots = kept
}

func clamp(v, min, max float64) float64 {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
