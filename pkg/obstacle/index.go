package obstacle

import (
	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/geom"
)

// gridBucketThreshold is the obstacle count above which Index additionally
// buckets its rectangle list into a uniform spatial grid, per §4.3.
const gridBucketThreshold = 500

// bucketCellSize is the side length (meters) of a spatial-index bucket.
const bucketCellSize = 5.0

// Index is the obstacle index built once per FloorPlan: a static rectangle
// list (the bounding rectangles of every wall and restricted zone) used for
// placement-time disjointness queries, and a Grid used for A* routing.
//
// Index is immutable after construction and safe for concurrent read access
// across candidates.
type Index struct {
	rects  []geom.Rect
	bucket map[cellKey][]int // populated only when len(rects) > gridBucketThreshold

	Grid *Grid
}

type cellKey struct{ cx, cy int }

// Build constructs the obstacle index from a classified FloorPlan. cellSize
// is the walkability grid's cell size in meters (§4.3 default 0.5);
// corridorWidth is used to inflate wall footprints by half their width
// before marking grid cells unwalkable, so corridors routed through the
// grid never clip a wall.
func Build(fp *floorplan.FloorPlan, cellSize, corridorWidth float64) *Index {
	rects := make([]geom.Rect, 0, len(fp.Walls)+len(fp.RestrictedZones))
	for _, w := range fp.Walls {
		rects = append(rects, w.Footprint)
	}
	for _, z := range fp.RestrictedZones {
		rects = append(rects, z.Bounds())
	}

	idx := &Index{rects: rects}
	if len(rects) > gridBucketThreshold {
		idx.bucket = buildBuckets(rects)
	}
	idx.Grid = buildWalkabilityGrid(fp, cellSize, corridorWidth)
	return idx
}

func buildBuckets(rects []geom.Rect) map[cellKey][]int {
	buckets := make(map[cellKey][]int)
	for i, r := range rects {
		minCX := int(r.MinX() / bucketCellSize)
		maxCX := int(r.MaxX() / bucketCellSize)
		minCY := int(r.MinY() / bucketCellSize)
		maxCY := int(r.MaxY() / bucketCellSize)
		for cx := minCX; cx <= maxCX; cx++ {
			for cy := minCY; cy <= maxCY; cy++ {
				key := cellKey{cx, cy}
				buckets[key] = append(buckets[key], i)
			}
		}
	}
	return buckets
}

// Rects returns the static obstacle rectangle list (walls + restricted-zone
// bounds). The returned slice must not be mutated by the caller.
func (idx *Index) Rects() []geom.Rect {
	return idx.rects
}

// IsDisjoint reports whether r, inflated by clearance on every side, is
// disjoint from every obstacle rectangle. When the index holds more than
// gridBucketThreshold obstacles, only rectangles in r's neighboring buckets
// are tested.
func (idx *Index) IsDisjoint(r geom.Rect, clearance float64) bool {
	if idx.bucket == nil {
		for _, obstacle := range idx.rects {
			if r.Overlaps(obstacle, clearance) {
				return false
			}
		}
		return true
	}

	reach := clearance + bucketCellSize
	minCX := int((r.MinX() - reach) / bucketCellSize)
	maxCX := int((r.MaxX() + reach) / bucketCellSize)
	minCY := int((r.MinY() - reach) / bucketCellSize)
	maxCY := int((r.MaxY() + reach) / bucketCellSize)

	seen := make(map[int]bool)
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			for _, i := range idx.bucket[cellKey{cx, cy}] {
				if seen[i] {
					continue
				}
				seen[i] = true
				if r.Overlaps(idx.rects[i], clearance) {
					return false
				}
			}
		}
	}
	return true
}
