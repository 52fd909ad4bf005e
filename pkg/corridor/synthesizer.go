package corridor

import (
	"fmt"
	"math"
	"sort"

	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
)

// Params configures corridor synthesis (§4.5, §4.6).
type Params struct {
	// CorridorWidth is the orthogonal corridor width in meters. Synthesis
	// uses it as given and does not enforce a minimum such as
	// ilot.ADAMinWidth.
	CorridorWidth float64

	// RowTolerance is the Y-center (or X-center) clustering tolerance for
	// row/column detection. Zero uses DefaultRowTolerance.
	RowTolerance float64

	// GapMax is the maximum facing-row gap eligible for a Stage-A
	// corridor. Zero uses DefaultGapMax.
	GapMax float64

	// PerimeterPass enables Stage C: optional top and bottom corridors at a
	// one-corridor-width margin outside the îlot bounding box, for external
	// access.
	PerimeterPass bool
}

func (p Params) rowTolerance() float64 {
	if p.RowTolerance > 0 {
		return p.RowTolerance
	}
	return DefaultRowTolerance
}

func (p Params) gapMax() float64 {
	if p.GapMax > 0 {
		return p.GapMax
	}
	return DefaultGapMax
}

// idCounter issues deterministic, sequential corridor ids.
type idCounter struct{ n int }

func (c *idCounter) next() string {
	c.n++
	return fmt.Sprintf("corridor-%d", c.n)
}

// Synthesize builds the corridor network connecting ilots, per §4.5
// (Stage A: straight corridors along facing rows) and §4.6 (Stage B:
// minimum-spanning-tree completion of residual components via A*
// routing), followed by an optional Stage C perimeter pass. grid is the
// walkability surface obstacles were rasterized onto (pkg/obstacle); its
// cell size determines the A* router's resolution.
//
// Every emitted corridor's id is appended to the CorridorConnections of
// each îlot it connects; ilots is mutated in place (its elements, not just
// the slice header, so the caller's backing array reflects the update).
// Synthesize is idempotent: it resets CorridorConnections before rebuilding
// it, so callers may re-run it on the same candidate across generations
// without accumulating stale ids.
//
// The second return value lists the ids of corridors that fell back to a
// direct-line path because Stage B's A* router found no route; callers
// that surface diagnostics (e.g. pkg/engine) should record these via
// Candidate.AddDiagnostic.
func Synthesize(ilots []ilot.Ilot, grid *obstacle.Grid, params Params) ([]ilot.Corridor, []string) {
	if len(ilots) == 0 {
		return nil, nil
	}

	ids := &idCounter{}
	var corridors []ilot.Corridor

	rows := DetectRows(ilots, params.rowTolerance())
	pairs := DetectFacingPairs(rows, params.CorridorWidth, params.gapMax())
	corridors = append(corridors, stageA(pairs, params.CorridorWidth, ids)...)

	stageBCorridors, fallbacks := stageB(ilots, corridors, grid, params.CorridorWidth, ids)
	corridors = append(corridors, stageBCorridors...)

	if params.PerimeterPass {
		corridors = append(corridors, stageC(ilots, params.CorridorWidth, ids)...)
	}

	applyCorridorConnections(ilots, corridors)
	return corridors, fallbacks
}

// applyCorridorConnections resets and rebuilds the CorridorConnections of
// every îlot from corridors, per §4.6's "Updates" paragraph. Resetting
// first makes repeated Synthesize calls on the same îlot slice (e.g. a
// surviving elite candidate re-scored every generation) idempotent rather
// than accumulating duplicate or stale ids across generations.
func applyCorridorConnections(ilots []ilot.Ilot, corridors []ilot.Corridor) {
	byID := make(map[string]int, len(ilots))
	for i := range ilots {
		ilots[i].CorridorConnections = nil
		byID[ilots[i].ID] = i
	}
	for _, c := range corridors {
		for _, ilotID := range c.ConnectedIlots {
			if idx, ok := byID[ilotID]; ok {
				ilots[idx].CorridorConnections = append(ilots[idx].CorridorConnections, c.ID)
			}
		}
	}
}

// stageA builds one straight corridor per facing row pair, spanning the
// pair's along-axis overlap at the gap's perpendicular midline. Every
// Stage-A corridor is realized (it always has a path), so Accessible
// reflects only the ADA width check (§3).
func stageA(pairs []FacingPair, corridorWidth float64, ids *idCounter) []ilot.Corridor {
	corridors := make([]ilot.Corridor, 0, len(pairs))
	for _, fp := range pairs {
		var path geom.Polyline
		if fp.A.Axis == AxisRow {
			path = geom.Polyline{Points: []geom.Point{
				{X: fp.OverlapMin, Y: fp.GapMid},
				{X: fp.OverlapMax, Y: fp.GapMid},
			}}
		} else {
			path = geom.Polyline{Points: []geom.Point{
				{X: fp.GapMid, Y: fp.OverlapMin},
				{X: fp.GapMid, Y: fp.OverlapMax},
			}}
		}
		connected := uniqueIDs(fp.A.IlotIDs, fp.B.IlotIDs)
		c := ilot.Corridor{
			ID:             ids.next(),
			Path:           path,
			Width:          corridorWidth,
			ConnectedIlots: connected,
		}
		c.Accessible = c.MeetsADA()
		corridors = append(corridors, c)
	}
	return corridors
}

// stageB connects any îlots left in separate connectivity components
// after Stage A, via a minimum spanning tree over component representative
// points realized with A* routing over the walkability grid. Accessible is
// true only when a full A* path was found AND the width meets the ADA
// minimum (§4.6's fallback reconciliation); the second return value lists
// the ids of corridors that used the direct-line fallback, for the caller
// to record as a diagnostic.
func stageB(ilots []ilot.Ilot, existing []ilot.Corridor, grid *obstacle.Grid, corridorWidth float64, ids *idCounter) ([]ilot.Corridor, []string) {
	candidate := ilot.NewCandidate()
	candidate.Ilots = ilots
	candidate.Corridors = existing
	graph := candidate.BuildConnectivityGraph()
	components := graph.Components()
	if len(components) <= 1 {
		return nil, nil
	}

	centerByID := make(map[string]geom.Point, len(ilots))
	for _, il := range ilots {
		centerByID[il.ID] = il.Center()
	}

	// One representative per component, in deterministic (sorted) order.
	repIDs := make([]string, 0, len(components))
	repOf := make(map[string][]string, len(components))
	for _, comp := range components {
		sorted := append([]string(nil), comp...)
		sort.Strings(sorted)
		rep := sorted[0]
		repIDs = append(repIDs, rep)
		repOf[rep] = sorted
	}
	sort.Strings(repIDs)

	edges := Kruskal(repIDs, func(a, b string) float64 {
		return geom.Distance(centerByID[a], centerByID[b])
	})

	radiusCells := widthRadiusCells(corridorWidth, grid.CellSize)
	var corridors []ilot.Corridor
	var fallbacks []string
	for _, e := range edges {
		path := routeBetween(centerByID[e.A], centerByID[e.B], grid, radiusCells)
		connected := uniqueIDs(repOf[e.A], repOf[e.B])
		c := ilot.Corridor{
			ID:             ids.next(),
			Path:           path.polyline,
			Width:          corridorWidth,
			ConnectedIlots: connected,
		}
		c.Accessible = path.found && c.MeetsADA()
		if !path.found {
			fallbacks = append(fallbacks, c.ID)
		}
		corridors = append(corridors, c)
	}
	return corridors, fallbacks
}

// stageC adds straight top and bottom corridors at a one-corridor-width
// margin outside the îlot bounding box, for external access, per §4.6's
// optional Stage C. Each spans the full X-extent of the bounding box and
// connects every îlot.
func stageC(ilots []ilot.Ilot, corridorWidth float64, ids *idCounter) []ilot.Corridor {
	if len(ilots) == 0 {
		return nil
	}
	bbox := ilots[0].Footprint()
	for _, il := range ilots[1:] {
		bbox = geom.Union(bbox, il.Footprint())
	}

	allIDs := make([]string, 0, len(ilots))
	for _, il := range ilots {
		allIDs = append(allIDs, il.ID)
	}
	sort.Strings(allIDs)

	margin := corridorWidth
	topY := bbox.MaxY() + margin
	bottomY := bbox.MinY() - margin

	top := ilot.Corridor{
		ID:    ids.next(),
		Path:  geom.Polyline{Points: []geom.Point{{X: bbox.MinX(), Y: topY}, {X: bbox.MaxX(), Y: topY}}},
		Width: corridorWidth, ConnectedIlots: allIDs,
	}
	top.Accessible = top.MeetsADA()
	bottom := ilot.Corridor{
		ID:    ids.next(),
		Path:  geom.Polyline{Points: []geom.Point{{X: bbox.MinX(), Y: bottomY}, {X: bbox.MaxX(), Y: bottomY}}},
		Width: corridorWidth, ConnectedIlots: allIDs,
	}
	bottom.Accessible = bottom.MeetsADA()
	return []ilot.Corridor{top, bottom}
}

type routedPath struct {
	polyline geom.Polyline
	found    bool
}

// routeBetween runs A* from a to b over grid, smooths the result, and
// falls back to a direct two-point polyline (flagged not Accessible) when
// no path is found, per §4.6.
func routeBetween(a, b geom.Point, grid *obstacle.Grid, radiusCells int) routedPath {
	startX, startY := grid.WorldToCell(a)
	goalX, goalY := grid.WorldToCell(b)
	start := cellID{startX, startY}
	goal := cellID{goalX, goalY}

	cells, ok := FindPath(grid, start, goal, radiusCells)
	if !ok {
		return routedPath{
			polyline: geom.Polyline{Points: []geom.Point{a, b}},
			found:    false,
		}
	}

	points := make([]geom.Point, len(cells))
	for i, c := range cells {
		points[i] = grid.CellCenter(c.x, c.y)
	}
	points[0] = a
	points[len(points)-1] = b

	smoothed := SmoothLineOfSight(grid, points, radiusCells)
	return routedPath{polyline: geom.Polyline{Points: smoothed}, found: true}
}

// widthRadiusCells converts a corridor width in meters to the half-width
// cell radius the width check (Grid.IsAreaWalkable) requires, per §4.6.
func widthRadiusCells(corridorWidth, cellSize float64) int {
	if cellSize <= 0 {
		return 0
	}
	r := int(math.Round(corridorWidth / 2 / cellSize))
	if r < 0 {
		return 0
	}
	return r
}

// uniqueIDs merges two id slices into a sorted, de-duplicated slice.
func uniqueIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, id := range a {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
