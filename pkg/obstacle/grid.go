package obstacle

import (
	"math"

	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/geom"
)

// Grid is the rasterized walkability surface used by the corridor
// synthesizer's A* router (§4.3, §4.6). Cell (0,0) is anchored at the
// drawing bounds' lower-left corner.
type Grid struct {
	Bounds   geom.Rect
	CellSize float64
	Cols     int
	Rows     int
	walkable []bool // row-major, index = row*Cols + col
}

func buildWalkabilityGrid(fp *floorplan.FloorPlan, cellSize, corridorWidth float64) *Grid {
	bounds := fp.Bounds.Rect
	cols := int(math.Ceil(bounds.Width / cellSize))
	rows := int(math.Ceil(bounds.Height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		Bounds:   bounds,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		walkable: make([]bool, cols*rows),
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}

	halfCorridor := corridorWidth / 2
	for _, w := range fp.Walls {
		g.markRectUnwalkable(w.Footprint.Inflate(halfCorridor))
	}
	for _, z := range fp.RestrictedZones {
		g.markPolygonUnwalkable(z.Polygon)
	}
	return g
}

func (g *Grid) markRectUnwalkable(r geom.Rect) {
	minCX, minCY := g.worldToCellClamped(r.MinX(), r.MinY())
	maxCX, maxCY := g.worldToCellClamped(r.MaxX(), r.MaxY())
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			g.setUnwalkable(cx, cy)
		}
	}
}

func (g *Grid) markPolygonUnwalkable(poly geom.Polygon) {
	bounds := poly.Bounds()
	minCX, minCY := g.worldToCellClamped(bounds.MinX(), bounds.MinY())
	maxCX, maxCY := g.worldToCellClamped(bounds.MaxX(), bounds.MaxY())
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			center := g.CellCenter(cx, cy)
			if poly.ContainsPoint(center) {
				g.setUnwalkable(cx, cy)
			}
		}
	}
}

func (g *Grid) worldToCellClamped(x, y float64) (int, int) {
	cx := int((x - g.Bounds.X) / g.CellSize)
	cy := int((y - g.Bounds.Y) / g.CellSize)
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	if cx >= g.Cols {
		cx = g.Cols - 1
	}
	if cy >= g.Rows {
		cy = g.Rows - 1
	}
	return cx, cy
}

func (g *Grid) setUnwalkable(cx, cy int) {
	if !g.InBounds(cx, cy) {
		return
	}
	g.walkable[cy*g.Cols+cx] = false
}

// InBounds reports whether (cx, cy) is a valid cell coordinate.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.Cols && cy >= 0 && cy < g.Rows
}

// IsWalkable reports whether cell (cx, cy) is walkable. Out-of-bounds cells
// are never walkable.
func (g *Grid) IsWalkable(cx, cy int) bool {
	if !g.InBounds(cx, cy) {
		return false
	}
	return g.walkable[cy*g.Cols+cx]
}

// IsAreaWalkable reports whether every cell in the (2*radiusCells+1)-side
// square centered on (cx, cy) is walkable, implementing §4.6's width check:
// "every expanded node must admit a square of half-corridor-width cells all
// walkable around it".
func (g *Grid) IsAreaWalkable(cx, cy, radiusCells int) bool {
	for dx := -radiusCells; dx <= radiusCells; dx++ {
		for dy := -radiusCells; dy <= radiusCells; dy++ {
			if !g.IsWalkable(cx+dx, cy+dy) {
				return false
			}
		}
	}
	return true
}

// CellCenter returns the world-space center point of cell (cx, cy).
func (g *Grid) CellCenter(cx, cy int) geom.Point {
	return geom.Point{
		X: g.Bounds.X + (float64(cx)+0.5)*g.CellSize,
		Y: g.Bounds.Y + (float64(cy)+0.5)*g.CellSize,
	}
}

// WorldToCell returns the cell coordinate containing world point p, clamped
// to the grid's bounds.
func (g *Grid) WorldToCell(p geom.Point) (int, int) {
	return g.worldToCellClamped(p.X, p.Y)
}
