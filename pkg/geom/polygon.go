package geom

import "fmt"

// Polygon is an ordered, implicitly closed ring of vertices (the edge from
// the last point back to the first is part of the polygon).
type Polygon struct {
	Points []Point `json:"points"`
}

// Validate checks that the polygon has at least 3 finite vertices.
func (poly Polygon) Validate() error {
	if len(poly.Points) < 3 {
		return fmt.Errorf("polygon must have at least 3 points, got %d", len(poly.Points))
	}
	for i, p := range poly.Points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("polygon point %d: %w", i, err)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (poly Polygon) Bounds() Rect {
	if len(poly.Points) == 0 {
		return Rect{}
	}
	minX, maxX := poly.Points[0].X, poly.Points[0].X
	minY, maxY := poly.Points[0].Y, poly.Points[0].Y
	for _, p := range poly.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Area returns the unsigned area of the polygon via the shoelace formula.
func (poly Polygon) Area() float64 {
	n := len(poly.Points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly.Points[i].X*poly.Points[j].Y - poly.Points[j].X*poly.Points[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// ContainsPoint reports whether p lies inside the polygon using an even-odd
// ray-casting test. Points exactly on an edge are treated as inside.
func (poly Polygon) ContainsPoint(p Point) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	if poly.onBoundary(p) {
		return true
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly.Points[i], poly.Points[j]
		intersects := (pi.Y > p.Y) != (pj.Y > p.Y)
		if intersects {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// onBoundary reports whether p lies exactly on one of the polygon's edges.
func (poly Polygon) onBoundary(p Point) bool {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if segmentContainsPoint(poly.Points[i], poly.Points[j], p) {
			return true
		}
	}
	return false
}

func segmentContainsPoint(a, b, p Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	const eps = 1e-9
	if cross > eps || cross < -eps {
		return false
	}
	if p.X < minF(a.X, b.X)-eps || p.X > maxF(a.X, b.X)+eps {
		return false
	}
	if p.Y < minF(a.Y, b.Y)-eps || p.Y > maxF(a.Y, b.Y)+eps {
		return false
	}
	return true
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SegmentIntersectsRect reports whether the line segment a-b intersects the
// rectangle r, including the case where either endpoint lies inside r.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	if r.ContainsPoint(a) || r.ContainsPoint(b) {
		return true
	}
	corners := [4]Point{
		{X: r.MinX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.MinX(), Y: r.MaxY()},
	}
	for i := 0; i < 4; i++ {
		c1 := corners[i]
		c2 := corners[(i+1)%4]
		if segmentsIntersect(a, b, c1, c2) {
			return true
		}
	}
	return false
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	const eps = 1e-9
	if d1 > -eps && d1 < eps && onSegment(p3, p4, p1) {
		return true
	}
	if d2 > -eps && d2 < eps && onSegment(p3, p4, p2) {
		return true
	}
	if d3 > -eps && d3 < eps && onSegment(p1, p2, p3) {
		return true
	}
	if d4 > -eps && d4 < eps && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	return p.X >= minF(a.X, b.X) && p.X <= maxF(a.X, b.X) &&
		p.Y >= minF(a.Y, b.Y) && p.Y <= maxF(a.Y, b.Y)
}
