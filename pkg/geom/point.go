package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate checks that the point holds finite coordinates.
func (p Point) Validate() error {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		return fmt.Errorf("point has non-finite X: %v", p.X)
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("point has non-finite Y: %v", p.Y)
	}
	return nil
}

// String returns a human-readable representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Polyline is an ordered sequence of points forming a path.
type Polyline struct {
	Points []Point `json:"points"`
}

// Length returns the sum of segment lengths (Euclidean), i.e. the total
// distance traveled walking the polyline in order.
func (pl Polyline) Length() float64 {
	if len(pl.Points) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(pl.Points)-1; i++ {
		total += Distance(pl.Points[i], pl.Points[i+1])
	}
	return total
}

// Validate checks that the polyline has at least two points, all finite.
func (pl Polyline) Validate() error {
	if len(pl.Points) < 2 {
		return fmt.Errorf("polyline must have at least 2 points, got %d", len(pl.Points))
	}
	for i, p := range pl.Points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("polyline point %d: %w", i, err)
		}
	}
	return nil
}
