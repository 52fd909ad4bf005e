package geom

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func square(x, y, side float64) Polygon {
	return Polygon{Points: []Point{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}}
}

func TestPolygon_Validate(t *testing.T) {
	t.Run("triangle is valid", func(t *testing.T) {
		p := Polygon{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("fewer than 3 points invalid", func(t *testing.T) {
		p := Polygon{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})
}

func TestPolygon_Area(t *testing.T) {
	t.Run("unit square", func(t *testing.T) {
		p := square(0, 0, 1)
		if got := p.Area(); got != 1 {
			t.Errorf("Area() = %v, want 1", got)
		}
	})

	t.Run("clockwise winding still positive", func(t *testing.T) {
		p := Polygon{Points: []Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}}
		if got := p.Area(); got != 4 {
			t.Errorf("Area() = %v, want 4", got)
		}
	})

	t.Run("triangle", func(t *testing.T) {
		p := Polygon{Points: []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}}
		if got := p.Area(); got != 6 {
			t.Errorf("Area() = %v, want 6", got)
		}
	})
}

func TestPolygon_Bounds(t *testing.T) {
	p := square(1, 2, 3)
	got := p.Bounds()
	want := Rect{X: 1, Y: 2, Width: 3, Height: 3}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPolygon_ContainsPoint(t *testing.T) {
	p := square(0, 0, 10)

	t.Run("interior point", func(t *testing.T) {
		if !p.ContainsPoint(Point{X: 5, Y: 5}) {
			t.Error("ContainsPoint() = false, want true")
		}
	})

	t.Run("exterior point", func(t *testing.T) {
		if p.ContainsPoint(Point{X: 15, Y: 15}) {
			t.Error("ContainsPoint() = true, want false")
		}
	})

	t.Run("boundary point is inside", func(t *testing.T) {
		if !p.ContainsPoint(Point{X: 0, Y: 5}) {
			t.Error("ContainsPoint() = false, want true for edge point")
		}
	})

	t.Run("vertex is inside", func(t *testing.T) {
		if !p.ContainsPoint(Point{X: 0, Y: 0}) {
			t.Error("ContainsPoint() = false, want true for vertex")
		}
	})
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect{X: 2, Y: 2, Width: 2, Height: 2}

	t.Run("segment passes through rect", func(t *testing.T) {
		if !SegmentIntersectsRect(Point{X: 0, Y: 3}, Point{X: 5, Y: 3}, r) {
			t.Error("SegmentIntersectsRect() = false, want true")
		}
	})

	t.Run("segment misses rect entirely", func(t *testing.T) {
		if SegmentIntersectsRect(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, r) {
			t.Error("SegmentIntersectsRect() = true, want false")
		}
	})

	t.Run("endpoint inside rect", func(t *testing.T) {
		if !SegmentIntersectsRect(Point{X: 3, Y: 3}, Point{X: 10, Y: 10}, r) {
			t.Error("SegmentIntersectsRect() = false, want true")
		}
	})

	t.Run("segment parallel and outside", func(t *testing.T) {
		if SegmentIntersectsRect(Point{X: 0, Y: 10}, Point{X: 10, Y: 10}, r) {
			t.Error("SegmentIntersectsRect() = true, want false")
		}
	})
}

// TestProperty_AreaMatchesWidthHeight verifies that the shoelace-based
// Polygon.Area agrees with Rect.Area for axis-aligned rectangular polygons.
func TestProperty_AreaMatchesWidthHeight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-100, 100).Draw(t, "x")
		y := rapid.Float64Range(-100, 100).Draw(t, "y")
		w := rapid.Float64Range(0.01, 50).Draw(t, "w")
		h := rapid.Float64Range(0.01, 50).Draw(t, "h")

		poly := Polygon{Points: []Point{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}}

		want := w * h
		got := poly.Area()
		if math.Abs(got-want) > 1e-6*math.Max(1, want) {
			t.Fatalf("Area() = %v, want %v", got, want)
		}
	})
}

// TestProperty_CenterAlwaysContained verifies that a rectangle's own center
// point is always considered inside its equivalent polygon.
func TestProperty_CenterAlwaysContained(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-100, 100).Draw(t, "x")
		y := rapid.Float64Range(-100, 100).Draw(t, "y")
		w := rapid.Float64Range(0.01, 50).Draw(t, "w")
		h := rapid.Float64Range(0.01, 50).Draw(t, "h")

		r := Rect{X: x, Y: y, Width: w, Height: h}
		p := Polygon{Points: []Point{
			{X: r.MinX(), Y: r.MinY()},
			{X: r.MaxX(), Y: r.MinY()},
			{X: r.MaxX(), Y: r.MaxY()},
			{X: r.MinX(), Y: r.MaxY()},
		}}

		if !p.ContainsPoint(r.Center()) {
			t.Fatalf("polygon %v does not contain its own center %v", p, r.Center())
		}
	})
}
