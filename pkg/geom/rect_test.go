package geom

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRect_Validate(t *testing.T) {
	t.Run("non-negative extents valid", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, Width: 3, Height: 4}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("negative width invalid", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, Width: -1, Height: 4}
		if err := r.Validate(); err == nil {
			t.Error("Validate() = nil, want error for negative width")
		}
	})
}

func TestRect_Bounds(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	if r.MinX() != 1 || r.MinY() != 2 || r.MaxX() != 4 || r.MaxY() != 6 {
		t.Errorf("bounds = (%v,%v,%v,%v), want (1,2,4,6)", r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
	}
	if r.Area() != 12 {
		t.Errorf("Area() = %v, want 12", r.Area())
	}
}

func TestRect_Overlaps(t *testing.T) {
	t.Run("disjoint rectangles do not overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 1, Height: 1}
		b := Rect{X: 5, Y: 5, Width: 1, Height: 1}
		if a.Overlaps(b, 0) {
			t.Error("Overlaps() = true, want false for disjoint rects")
		}
	})

	t.Run("touching rectangles do not overlap at zero clearance", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 1, Height: 1}
		b := Rect{X: 1, Y: 0, Width: 1, Height: 1}
		if a.Overlaps(b, 0) {
			t.Error("Overlaps() = true, want false for edge-touching rects at clearance 0")
		}
	})

	t.Run("overlapping rectangles overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
		b := Rect{X: 1, Y: 1, Width: 2, Height: 2}
		if !a.Overlaps(b, 0) {
			t.Error("Overlaps() = false, want true for overlapping rects")
		}
	})

	t.Run("clearance pulls disjoint rects into overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 1, Height: 1}
		b := Rect{X: 1.3, Y: 0, Width: 1, Height: 1}
		if a.Overlaps(b, 0) {
			t.Fatal("expected no overlap at clearance 0 as a precondition")
		}
		if !a.Overlaps(b, 0.5) {
			t.Error("Overlaps() = false, want true once clearance exceeds the gap")
		}
	})

	t.Run("overlap is symmetric", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
		b := Rect{X: 1, Y: 1, Width: 2, Height: 2}
		if a.Overlaps(b, 0.3) != b.Overlaps(a, 0.3) {
			t.Error("Overlaps() not symmetric")
		}
	})
}

func TestRect_Contains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	inner := Rect{X: 2, Y: 2, Width: 3, Height: 3}
	if !outer.Contains(inner) {
		t.Error("Contains() = false, want true")
	}
	outside := Rect{X: 8, Y: 8, Width: 5, Height: 5}
	if outer.Contains(outside) {
		t.Error("Contains() = true, want false")
	}
}

func TestRect_Inflate(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 2, Height: 2}
	grown := r.Inflate(1)
	want := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	if grown != want {
		t.Errorf("Inflate(1) = %v, want %v", grown, want)
	}

	shrunk := r.Inflate(-5)
	if shrunk.Width != 0 || shrunk.Height != 0 {
		t.Errorf("Inflate(-5) width/height = %v/%v, want clamped to 0", shrunk.Width, shrunk.Height)
	}
}

func TestUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 1, Height: 1}
	b := Rect{X: 2, Y: 2, Width: 1, Height: 1}
	u := Union(a, b)
	want := Rect{X: 0, Y: 0, Width: 3, Height: 3}
	if u != want {
		t.Errorf("Union() = %v, want %v", u, want)
	}
}

func TestRotatedDimensions(t *testing.T) {
	tests := []struct {
		rotation   int
		wantW      float64
		wantH      float64
	}{
		{0, 4, 2},
		{90, 2, 4},
		{180, 4, 2},
		{270, 2, 4},
		{360, 4, 2},
		{-90, 2, 4},
	}
	for _, tt := range tests {
		w, h := RotatedDimensions(4, 2, tt.rotation)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("RotatedDimensions(4, 2, %d) = (%v, %v), want (%v, %v)", tt.rotation, w, h, tt.wantW, tt.wantH)
		}
	}
}

// TestProperty_OverlapMonotonicInClearance verifies that increasing
// clearance never turns an overlap into a non-overlap: once two rectangles
// overlap at clearance c, they still overlap at any clearance c' > c.
func TestProperty_OverlapMonotonicInClearance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Rect{
			X: rapid.Float64Range(0, 50).Draw(t, "ax"), Y: rapid.Float64Range(0, 50).Draw(t, "ay"),
			Width: rapid.Float64Range(0.1, 10).Draw(t, "aw"), Height: rapid.Float64Range(0.1, 10).Draw(t, "ah"),
		}
		b := Rect{
			X: rapid.Float64Range(0, 50).Draw(t, "bx"), Y: rapid.Float64Range(0, 50).Draw(t, "by"),
			Width: rapid.Float64Range(0.1, 10).Draw(t, "bw"), Height: rapid.Float64Range(0.1, 10).Draw(t, "bh"),
		}
		c1 := rapid.Float64Range(0, 5).Draw(t, "c1")
		c2 := c1 + rapid.Float64Range(0, 5).Draw(t, "c2delta")

		if a.Overlaps(b, c1) && !a.Overlaps(b, c2) {
			t.Fatalf("overlap at clearance %v but not at larger clearance %v", c1, c2)
		}
	})
}
