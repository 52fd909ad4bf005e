package ilot

import (
	"testing"

	"github.com/rehmanul/ilot-placement/pkg/geom"
)

func TestIlot_Footprint(t *testing.T) {
	t.Run("unrotated footprint matches width/height", func(t *testing.T) {
		i := Ilot{ID: "i1", Position: geom.Point{X: 1, Y: 2}, Width: 4, Height: 2, Rotation: Rotate0}
		got := i.Footprint()
		want := geom.Rect{X: 1, Y: 2, Width: 4, Height: 2}
		if got != want {
			t.Errorf("Footprint() = %v, want %v", got, want)
		}
	})

	t.Run("90 degree rotation swaps width and height", func(t *testing.T) {
		i := Ilot{ID: "i1", Position: geom.Point{X: 0, Y: 0}, Width: 4, Height: 2, Rotation: Rotate90}
		got := i.Footprint()
		if got.Width != 2 || got.Height != 4 {
			t.Errorf("Footprint() = %v, want width=2 height=4", got)
		}
	})
}

func TestIlot_Validate(t *testing.T) {
	t.Run("valid ilot passes", func(t *testing.T) {
		i := Ilot{ID: "i1", Position: geom.Point{X: 0, Y: 0}, Width: 3, Height: 3, Rotation: Rotate0}
		if err := i.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("empty id is invalid", func(t *testing.T) {
		i := Ilot{Position: geom.Point{X: 0, Y: 0}, Width: 3, Height: 3}
		if err := i.Validate(); err == nil {
			t.Error("Validate() = nil, want error for empty id")
		}
	})

	t.Run("zero width is invalid", func(t *testing.T) {
		i := Ilot{ID: "i1", Position: geom.Point{X: 0, Y: 0}, Width: 0, Height: 3}
		if err := i.Validate(); err == nil {
			t.Error("Validate() = nil, want error for zero width")
		}
	})

	t.Run("invalid rotation", func(t *testing.T) {
		i := Ilot{ID: "i1", Position: geom.Point{X: 0, Y: 0}, Width: 3, Height: 3, Rotation: Rotation(45)}
		if err := i.Validate(); err == nil {
			t.Error("Validate() = nil, want error for non-canonical rotation")
		}
	})
}

func TestIlot_Clone_NoSharedState(t *testing.T) {
	original := Ilot{ID: "i1", CorridorConnections: []string{"c1"}}
	clone := original.Clone()
	clone.CorridorConnections[0] = "mutated"
	if original.CorridorConnections[0] == "mutated" {
		t.Error("Clone() shares backing array with original")
	}
}

func TestSizeBucket_SizeRange(t *testing.T) {
	tests := []struct {
		bucket   SizeBucket
		min, max float64
	}{
		{SizeSmall, 1.5, 3.0},
		{SizeMedium, 3.0, 5.0},
		{SizeLarge, 5.0, 8.0},
	}
	for _, tt := range tests {
		min, max := tt.bucket.SizeRange()
		if min != tt.min || max != tt.max {
			t.Errorf("%v.SizeRange() = (%v, %v), want (%v, %v)", tt.bucket, min, max, tt.min, tt.max)
		}
	}
}
