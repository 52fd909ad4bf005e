package obstacle

import (
	"fmt"
	"testing"

	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/geom"
)

func buildTestFloorPlan(t *testing.T) *floorplan.FloorPlan {
	t.Helper()
	bounds := floorplan.DrawingBounds{Rect: geom.Rect{X: 0, Y: 0, Width: 20, Height: 20}}
	walls := []floorplan.Wall{
		{ID: "w1", Footprint: geom.Rect{X: 5, Y: 0, Width: 0.2, Height: 10}, Thickness: 0.2},
	}
	zones := []floorplan.RestrictedZone{
		{ID: "z1", Polygon: geom.Polygon{Points: []geom.Point{
			{X: 15, Y: 15}, {X: 18, Y: 15}, {X: 18, Y: 18}, {X: 15, Y: 18},
		}}},
	}
	fp, err := floorplan.NewFloorPlan(bounds, walls, nil, zones)
	if err != nil {
		t.Fatalf("NewFloorPlan() error = %v", err)
	}
	return fp
}

func TestBuild_IsDisjoint(t *testing.T) {
	fp := buildTestFloorPlan(t)
	idx := Build(fp, 0.5, 1.2)

	t.Run("rect far from obstacles is disjoint", func(t *testing.T) {
		r := geom.Rect{X: 10, Y: 10, Width: 1, Height: 1}
		if !idx.IsDisjoint(r, 0) {
			t.Error("IsDisjoint() = false, want true")
		}
	})

	t.Run("rect overlapping wall is not disjoint", func(t *testing.T) {
		r := geom.Rect{X: 5, Y: 2, Width: 1, Height: 1}
		if idx.IsDisjoint(r, 0) {
			t.Error("IsDisjoint() = true, want false")
		}
	})

	t.Run("rect near wall within clearance is not disjoint", func(t *testing.T) {
		r := geom.Rect{X: 5.5, Y: 2, Width: 1, Height: 1}
		if idx.IsDisjoint(r, 1.0) {
			t.Error("IsDisjoint() = true, want false once clearance covers the gap")
		}
	})
}

func TestBuild_BucketedIndexMatchesLinear(t *testing.T) {
	bounds := floorplan.DrawingBounds{Rect: geom.Rect{X: 0, Y: 0, Width: 200, Height: 200}}
	var walls []floorplan.Wall
	for i := 0; i < 600; i++ {
		x := float64(i%40) * 5
		y := float64(i/40) * 5
		walls = append(walls, floorplan.Wall{
			ID:        fmt.Sprintf("w%d", i),
			Footprint: geom.Rect{X: x, Y: y, Width: 0.2, Height: 1},
			Thickness: 0.2,
		})
	}
	fp, err := floorplan.NewFloorPlan(bounds, walls, nil, nil)
	if err != nil {
		t.Fatalf("NewFloorPlan() error = %v", err)
	}

	idx := Build(fp, 0.5, 1.2)
	if idx.bucket == nil {
		t.Fatal("expected bucket index to be built for > 500 obstacles")
	}

	linear := &Index{rects: idx.Rects()}

	probes := []geom.Rect{
		{X: 0, Y: 0, Width: 1, Height: 1},
		{X: 100, Y: 100, Width: 1, Height: 1},
		{X: 199, Y: 199, Width: 0.5, Height: 0.5},
	}
	for _, p := range probes {
		if idx.IsDisjoint(p, 0.3) != linear.IsDisjoint(p, 0.3) {
			t.Errorf("bucketed and linear IsDisjoint disagree for %v", p)
		}
	}
}

func TestIndex_Rects(t *testing.T) {
	fp := buildTestFloorPlan(t)
	idx := Build(fp, 0.5, 1.2)
	if len(idx.Rects()) != 2 {
		t.Errorf("len(Rects()) = %d, want 2 (1 wall + 1 zone bound)", len(idx.Rects()))
	}
}
