package diagdraw

import (
	"bytes"
	"testing"

	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

func TestRender_ProducesWellFormedSVG(t *testing.T) {
	bounds := floorplan.DrawingBounds{Rect: geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	fp, err := floorplan.NewFloorPlan(bounds, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewFloorPlan: %v", err)
	}

	c := ilot.NewCandidate()
	c.Ilots = []ilot.Ilot{
		{ID: "a", Position: geom.Point{X: 1, Y: 1}, Width: 2, Height: 2, Rotation: ilot.Rotate0, Bucket: ilot.SizeSmall},
	}
	c.Corridors = []ilot.Corridor{
		{ID: "corridor-1", Width: 1.2, Path: geom.Polyline{Points: []geom.Point{{X: 0, Y: 5}, {X: 10, Y: 5}}}},
	}

	data := Render(fp, c, DefaultOptions())
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("expected rendered output to contain an <svg> tag")
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Error("expected rendered output to be closed")
	}
}

func TestRender_NilCandidateDrawsFloorPlanOnly(t *testing.T) {
	bounds := floorplan.DrawingBounds{Rect: geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	fp, err := floorplan.NewFloorPlan(bounds, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewFloorPlan: %v", err)
	}
	data := Render(fp, nil, DefaultOptions())
	if len(data) == 0 {
		t.Error("expected non-empty output for a nil candidate")
	}
}
