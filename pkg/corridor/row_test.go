package corridor

import (
	"testing"

	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

func mkIlot(id string, x, y, w, h float64) ilot.Ilot {
	return ilot.Ilot{ID: id, Position: geom.Point{X: x, Y: y}, Width: w, Height: h, Rotation: ilot.Rotate0}
}

func TestDetectRows_HorizontalRow(t *testing.T) {
	ilots := []ilot.Ilot{
		mkIlot("a", 0, 0, 2, 2),
		mkIlot("b", 3, 0.1, 2, 2),
		mkIlot("c", 6, -0.1, 2, 2),
	}
	rows := DetectRows(ilots, DefaultRowTolerance)
	var found bool
	for _, r := range rows {
		if r.Axis == AxisRow && len(r.IlotIDs) == 3 {
			found = true
			if r.IlotIDs[0] != "a" || r.IlotIDs[2] != "c" {
				t.Errorf("row not sorted along X: %v", r.IlotIDs)
			}
		}
	}
	if !found {
		t.Fatalf("expected a 3-member horizontal row, got %+v", rows)
	}
}

func TestDetectRows_DiscardsSingletons(t *testing.T) {
	ilots := []ilot.Ilot{
		mkIlot("a", 0, 0, 2, 2),
		mkIlot("b", 50, 50, 2, 2),
	}
	rows := DetectRows(ilots, DefaultRowTolerance)
	if len(rows) != 0 {
		t.Fatalf("expected no rows from two isolated ilots, got %+v", rows)
	}
}

func TestDetectRows_VerticalColumn(t *testing.T) {
	ilots := []ilot.Ilot{
		mkIlot("a", 0, 0, 2, 2),
		mkIlot("b", 0.1, 3, 2, 2),
	}
	rows := DetectRows(ilots, DefaultRowTolerance)
	var found bool
	for _, r := range rows {
		if r.Axis == AxisColumn && len(r.IlotIDs) == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 2-member vertical column, got %+v", rows)
	}
}

func TestDetectFacingPairs_WithinGapRange(t *testing.T) {
	rowA := Row{Axis: AxisRow, IlotIDs: []string{"a1", "a2"}, AlongMin: 0, AlongMax: 10, PerpMin: 0, PerpMax: 2}
	rowB := Row{Axis: AxisRow, IlotIDs: []string{"b1", "b2"}, AlongMin: 0, AlongMax: 10, PerpMin: 4, PerpMax: 6}
	pairs := DetectFacingPairs([]Row{rowA, rowB}, 1.0, DefaultGapMax)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 facing pair, got %d", len(pairs))
	}
	p := pairs[0]
	if p.GapMid != 3.0 {
		t.Errorf("expected gap mid 3.0, got %v", p.GapMid)
	}
	if p.OverlapMin != 0 || p.OverlapMax != 10 {
		t.Errorf("expected overlap [0,10], got [%v,%v]", p.OverlapMin, p.OverlapMax)
	}
}

func TestDetectFacingPairs_GapTooWide(t *testing.T) {
	rowA := Row{Axis: AxisRow, IlotIDs: []string{"a1", "a2"}, AlongMin: 0, AlongMax: 10, PerpMin: 0, PerpMax: 2}
	rowB := Row{Axis: AxisRow, IlotIDs: []string{"b1", "b2"}, AlongMin: 0, AlongMax: 10, PerpMin: 20, PerpMax: 22}
	pairs := DetectFacingPairs([]Row{rowA, rowB}, 1.0, DefaultGapMax)
	if len(pairs) != 0 {
		t.Fatalf("expected 0 facing pairs beyond gapMax, got %d", len(pairs))
	}
}

func TestDetectFacingPairs_NoOverlap(t *testing.T) {
	rowA := Row{Axis: AxisRow, IlotIDs: []string{"a1", "a2"}, AlongMin: 0, AlongMax: 5, PerpMin: 0, PerpMax: 2}
	rowB := Row{Axis: AxisRow, IlotIDs: []string{"b1", "b2"}, AlongMin: 10, AlongMax: 15, PerpMin: 4, PerpMax: 6}
	pairs := DetectFacingPairs([]Row{rowA, rowB}, 1.0, DefaultGapMax)
	if len(pairs) != 0 {
		t.Fatalf("expected 0 facing pairs with no along-axis overlap, got %d", len(pairs))
	}
}

func TestDetectFacingPairs_DifferentAxisIgnored(t *testing.T) {
	rowA := Row{Axis: AxisRow, IlotIDs: []string{"a1", "a2"}, AlongMin: 0, AlongMax: 10, PerpMin: 0, PerpMax: 2}
	rowB := Row{Axis: AxisColumn, IlotIDs: []string{"b1", "b2"}, AlongMin: 0, AlongMax: 10, PerpMin: 4, PerpMax: 6}
	pairs := DetectFacingPairs([]Row{rowA, rowB}, 1.0, DefaultGapMax)
	if len(pairs) != 0 {
		t.Fatalf("expected cross-axis rows never to pair, got %d", len(pairs))
	}
}
