package corridor

import (
	"sort"

	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

// Axis distinguishes a row (elongated along X, stacked along Y) from a
// column (elongated along Y, stacked along X).
type Axis int

const (
	AxisRow    Axis = iota // horizontal row: îlots vary along X, grouped by Y-center
	AxisColumn             // vertical column: îlots vary along Y, grouped by X-center
)

// Row is a group of îlots aligned along one axis within RowTolerance,
// sorted by their position along that axis.
type Row struct {
	Axis Axis

	// IlotIDs lists the member îlot ids, sorted along the row's elongation
	// axis (X for a row, Y for a column).
	IlotIDs []string

	// AlongMin/AlongMax is the row's extent along its elongation axis (the
	// axis member îlots are sorted and spread along).
	AlongMin, AlongMax float64

	// PerpMin/PerpMax is the row's extent along the perpendicular axis
	// (its "thickness" band) — the min/max footprint extent of its
	// members on that axis.
	PerpMin, PerpMax float64
}

// DefaultRowTolerance is the row-alignment tolerance of §4.5: 0.5 m.
const DefaultRowTolerance = 0.5

// DetectRows groups ilots into horizontal rows (by Y-center, within
// tolerance) and vertical columns (by X-center, within tolerance). Rows and
// columns with fewer than two members are discarded, per §4.5.
func DetectRows(ilots []ilot.Ilot, tolerance float64) []Row {
	var rows []Row
	rows = append(rows, detectAxis(ilots, tolerance, AxisRow)...)
	rows = append(rows, detectAxis(ilots, tolerance, AxisColumn)...)
	return rows
}

func detectAxis(ilots []ilot.Ilot, tolerance float64, axis Axis) []Row {
	type member struct {
		id     string
		center float64 // grouping center: Y for a row, X for a column
		along  float64 // position used to sort within the group
		alongMin, alongMax float64
		perpMin, perpMax   float64
	}

	members := make([]member, 0, len(ilots))
	for _, il := range ilots {
		fp := il.Footprint()
		center := il.Center()
		if axis == AxisRow {
			members = append(members, member{
				id: il.ID, center: center.Y, along: center.X,
				alongMin: fp.MinX(), alongMax: fp.MaxX(),
				perpMin: fp.MinY(), perpMax: fp.MaxY(),
			})
		} else {
			members = append(members, member{
				id: il.ID, center: center.X, along: center.Y,
				alongMin: fp.MinY(), alongMax: fp.MaxY(),
				perpMin: fp.MinX(), perpMax: fp.MaxX(),
			})
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].center < members[j].center })

	var groups [][]member
	for _, m := range members {
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if m.center-last[len(last)-1].center <= tolerance {
				groups[len(groups)-1] = append(last, m)
				continue
			}
		}
		groups = append(groups, []member{m})
	}

	var rows []Row
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		sort.Slice(g, func(i, j int) bool { return g[i].along < g[j].along })

		row := Row{Axis: axis}
		row.AlongMin, row.AlongMax = g[0].alongMin, g[0].alongMax
		row.PerpMin, row.PerpMax = g[0].perpMin, g[0].perpMax
		for _, m := range g {
			row.IlotIDs = append(row.IlotIDs, m.id)
			if m.alongMin < row.AlongMin {
				row.AlongMin = m.alongMin
			}
			if m.alongMax > row.AlongMax {
				row.AlongMax = m.alongMax
			}
			if m.perpMin < row.PerpMin {
				row.PerpMin = m.perpMin
			}
			if m.perpMax > row.PerpMax {
				row.PerpMax = m.perpMax
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FacingPair is a pair of rows (of the same Axis) whose perpendicular-axis
// gap and along-axis overlap satisfy §4.5's facing condition.
type FacingPair struct {
	A, B Row

	// GapMid is the perpendicular-axis coordinate of the midline of the
	// gap between A and B (the corridor's centerline coordinate).
	GapMid float64

	// OverlapMin/OverlapMax is the along-axis overlap span the Stage-A
	// corridor should span.
	OverlapMin, OverlapMax float64
}

// DefaultGapMax is §4.5's default maximum facing-row gap: 8.0 m.
const DefaultGapMax = 8.0

// DetectFacingPairs returns every pair of same-axis rows whose
// perpendicular-axis gap lies in [corridorWidth, gapMax] and whose
// along-axis extents overlap.
func DetectFacingPairs(rows []Row, corridorWidth, gapMax float64) []FacingPair {
	var pairs []FacingPair
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			a, b := rows[i], rows[j]
			if a.Axis != b.Axis {
				continue
			}
			gap, ok := perpGap(a, b)
			if !ok || gap < corridorWidth || gap > gapMax {
				continue
			}
			overlapMin := maxF(a.AlongMin, b.AlongMin)
			overlapMax := minF(a.AlongMax, b.AlongMax)
			if overlapMax <= overlapMin {
				continue
			}
			mid := midGap(a, b)
			pairs = append(pairs, FacingPair{
				A: a, B: b,
				GapMid:     mid,
				OverlapMin: overlapMin,
				OverlapMax: overlapMax,
			})
		}
	}
	return pairs
}

// perpGap returns the gap between a and b's perpendicular extents (zero or
// negative if they overlap) and whether they are disjoint along that axis.
func perpGap(a, b Row) (float64, bool) {
	if a.PerpMax <= b.PerpMin {
		return b.PerpMin - a.PerpMax, true
	}
	if b.PerpMax <= a.PerpMin {
		return a.PerpMin - b.PerpMax, true
	}
	return 0, false
}

func midGap(a, b Row) float64 {
	if a.PerpMax <= b.PerpMin {
		return (a.PerpMax + b.PerpMin) / 2
	}
	return (b.PerpMax + a.PerpMin) / 2
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
