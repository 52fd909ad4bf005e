package catalog

import (
	"fmt"
	"math"

	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

// SizeMix is the configured percentage of each size bucket, expressed as
// values in [0, 100] that must sum to 100 (§3's Config entity).
type SizeMix struct {
	SmallPercent  float64
	MediumPercent float64
	LargePercent  float64
}

// Validate checks that the three percentages are non-negative and sum to
// 100 within a small floating-point tolerance.
func (m SizeMix) Validate() error {
	if m.SmallPercent < 0 || m.MediumPercent < 0 || m.LargePercent < 0 {
		return fmt.Errorf("size mix percentages must be non-negative: %+v", m)
	}
	sum := m.SmallPercent + m.MediumPercent + m.LargePercent
	const eps = 1e-6
	if math.Abs(sum-100) > eps {
		return fmt.Errorf("size mix percentages must sum to 100, got %v", sum)
	}
	return nil
}

func (m SizeMix) percent(b ilot.SizeBucket) float64 {
	switch b {
	case ilot.SizeSmall:
		return m.SmallPercent
	case ilot.SizeMedium:
		return m.MediumPercent
	case ilot.SizeLarge:
		return m.LargePercent
	default:
		return 0
	}
}

// averageArea returns a bucket's average footprint area, the square of the
// midpoint of its side-length range.
func averageArea(b ilot.SizeBucket) float64 {
	min, max := b.SizeRange()
	side := (min + max) / 2
	return side * side
}

// Target is the derived catalog: how many îlots of each size bucket the
// placement engine should aim to place.
type Target struct {
	Counts     map[ilot.SizeBucket]int
	UsableArea float64
}

// Total returns the sum of all bucket counts.
func (t Target) Total() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}
	return total
}

// Derive computes the target îlot counts for a floor plan and size mix.
// maxDensity is the Config field of the same name: the fraction of usable
// area the catalog should aim to fill at its 1.0 utilization point (the
// placement engine's population additionally spans a range of utilization
// ratios below this target, per §4.4).
func Derive(fp *floorplan.FloorPlan, mix SizeMix, maxDensity float64) (Target, error) {
	if err := mix.Validate(); err != nil {
		return Target{}, err
	}
	if maxDensity <= 0 || maxDensity > 1 {
		return Target{}, fmt.Errorf("maxDensity must be in (0, 1], got %v", maxDensity)
	}

	usableArea := fp.Bounds.Rect.Area()
	for _, z := range fp.RestrictedZones {
		usableArea -= z.Polygon.Area()
	}
	if usableArea < 0 {
		usableArea = 0
	}

	buckets := []ilot.SizeBucket{ilot.SizeSmall, ilot.SizeMedium, ilot.SizeLarge}
	weightedAvgArea := 0.0
	for _, b := range buckets {
		weightedAvgArea += (mix.percent(b) / 100) * averageArea(b)
	}

	target := Target{Counts: make(map[ilot.SizeBucket]int), UsableArea: usableArea}
	if weightedAvgArea <= 0 {
		return target, nil
	}

	totalCount := int(math.Floor(usableArea * maxDensity / weightedAvgArea))
	if totalCount < 0 {
		totalCount = 0
	}

	for _, b := range buckets {
		count := int(math.Round(float64(totalCount) * mix.percent(b) / 100))
		if count > 0 {
			target.Counts[b] = count
		}
	}
	return target, nil
}
