package fitness

import (
	"github.com/rehmanul/ilot-placement/pkg/corridor"
	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

// ComputeMetrics derives a Candidate's Metrics from its current Ilots and
// Corridors against fp, per §4.7. adaEnabled mirrors Config's
// ada-compliance flag: when false the ada-compliance term is fixed at 1.
//
// Grounded on pkg/validation/metrics.go's free-function CalculateX style,
// generalized from dungeon room-graph metrics to îlot/corridor metrics.
func ComputeMetrics(c *ilot.Candidate, fp *floorplan.FloorPlan, adaEnabled bool) ilot.Metrics {
	totalArea := fp.Bounds.Rect.Area()
	usedArea := sumIlotArea(c.Ilots)
	corridorLength := sumCorridorLength(c.Corridors)

	return ilot.Metrics{
		SpaceUtilization:    spaceUtilization(usedArea, totalArea),
		Accessibility:       accessibility(c),
		CorridorEfficiency:  corridorEfficiency(c, corridorLength),
		ADACompliance:       adaCompliance(c.Corridors, adaEnabled),
		TotalArea:           totalArea,
		UsedArea:            usedArea,
		CorridorTotalLength: corridorLength,
	}
}

func sumIlotArea(ilots []ilot.Ilot) float64 {
	total := 0.0
	for _, il := range ilots {
		total += il.Footprint().Area()
	}
	return total
}

func sumCorridorLength(corridors []ilot.Corridor) float64 {
	total := 0.0
	for _, c := range corridors {
		total += c.Length()
	}
	return total
}

// spaceUtilization = min(1, usedArea / totalArea), hard-capped so
// over-packing is never rewarded.
func spaceUtilization(usedArea, totalArea float64) float64 {
	if totalArea <= 0 {
		return 0
	}
	ratio := usedArea / totalArea
	if ratio > 1 {
		return 1
	}
	return ratio
}

// accessibility = size of the largest connected component of îlots (by
// corridor graph) ÷ total îlot count. Returns 1 when no îlots exist.
func accessibility(c *ilot.Candidate) float64 {
	if len(c.Ilots) == 0 {
		return 1
	}
	graph := c.BuildConnectivityGraph()
	return float64(graph.LargestComponentSize()) / float64(len(c.Ilots))
}

// corridorEfficiency = min(1, optimal-length / actual-length), where
// optimal-length is the minimum-spanning-tree weight over îlot centers and
// actual-length is the sum of emitted corridor lengths. Returns 1 when
// there are no corridors.
func corridorEfficiency(c *ilot.Candidate, actualLength float64) float64 {
	if len(c.Corridors) == 0 {
		return 1
	}
	if actualLength <= 0 {
		return 1
	}
	centers := make([]geom.Point, 0, len(c.Ilots))
	for _, il := range c.Ilots {
		centers = append(centers, il.Center())
	}
	optimal := corridor.MSTWeightOverPoints(centers)
	ratio := optimal / actualLength
	if ratio > 1 {
		return 1
	}
	return ratio
}

// adaCompliance = fraction of corridors with width >= ilot.ADAMinWidth;
// returns 1 if ADA is disabled or when there are no corridors.
func adaCompliance(corridors []ilot.Corridor, adaEnabled bool) float64 {
	if !adaEnabled || len(corridors) == 0 {
		return 1
	}
	compliant := 0
	for _, c := range corridors {
		if c.MeetsADA() {
			compliant++
		}
	}
	return float64(compliant) / float64(len(corridors))
}
