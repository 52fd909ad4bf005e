package placement

import (
	"sort"

	"github.com/rehmanul/ilot-placement/pkg/catalog"
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
	"github.com/rehmanul/ilot-placement/pkg/rng"
)

// InitializePopulation builds params.PopulationSize candidates whose target
// utilization ratio varies linearly from UtilizationMin to UtilizationMax
// across the population, per §4.4 ("early generations span a broad density
// range"). The k-th candidate (0-indexed) targets:
//
//	utilization(k) = UtilizationMin + (UtilizationMax-UtilizationMin) * k/(n-1)
//
// for n > 1; a population of size 1 targets UtilizationMin.
func InitializePopulation(params Params, target catalog.Target, bounds geom.Rect, idx *obstacle.Index, ids *idSequence, r *rng.RNG) []*ilot.Candidate {
	population := make([]*ilot.Candidate, params.PopulationSize)
	for k := 0; k < params.PopulationSize; k++ {
		utilization := params.UtilizationMin
		if params.PopulationSize > 1 {
			span := params.UtilizationMax - params.UtilizationMin
			utilization = params.UtilizationMin + span*float64(k)/float64(params.PopulationSize-1)
		}
		population[k] = generateCandidate(target.Counts, utilization, bounds, idx, params.MinClearance, params.MaxPlacementAttempts, ids, r)
	}
	return population
}

// sortByFitnessDescending sorts population in place by Fitness, highest
// first. Ties are broken by a stable sort so generation-to-generation
// ordering stays deterministic given identical inputs.
func sortByFitnessDescending(population []*ilot.Candidate) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].Fitness > population[j].Fitness
	})
}
