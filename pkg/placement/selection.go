package placement

import (
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/rng"
)

// TournamentSize is §4.4's fixed tournament sample size: 3.
const TournamentSize = 3

// TournamentSelect samples TournamentSize distinct candidates uniformly
// from population and returns the one with the highest fitness.
func TournamentSelect(population []*ilot.Candidate, r *rng.RNG) *ilot.Candidate {
	n := len(population)
	size := TournamentSize
	if size > n {
		size = n
	}

	chosen := make(map[int]bool, size)
	var indices []int
	for len(indices) < size {
		i := r.Intn(n)
		if chosen[i] {
			continue
		}
		chosen[i] = true
		indices = append(indices, i)
	}

	best := population[indices[0]]
	for _, i := range indices[1:] {
		if population[i].Fitness > best.Fitness {
			best = population[i]
		}
	}
	return best
}
