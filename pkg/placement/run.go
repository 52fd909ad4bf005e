package placement

import (
	"errors"

	"github.com/rehmanul/ilot-placement/pkg/catalog"
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
	"github.com/rehmanul/ilot-placement/pkg/rng"
)

// ErrNoFeasiblePlacement is returned when the initial population cannot
// produce a single candidate with at least one îlot (§7's
// NoFeasiblePlacement error kind). pkg/engine maps this to its own typed
// error.
var ErrNoFeasiblePlacement = errors.New("placement: no feasible initial placement found")

// SynthesizeFunc synthesizes a corridor network connecting c's ilots,
// mutating their CorridorConnections in place and returning the corridors.
// It receives the full candidate, not just its ilots, so it may record
// non-fatal notes (e.g. an A*-fallback corridor) via c.AddDiagnostic.
// Supplied by the caller so this package never imports pkg/corridor.
type SynthesizeFunc func(c *ilot.Candidate) []ilot.Corridor

// EvaluateFunc scores a candidate, setting its Metrics and Fitness fields
// in place and returning the fitness value. Supplied by the caller so this
// package never imports pkg/fitness.
type EvaluateFunc func(c *ilot.Candidate) float64

// ProgressFunc is invoked at the end of every generation (§9's
// callback-style progress hook). Implementations may no-op.
type ProgressFunc func(generation int, bestFitness float64, bestMetrics ilot.Metrics)

// CancelFunc reports whether the run has been asked to stop early (§5's
// cooperative cancellation, checked at generation boundaries).
type CancelFunc func() bool

// Result is the outcome of a placement Run: the best candidate found, the
// generation at which the run stopped, and whether it was cancelled.
type Result struct {
	Best       *ilot.Candidate
	Generation int
	Cancelled  bool
}

// Run executes the evolutionary search of §4.4: initialize a population
// spanning a range of target utilizations, then evolve it generation by
// generation (score via synthesize+evaluate, select via tournament, breed
// via crossover, mutate, elitism) until termination.
func Run(
	params Params,
	target catalog.Target,
	bounds geom.Rect,
	idx *obstacle.Index,
	synth SynthesizeFunc,
	evaluate EvaluateFunc,
	progress ProgressFunc,
	cancel CancelFunc,
	r *rng.RNG,
) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	ids := &idSequence{}
	population := InitializePopulation(params, target, bounds, idx, ids, r)

	feasible := false
	for _, c := range population {
		if len(c.Ilots) > 0 {
			feasible = true
			break
		}
	}
	if !feasible {
		return Result{}, ErrNoFeasiblePlacement
	}

	scoreGeneration(population, synth, evaluate)
	sortByFitnessDescending(population)

	bestFitness := population[0].Fitness
	stagnantFor := 0

	for gen := 1; gen <= params.Generations; gen++ {
		if progress != nil {
			progress(gen-1, population[0].Fitness, population[0].Metrics)
		}
		if cancel != nil && cancel() {
			return Result{Best: population[0], Generation: gen - 1, Cancelled: true}, nil
		}
		if population[0].Fitness > params.FitnessThreshold {
			return Result{Best: population[0], Generation: gen - 1}, nil
		}
		if stagnantFor >= params.StagnationGenerations {
			return Result{Best: population[0], Generation: gen - 1}, nil
		}

		next := make([]*ilot.Candidate, 0, params.PopulationSize)
		for i := 0; i < params.EliteSize && i < len(population); i++ {
			next = append(next, population[i].Clone())
		}

		for len(next) < params.PopulationSize {
			parent1 := TournamentSelect(population, r)
			var child *ilot.Candidate
			if r.Float64() < params.CrossoverRate {
				parent2 := TournamentSelect(population, r)
				child = Crossover(parent1, parent2, bounds, idx, params.MinClearance, ids)
			} else {
				child = parent1.Clone()
				for i := range child.Ilots {
					child.Ilots[i].ID = ids.next()
				}
			}
			Mutate(child, params, target, bounds, idx, ids, r)
			next = append(next, child)
		}

		population = next
		scoreGeneration(population, synth, evaluate)
		sortByFitnessDescending(population)

		if population[0].Fitness > bestFitness+params.StagnationDelta {
			bestFitness = population[0].Fitness
			stagnantFor = 0
		} else {
			stagnantFor++
		}
	}

	if progress != nil {
		progress(params.Generations, population[0].Fitness, population[0].Metrics)
	}
	return Result{Best: population[0], Generation: params.Generations}, nil
}

// scoreGeneration synthesizes corridors and evaluates fitness for every
// candidate in population, in index order (deterministic, independent of
// any concurrency the caller's synth/evaluate functions may internally
// use).
func scoreGeneration(population []*ilot.Candidate, synth SynthesizeFunc, evaluate EvaluateFunc) {
	for _, c := range population {
		c.Corridors = synth(c)
		evaluate(c)
	}
}
