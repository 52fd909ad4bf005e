package engine

import (
	"context"
	"strings"

	"github.com/rehmanul/ilot-placement/pkg/catalog"
	"github.com/rehmanul/ilot-placement/pkg/corridor"
	"github.com/rehmanul/ilot-placement/pkg/fitness"
	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
	"github.com/rehmanul/ilot-placement/pkg/placement"
	"github.com/rehmanul/ilot-placement/pkg/rng"
)

// corridorFallbackPrefix tags diagnostics synth adds for an A*-fallback
// corridor, so they can be cleared and rebuilt on every re-synthesis of
// the same candidate (a surviving elite is re-scored every generation;
// without this the note would duplicate once per surviving generation).
const corridorFallbackPrefix = "corridor "

// ProgressHook is invoked at the end of every generation (§5's
// progress-reporting hook). The engine never prints; callers that want
// visibility must supply one.
type ProgressHook func(generation int, bestFitness float64, bestMetrics ilot.Metrics)

// Optimize is the engine's single entry point (§6): `optimize(floorPlan,
// config) → Result`. It validates config and floorPlan, builds the
// obstacle index and îlot catalog, derives the placement-stage RNG from the
// config's seed and hash, and runs the evolutionary placement search,
// wiring corridor synthesis and fitness evaluation into it as injected
// function values. ctx's cancellation is checked cooperatively at
// generation boundaries (§5); on cancellation the best-so-far Result is
// returned with Cancelled set, and err is nil.
func Optimize(ctx context.Context, fp *floorplan.FloorPlan, cfg Config, progress ProgressHook) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, newConfigError(err)
	}
	if fp == nil {
		return Result{}, newFloorPlanError(errNilFloorPlan)
	}
	if err := fp.Bounds.Validate(); err != nil {
		return Result{}, newFloorPlanError(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = generateSeed()
	}
	configHash := cfg.Hash()
	placementRNG := rng.NewRNG(seed, "placement", configHash)

	idx := obstacle.Build(fp, cfg.GridCellSize, cfg.CorridorWidth)

	target, err := catalog.Derive(fp, cfg.SizeMix, cfg.MaxDensity)
	if err != nil {
		return Result{}, newConfigError(err)
	}

	evaluator, err := fitness.NewEvaluator(fp, cfg.FitnessWeights, cfg.ADACompliance)
	if err != nil {
		return Result{}, newConfigError(err)
	}

	corridorParams := corridor.Params{CorridorWidth: cfg.CorridorWidth, PerimeterPass: false}
	synth := func(c *ilot.Candidate) []ilot.Corridor {
		corridors, fallbacks := corridor.Synthesize(c.Ilots, idx.Grid, corridorParams)
		c.Diagnostics = dropPrefixed(c.Diagnostics, corridorFallbackPrefix)
		for _, id := range fallbacks {
			c.AddDiagnostic("corridor %s: no A* route found, used direct-line fallback", id)
		}
		return corridors
	}
	evaluate := func(c *ilot.Candidate) float64 {
		return evaluator.Evaluate(c)
	}

	progressFn := func(generation int, bestFitness float64, bestMetrics ilot.Metrics) {
		if progress != nil {
			progress(generation, bestFitness, bestMetrics)
		}
	}
	cancelFn := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	params := placement.DefaultParams()
	params.PopulationSize = cfg.PopulationSize
	params.Generations = cfg.Generations
	params.MutationRate = cfg.MutationRate
	params.CrossoverRate = cfg.CrossoverRate
	params.EliteSize = cfg.EliteSize
	params.MinClearance = cfg.MinClearance

	result, err := placement.Run(params, target, fp.Bounds.Rect, idx, synth, evaluate, progressFn, cancelFn, placementRNG)
	if err != nil {
		if err == placement.ErrNoFeasiblePlacement {
			return Result{}, newNoFeasiblePlacementError(err, obstacleAreaFraction(fp))
		}
		return Result{}, newConfigError(err)
	}

	if result.Best == nil {
		return Result{}, newInternalInvariantError(result.Generation, -1, errMissingBestCandidate)
	}

	return fromCandidate(result.Best, result.Generation, result.Cancelled), nil
}

// dropPrefixed returns notes with every entry starting with prefix removed,
// keeping the rest in order.
func dropPrefixed(notes []string, prefix string) []string {
	if len(notes) == 0 {
		return notes
	}
	filtered := notes[:0:0]
	for _, n := range notes {
		if !strings.HasPrefix(n, prefix) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// obstacleAreaFraction computes the fraction of the drawing bounds' area
// occupied by walls and restricted zones, for NoFeasiblePlacement's
// diagnostic (§7).
func obstacleAreaFraction(fp *floorplan.FloorPlan) float64 {
	boundsArea := fp.Bounds.Rect.Area()
	if boundsArea <= 0 {
		return 1
	}
	obstacleArea := 0.0
	for _, w := range fp.Walls {
		obstacleArea += w.Footprint.Area()
	}
	for _, z := range fp.RestrictedZones {
		obstacleArea += z.Polygon.Area()
	}
	fraction := obstacleArea / boundsArea
	if fraction > 1 {
		fraction = 1
	}
	return fraction
}
