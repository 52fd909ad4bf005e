// Package placement implements the evolutionary îlot-placement search of
// §4.4: population initialization with a range of target utilization
// ratios, tournament selection, spatial crossover, mutation (jitter / add /
// remove), elitism, and early termination on convergence or stagnation.
//
// The search is single-threaded and deterministic: every stochastic
// decision (initial placement, mutation choice, crossover, tournament
// sampling) draws from the *rng.RNG passed to Run, so identical
// (FloorPlan, Config, seed) triples produce an identical final population.
//
// Corridor synthesis and fitness evaluation are supplied by the caller as
// plain function values (SynthesizeFunc, EvaluateFunc) rather than
// imported directly, so this package depends on neither pkg/corridor nor
// pkg/fitness; pkg/engine wires the three together for each generation.
package placement
