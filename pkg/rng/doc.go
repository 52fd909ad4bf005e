// Package rng provides deterministic random number generation for the îlot
// placement engine.
//
// # Overview
//
// The RNG type ensures reproducible optimization runs by deriving
// stage-specific seeds from a master seed. This allows each pipeline stage
// (catalog sampling, placement search, corridor synthesis) to have
// independent random sequences while the overall run stays deterministic:
// identical (FloorPlan, Config, seed) triples always produce identical
// Results.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for the entire optimization run
//   - stageName: Pipeline stage identifier (e.g., "placement", "corridor")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	configHash := cfg.Hash()
//	placementRNG := rng.NewRNG(cfg.Seed, "placement", configHash)
//	corridorRNG := rng.NewRNG(cfg.Seed, "corridor", configHash)
//
// Use the RNG for all random decisions in that stage:
//
//	width := placementRNG.Float64Range(3.0, 5.0)
//	rotation := placementRNG.IntRange(0, 3) * 90
//	if placementRNG.Bool() {
//	    // try mutation
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. The concurrent fitness-evaluation phase (§5 of the engine spec)
// never shares an RNG across workers; selection, crossover, and mutation run
// single-threaded on the coordinator instead.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation. Reuse RNG
// instances within a stage for best performance.
package rng
