package placement

import "fmt"

// Params configures the evolutionary search (§4.4, §6's Config fields that
// drive placement specifically). It is a distinct type from pkg/engine's
// Config so this package never imports pkg/engine.
type Params struct {
	PopulationSize int     // 10-200, default 50
	Generations    int     // 50-500, default 100
	MutationRate   float64 // 0.01-0.5, default 0.10
	CrossoverRate  float64 // 0.5-1.0, default 0.80
	EliteSize      int     // 0..PopulationSize/2, default 5
	MinClearance   float64 // meters, default 1.2

	// UtilizationMin/Max bound the linearly-spread target utilization ratio
	// across the initial population's individuals (§4.4 "0.30 to 0.70").
	UtilizationMin float64
	UtilizationMax float64

	// MaxPlacementAttempts bounds per-îlot placement retries (§4.4: 50).
	MaxPlacementAttempts int

	// JitterMax bounds the jitter mutation's per-axis shift in meters
	// (§4.4: up to ±5 m).
	JitterMax float64

	// FitnessThreshold is the best-fitness early-termination threshold
	// (§4.4, §9 open question: this spec adopts 0.9).
	FitnessThreshold float64

	// StagnationGenerations/StagnationDelta define the stagnation
	// termination condition: best fitness has not improved by more than
	// StagnationDelta for StagnationGenerations consecutive generations.
	StagnationGenerations int
	StagnationDelta       float64
}

// DefaultParams returns §6's documented defaults, with the placement-search
// constants fixed by §4.4/§9.
func DefaultParams() Params {
	return Params{
		PopulationSize:        50,
		Generations:           100,
		MutationRate:          0.10,
		CrossoverRate:         0.80,
		EliteSize:             5,
		MinClearance:          1.2,
		UtilizationMin:        0.30,
		UtilizationMax:        0.70,
		MaxPlacementAttempts:  50,
		JitterMax:             5.0,
		FitnessThreshold:      0.9,
		StagnationGenerations: 20,
		StagnationDelta:       0.001,
	}
}

// Validate checks every parameter against §6's documented ranges.
func (p Params) Validate() error {
	if p.PopulationSize < 10 || p.PopulationSize > 200 {
		return fmt.Errorf("placement: populationSize must be in [10, 200], got %d", p.PopulationSize)
	}
	if p.Generations < 50 || p.Generations > 500 {
		return fmt.Errorf("placement: generations must be in [50, 500], got %d", p.Generations)
	}
	if p.MutationRate < 0.01 || p.MutationRate > 0.5 {
		return fmt.Errorf("placement: mutationRate must be in [0.01, 0.5], got %v", p.MutationRate)
	}
	if p.CrossoverRate < 0.5 || p.CrossoverRate > 1.0 {
		return fmt.Errorf("placement: crossoverRate must be in [0.5, 1.0], got %v", p.CrossoverRate)
	}
	if p.EliteSize < 0 || p.EliteSize > p.PopulationSize/2 {
		return fmt.Errorf("placement: eliteSize must be in [0, populationSize/2=%d], got %d", p.PopulationSize/2, p.EliteSize)
	}
	if p.MinClearance < 0.5 || p.MinClearance > 2.0 {
		return fmt.Errorf("placement: minClearance must be in [0.5, 2.0], got %v", p.MinClearance)
	}
	if p.UtilizationMin < 0 || p.UtilizationMax > 1 || p.UtilizationMin > p.UtilizationMax {
		return fmt.Errorf("placement: utilization range must satisfy 0 <= min <= max <= 1, got [%v, %v]", p.UtilizationMin, p.UtilizationMax)
	}
	if p.MaxPlacementAttempts <= 0 {
		return fmt.Errorf("placement: maxPlacementAttempts must be > 0, got %d", p.MaxPlacementAttempts)
	}
	return nil
}
