package fitness

import (
	"fmt"
	"math"

	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

// Weights holds the four fitness-term weights of §6's `fitnessWeights`
// Config field. They must be non-negative and sum to 1.
type Weights struct {
	Space    float64 `yaml:"space" json:"space"`
	Access   float64 `yaml:"access" json:"access"`
	Corridor float64 `yaml:"corridor" json:"corridor"`
	ADA      float64 `yaml:"ada" json:"ada"`
}

// DefaultWeights is §6's documented default: { space: 0.4, access: 0.3,
// corridor: 0.2, ada: 0.1 }.
var DefaultWeights = Weights{Space: 0.4, Access: 0.3, Corridor: 0.2, ADA: 0.1}

// Validate checks that every weight is non-negative and the four sum to 1
// within a small floating-point tolerance.
func (w Weights) Validate() error {
	if w.Space < 0 || w.Access < 0 || w.Corridor < 0 || w.ADA < 0 {
		return fmt.Errorf("fitness weights must be non-negative: %+v", w)
	}
	sum := w.Space + w.Access + w.Corridor + w.ADA
	const eps = 1e-6
	if math.Abs(sum-1) > eps {
		return fmt.Errorf("fitness weights must sum to 1, got %v", sum)
	}
	return nil
}

// Evaluator scores a Candidate's Metrics into a single fitness value.
type Evaluator struct {
	FloorPlan  *floorplan.FloorPlan
	Weights    Weights
	ADAEnabled bool
}

// NewEvaluator constructs an Evaluator, validating weights.
func NewEvaluator(fp *floorplan.FloorPlan, weights Weights, adaEnabled bool) (*Evaluator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{FloorPlan: fp, Weights: weights, ADAEnabled: adaEnabled}, nil
}

// Evaluate computes c's Metrics and Fitness in place and returns the
// fitness value, per §4.7. Fitness is the weighted sum of the four metric
// terms, clamped into [0, 1].
func (e *Evaluator) Evaluate(c *ilot.Candidate) float64 {
	metrics := ComputeMetrics(c, e.FloorPlan, e.ADAEnabled)
	c.Metrics = metrics

	fitness := e.Weights.Space*metrics.SpaceUtilization +
		e.Weights.Access*metrics.Accessibility +
		e.Weights.Corridor*metrics.CorridorEfficiency +
		e.Weights.ADA*metrics.ADACompliance

	if fitness < 0 {
		fitness = 0
	}
	if fitness > 1 {
		fitness = 1
	}
	c.Fitness = fitness
	return fitness
}
