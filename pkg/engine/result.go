package engine

import (
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

// Result is the engine's sole output (§6): the winning candidate's îlots,
// corridors, metrics, and fitness, plus the generation at which the run
// stopped. It is JSON-serializable with no further transformation.
type Result struct {
	Ilots      []ilot.Ilot     `json:"ilots"`
	Corridors  []ilot.Corridor `json:"corridors"`
	Metrics    ilot.Metrics    `json:"metrics"`
	Fitness    float64         `json:"fitness"`
	Generation int             `json:"generation"`

	// Cancelled reports whether the run stopped early because the
	// caller's cancellation signal fired (§5, §7).
	Cancelled bool `json:"cancelled"`
}

// fromCandidate builds a Result from the winning candidate of a placement
// run.
func fromCandidate(c *ilot.Candidate, generation int, cancelled bool) Result {
	return Result{
		Ilots:      c.Ilots,
		Corridors:  c.Corridors,
		Metrics:    c.Metrics,
		Fitness:    c.Fitness,
		Generation: generation,
		Cancelled:  cancelled,
	}
}
