package engine

import (
	"errors"
	"fmt"
)

// ErrorKind is one of §7's five error variants. The engine never uses
// panics or sentinel control flow for these; every ErrorKind is returned
// as an explicit, wrapped error value.
type ErrorKind string

const (
	// InvalidConfig: size mix does not sum to 100, weights do not sum to
	// 1, or some parameter is out of its documented range. The engine
	// does not start.
	InvalidConfig ErrorKind = "invalid-config"

	// InvalidFloorPlan: degenerate bounds, self-intersecting polygon, or
	// a non-finite coordinate. The engine does not start.
	InvalidFloorPlan ErrorKind = "invalid-floor-plan"

	// NoFeasiblePlacement: the initial population could not produce a
	// single candidate with at least one îlot.
	NoFeasiblePlacement ErrorKind = "no-feasible-placement"

	// Cancelled: the caller's cancellation signal fired. Not itself
	// returned as an error by Optimize (the best-so-far Result is
	// returned instead, with Result.Cancelled set) but retained as a
	// kind so callers can classify a Cancelled Error value returned from
	// lower layers.
	Cancelled ErrorKind = "cancelled"

	// InternalInvariant: a condition the engine guarantees by
	// construction was violated (a corridor references a missing îlot
	// id, a fitness value escaped [0,1]). Fatal; reports the generation
	// and candidate index at which it was detected.
	InternalInvariant ErrorKind = "internal-invariant"
)

// Error is the engine's typed error value. It wraps the underlying cause
// so errors.Is/errors.As reach through to it, and carries an optional
// diagnostic string (§7: NoFeasiblePlacement reports the total obstacle
// area fraction; InternalInvariant reports generation/candidate index).
type Error struct {
	Kind       ErrorKind
	Diagnostic string
	Err        error
}

func (e *Error) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("engine: %s: %s: %v", e.Kind, e.Diagnostic, e.Err)
	}
	return fmt.Sprintf("engine: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &engine.Error{Kind: engine.InvalidConfig}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

var (
	errNilFloorPlan         = errors.New("floor plan is nil")
	errMissingBestCandidate = errors.New("placement run returned no best candidate")
)

func newConfigError(cause error) *Error {
	return &Error{Kind: InvalidConfig, Err: cause}
}

func newFloorPlanError(cause error) *Error {
	return &Error{Kind: InvalidFloorPlan, Err: cause}
}

func newNoFeasiblePlacementError(cause error, obstacleAreaFraction float64) *Error {
	return &Error{
		Kind:       NoFeasiblePlacement,
		Diagnostic: fmt.Sprintf("obstacle area fraction %.4f", obstacleAreaFraction),
		Err:        cause,
	}
}

func newInternalInvariantError(generation, candidateIndex int, cause error) *Error {
	return &Error{
		Kind:       InternalInvariant,
		Diagnostic: fmt.Sprintf("generation %d, candidate %d", generation, candidateIndex),
		Err:        cause,
	}
}

// IsKind reports whether err is an *engine.Error of the given kind,
// unwrapping through any wrapping chain.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
