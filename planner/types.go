package planner

import (
	"errors"

	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// ErrInvalidRadius is returned when a turning radius is zero, negative
// or NaN. A non-positive radius is a configuration error, never worked
// around.
var ErrInvalidRadius = errors.New("planner: turning radius must be > 0")

// ErrNilOracle is returned when a constructor receives a nil PathOracle.
var ErrNilOracle = errors.New("planner: nil path oracle")

// ErrUnknownMethod is returned by Solve for a Method value it does not
// recognize.
var ErrUnknownMethod = errors.New("planner: unknown solve method")

// ErrExactIntractable is returned by Solve when the waypoint count is at
// or above Options.MaxExact and Options.StrictExact forbids the greedy
// fallback.
var ErrExactIntractable = errors.New("planner: too many waypoints for exact solve")

// ErrBadTour is returned by Expand when the tour is not a closed visit
// of every waypoint index exactly once.
var ErrBadTour = errors.New("planner: malformed tour")

// PathOracle produces shortest curvature-constrained paths between two
// poses, assuming a turning radius of 1. Implementations must be pure
// and deterministic, and the returned length must never be smaller than
// the Euclidean distance between the two positions (true of any path
// that actually connects them); the greedy solver's candidate pruning
// relies on that lower bound.
type PathOracle interface {
	// OptimalPath returns the shortest feasible unit-radius path from a
	// to b as a sequence of segments. Failures propagate to the caller
	// unchanged; the planner never retries or substitutes a fallback.
	OptimalPath(a, b pose.Pose) (Path, error)

	// PathLength returns the length of p in unit-radius units.
	PathLength(p Path) float64
}

// Result holds the outcome of a tour solve.
type Result struct {
	// Tour is the sequence of waypoint indices, starting and ending at 0.
	// For n waypoints, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	// For n == 0 the tour is empty.
	Tour []int

	// Cost is the total directed cost of the closed tour, exactly as
	// summed during the search.
	Cost float64

	// Method is the algorithm that actually produced the tour. It may
	// differ from the requested one after a fallback.
	Method Method

	// Downgraded reports that an exact solve was requested but the
	// waypoint count forced the greedy fallback. Callers must surface
	// this; a downgrade is never silent.
	Downgraded bool
}

// Edge is one expanded tour leg: the unit-radius segment sequence
// between two consecutive tour poses and its real-world length.
type Edge struct {
	// Path is the oracle's segment sequence, in unit-radius units.
	Path Path

	// Length is the leg length in world units (unit length × radius).
	Length float64
}
