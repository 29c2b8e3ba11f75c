package planner

import "math"

// validateRadius rejects zero, negative and NaN turning radii.
func validateRadius(radius float64) error {
	if radius <= 0 || math.IsNaN(radius) {
		return ErrInvalidRadius
	}
	return nil
}

// validateOptions rejects unknown methods before any oracle work.
func validateOptions(opts Options) error {
	switch opts.Method {
	case MethodExact, MethodGreedy:
		return nil
	default:
		return ErrUnknownMethod
	}
}

// validateTour enforces the closed-tour invariants over n waypoints:
// length n+1, first and last entries equal, every index in [0..n-1]
// exactly once among the first n entries. n == 0 admits only the empty
// tour.
func validateTour(tour []int, n int) error {
	if n == 0 {
		if len(tour) != 0 {
			return ErrBadTour
		}
		return nil
	}
	if len(tour) != n+1 {
		return ErrBadTour
	}
	if tour[0] != tour[n] {
		return ErrBadTour
	}

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}
	return nil
}
