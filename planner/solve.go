package planner

import "github.com/M-Podi/reeds-shepp-curves/pose"

// TourSolver orders a set of poses into a closed minimum-cost tour
// using DistanceOracle costs at a single reference radius.
type TourSolver struct {
	dist *DistanceOracle
}

// NewTourSolver builds a solver over the given unit-radius path oracle.
func NewTourSolver(oracle PathOracle) (*TourSolver, error) {
	dist, err := NewDistanceOracle(oracle)
	if err != nil {
		return nil, err
	}
	return &TourSolver{dist: dist}, nil
}

// Solve computes a closed tour over poses at the given turning radius.
//
// Degenerate inputs short-circuit without oracle calls where possible:
// zero poses yield an empty tour of cost 0, a single pose yields the
// tour [0,0] of cost 0 (no self-loop cost), and two poses yield [0,1,0]
// with both directed legs costed separately.
//
// For MethodExact above the Options ceiling, Solve downgrades to
// MethodGreedy and reports it via Result.Downgraded, or fails with
// ErrExactIntractable under Options.StrictExact. The returned Cost is
// the exact sum of the directed edge costs chosen during the search.
func (s *TourSolver) Solve(poses []pose.Pose, radius float64, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateRadius(radius); err != nil {
		return Result{}, err
	}

	n := len(poses)
	switch n {
	case 0:
		return Result{Tour: []int{}, Method: opts.Method}, nil
	case 1:
		return Result{Tour: []int{0, 0}, Method: opts.Method}, nil
	}

	tbl := newCostTable(s.dist, poses, radius)

	method := opts.Method
	downgraded := false
	if method == MethodExact && n >= opts.maxExact() {
		if opts.StrictExact {
			return Result{}, ErrExactIntractable
		}
		method = MethodGreedy
		downgraded = true
	}

	var (
		tour []int
		cost float64
		err  error
	)
	switch method {
	case MethodExact:
		tour, cost, err = solveExact(tbl, n)
	case MethodGreedy:
		tour, cost, err = solveGreedy(tbl, poses)
	}
	if err != nil {
		return Result{}, err
	}

	// cheap wiring check; the solvers construct tours by visitation, so
	// a violation here is a bug, not bad input
	if verr := validateTour(tour, n); verr != nil {
		return Result{}, verr
	}

	return Result{Tour: tour, Cost: cost, Method: method, Downgraded: downgraded}, nil
}

// OrderPoses maps a tour back to its pose sequence, closing point
// included. Convenience for callers that feed renderers.
func OrderPoses(tour []int, poses []pose.Pose) ([]pose.Pose, error) {
	if err := validateTour(tour, len(poses)); err != nil {
		return nil, err
	}
	out := make([]pose.Pose, len(tour))
	for i, idx := range tour {
		out[i] = poses[idx]
	}
	return out, nil
}
