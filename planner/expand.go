package planner

import "github.com/M-Podi/reeds-shepp-curves/pose"

// PathExpander materializes a solved tour into drawable segment
// sequences for a chosen turning radius.
type PathExpander struct {
	dist *DistanceOracle
}

// NewPathExpander builds an expander over the given unit-radius path
// oracle.
func NewPathExpander(oracle PathOracle) (*PathExpander, error) {
	dist, err := NewDistanceOracle(oracle)
	if err != nil {
		return nil, err
	}
	return &PathExpander{dist: dist}, nil
}

// Expand produces one Edge per consecutive tour pair, in tour order: n
// edges for a closed n-waypoint tour. Each edge carries the oracle's
// unit-radius segment sequence and its real-world length at the given
// radius; summed over all edges, the lengths match the solver's total
// cost for the same radius to floating-point tolerance.
//
// The tour must satisfy the closed-tour invariants (ErrBadTour
// otherwise); radius and oracle errors follow the usual rules. Nothing
// is cached across radii, since each radius induces a different rescaled
// pose pair.
func (e *PathExpander) Expand(tour []int, poses []pose.Pose, radius float64) ([]Edge, error) {
	if err := validateRadius(radius); err != nil {
		return nil, err
	}
	if err := validateTour(tour, len(poses)); err != nil {
		return nil, err
	}
	if len(tour) == 0 {
		return nil, nil
	}

	edges := make([]Edge, 0, len(tour)-1)
	for i := 0; i+1 < len(tour); i++ {
		p, length, err := e.dist.pathAndCost(poses[tour[i]], poses[tour[i+1]], radius)
		if err != nil {
			return nil, err
		}
		edges = append(edges, Edge{Path: p, Length: length})
	}
	return edges, nil
}
