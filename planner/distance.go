package planner

import "github.com/M-Podi/reeds-shepp-curves/pose"

// DistanceOracle reports the cost and segment sequence of traveling
// between two poses at an arbitrary turning radius, by rescaling a
// unit-radius PathOracle.
//
// Curvature-constrained planners are conventionally normalized to unit
// turning radius. Scaling all positions by 1/r (headings unchanged) and
// multiplying the resulting length by r recovers the radius-r answer
// exactly, because the geometry is similarity-invariant. Both poses
// must be rescaled before the oracle call; scaling only the reported
// length afterwards is geometrically wrong and is deliberately not
// offered.
type DistanceOracle struct {
	oracle PathOracle
}

// NewDistanceOracle wraps a unit-radius path oracle.
func NewDistanceOracle(oracle PathOracle) (*DistanceOracle, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	return &DistanceOracle{oracle: oracle}, nil
}

// Cost returns the length, in world units, of the shortest feasible
// path from a to b at the given turning radius.
//
// Identical poses cost 0 without consulting the oracle. radius <= 0
// fails with ErrInvalidRadius; oracle failures propagate unchanged.
func (d *DistanceOracle) Cost(a, b pose.Pose, radius float64) (float64, error) {
	_, cost, err := d.pathAndCost(a, b, radius)
	return cost, err
}

// Path returns the unit-radius segment sequence for the a→b leg at the
// given turning radius. Segment params stay in unit-radius units; a
// renderer multiplies by the radius when drawing.
func (d *DistanceOracle) Path(a, b pose.Pose, radius float64) (Path, error) {
	p, _, err := d.pathAndCost(a, b, radius)
	return p, err
}

// pathAndCost performs the rescaled oracle call once and derives both
// the segment sequence and the world-unit cost from it.
func (d *DistanceOracle) pathAndCost(a, b pose.Pose, radius float64) (Path, float64, error) {
	if err := validateRadius(radius); err != nil {
		return nil, 0, err
	}
	if a == b {
		return Path{}, 0, nil
	}

	inv := 1 / radius
	p, err := d.oracle.OptimalPath(a.Scale(inv), b.Scale(inv))
	if err != nil {
		return nil, 0, err
	}
	return p, d.oracle.PathLength(p) * radius, nil
}
