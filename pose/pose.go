package pose

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Pose is an oriented 2D point: a position and a heading in degrees.
// It is a plain value; all methods return new values.
type Pose struct {
	// Point is the position in world units.
	Point orb.Point

	// Theta is the heading in degrees. No range is enforced beyond
	// "a well-defined angle"; callers normalize as needed.
	Theta float64
}

// New builds a Pose from coordinates and a heading in degrees.
func New(x, y, thetaDeg float64) Pose {
	return Pose{Point: orb.Point{x, y}, Theta: thetaDeg}
}

// X returns the x coordinate in world units.
func (p Pose) X() float64 { return p.Point.X() }

// Y returns the y coordinate in world units.
func (p Pose) Y() float64 { return p.Point.Y() }

// ThetaRad returns the heading in radians.
func (p Pose) ThetaRad() float64 { return p.Theta * math.Pi / 180 }

// Scale returns a copy with the position multiplied by f.
// The heading is unchanged: rotation does not scale.
func (p Pose) Scale(f float64) Pose {
	return Pose{Point: orb.Point{p.Point.X() * f, p.Point.Y() * f}, Theta: p.Theta}
}

// DistanceTo returns the Euclidean distance between the positions of p
// and q, ignoring headings. It lower-bounds the length of any path that
// connects the two positions, whatever the curvature constraint.
func (p Pose) DistanceTo(q Pose) float64 {
	dx := q.Point.X() - p.Point.X()
	dy := q.Point.Y() - p.Point.Y()
	return math.Hypot(dx, dy)
}

// String renders the pose in the waypoint file format.
func (p Pose) String() string {
	return fmt.Sprintf("%g,%g,%g", p.Point.X(), p.Point.Y(), p.Theta)
}
