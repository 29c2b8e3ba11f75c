package render

import (
	"github.com/M-Podi/reeds-shepp-curves/planner"
	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// Renderer consumes turtle-style drawing instructions. Implementations
// report nothing back; the tracer drives them without assuming a return
// value or failure signal.
type Renderer interface {
	// Forward draws a straight run of the given world-unit length along
	// the current heading; negative means reverse.
	Forward(dist float64)

	// TurnArc draws a circular arc. radius > 0 turns left, radius < 0
	// turns right (turtle convention); angleDeg is the arc's angular
	// extent in degrees, negated when traveling in reverse.
	TurnArc(radius, angleDeg float64)

	// SetPose jumps to an absolute pose without drawing.
	SetPose(x, y, headingDeg float64)
}

// Start positions r at p without drawing. Call it once per tour;
// consecutive edges then chain naturally because each path ends on the
// next waypoint.
func Start(r Renderer, p pose.Pose) {
	r.SetPose(p.X(), p.Y(), p.Theta)
}

// Trace emits the drawing instructions for one unit-radius path at the
// given turning radius: straights advance by param·radius, arcs keep
// their angular extent and use the world radius, gears flip the sign.
// Every instruction is relative to the pose the previous one ended on.
func Trace(r Renderer, p planner.Path, radius float64) error {
	if err := ValidRadius(radius); err != nil {
		return err
	}
	for _, s := range p {
		gear := float64(s.Gear)
		angleDeg := s.Param * degPerRad
		switch s.Steering {
		case planner.Straight:
			r.Forward(gear * s.Param * radius)
		case planner.Left:
			r.TurnArc(radius, gear*angleDeg)
		case planner.Right:
			r.TurnArc(-radius, gear*angleDeg)
		}
	}
	return nil
}

// ValidRadius rejects non-positive turning radii with the planner's
// sentinel, keeping one taxonomy across the pipeline.
func ValidRadius(radius float64) error {
	if !(radius > 0) {
		return planner.ErrInvalidRadius
	}
	return nil
}
