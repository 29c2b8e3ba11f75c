package render

import (
	"math"

	"github.com/M-Podi/reeds-shepp-curves/pose"
)

const degPerRad = 180 / math.Pi

// Cursor integrates turtle instructions into a world pose. Backends
// embed it so their drawn geometry and their notion of "where am I"
// can never drift apart.
type Cursor struct {
	X, Y float64
	// Heading is in degrees, world frame.
	Heading float64
}

// Pose returns the cursor position as a pose value.
func (c *Cursor) Pose() pose.Pose { return pose.New(c.X, c.Y, c.Heading) }

// SetPose jumps to an absolute pose.
func (c *Cursor) SetPose(x, y, headingDeg float64) {
	c.X, c.Y, c.Heading = x, y, headingDeg
}

// Forward advances along the heading; negative distances reverse.
func (c *Cursor) Forward(dist float64) {
	h := c.Heading / degPerRad
	c.X += dist * math.Cos(h)
	c.Y += dist * math.Sin(h)
}

// TurnArc sweeps a circular arc: the center sits |radius| to the left
// (radius > 0) or right (radius < 0) of the heading, the position
// rotates about it by the signed extent, and the heading follows.
func (c *Cursor) TurnArc(radius, angleDeg float64) {
	if radius == 0 {
		return
	}
	h := c.Heading / degPerRad
	side := 1.0
	r := radius
	if r < 0 {
		side, r = -1, -r
	}

	cx := c.X + side*r*-math.Sin(h)
	cy := c.Y + side*r*math.Cos(h)

	sweep := side * angleDeg / degPerRad
	dx, dy := c.X-cx, c.Y-cy
	sin, cos := math.Sin(sweep), math.Cos(sweep)
	c.X = cx + dx*cos - dy*sin
	c.Y = cy + dx*sin + dy*cos
	c.Heading += side * angleDeg
}
