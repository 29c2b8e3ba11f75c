package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/M-Podi/reeds-shepp-curves/render"
)

func TestCursor_ForwardFollowsHeading(t *testing.T) {
	var c render.Cursor
	c.SetPose(1, 2, 90)
	c.Forward(3)

	require.InDelta(t, 1, c.X, 1e-12)
	require.InDelta(t, 5, c.Y, 1e-12)
	require.InDelta(t, 90, c.Heading, 1e-12)
}

func TestCursor_ForwardNegativeReverses(t *testing.T) {
	var c render.Cursor
	c.SetPose(0, 0, 0)
	c.Forward(-2.5)

	require.InDelta(t, -2.5, c.X, 1e-12)
	require.InDelta(t, 0, c.Y, 1e-12)
}

func TestCursor_TurnArcQuadrants(t *testing.T) {
	cases := []struct {
		name             string
		radius, angleDeg float64
		wantX, wantY     float64
		wantHeading      float64
	}{
		{"left_forward", 1, 90, 1, 1, 90},
		{"right_forward", -1, 90, 1, -1, -90},
		{"left_reverse", 1, -90, -1, 1, -90},
		{"right_reverse", -1, -90, -1, -1, 90},
		{"left_half", 2, 180, 0, 4, 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c render.Cursor
			c.SetPose(0, 0, 0)
			c.TurnArc(tc.radius, tc.angleDeg)

			require.InDelta(t, tc.wantX, c.X, 1e-12)
			require.InDelta(t, tc.wantY, c.Y, 1e-12)
			require.InDelta(t, tc.wantHeading, c.Heading, 1e-12)
		})
	}
}

func TestCursor_FullCircleReturnsHome(t *testing.T) {
	var c render.Cursor
	c.SetPose(3, -2, 37)
	for i := 0; i < 8; i++ {
		c.TurnArc(1.5, 45)
	}

	require.InDelta(t, 3, c.X, 1e-9)
	require.InDelta(t, -2, c.Y, 1e-9)
	require.InDelta(t, 37+360, c.Heading, 1e-9)
}

func TestCursor_PoseRoundTrip(t *testing.T) {
	var c render.Cursor
	c.SetPose(1.25, -0.5, 210)

	p := c.Pose()
	require.InDelta(t, 1.25, p.X(), 1e-12)
	require.InDelta(t, -0.5, p.Y(), 1e-12)
	require.InDelta(t, 210, p.Theta, 1e-12)
	require.InDelta(t, 210*math.Pi/180, p.ThetaRad(), 1e-12)
}
