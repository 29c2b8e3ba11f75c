package planner_test

import (
	"testing"

	"github.com/M-Podi/reeds-shepp-curves/planner"
	"github.com/M-Podi/reeds-shepp-curves/pose"
	"github.com/M-Podi/reeds-shepp-curves/reedsshepp"
	"github.com/stretchr/testify/require"
)

func TestDistanceOracle_RescalingLaw(t *testing.T) {
	// cost(A,B,r) == r * cost(A/r, B/r, 1) exactly
	d, err := planner.NewDistanceOracle(reedsshepp.New())
	require.NoError(t, err)

	pairs := []struct{ a, b pose.Pose }{
		{pose.New(0, 0, 0), pose.New(10, 0, 0)},
		{pose.New(0, 0, 0), pose.New(10, 10, 90)},
		{pose.New(-5, 5, 90), pose.New(5, -5, -90)},
		{pose.New(1, 2, 30), pose.New(-3, 4, 200)},
	}
	for _, r := range []float64{0.5, 1.0, 2.0, 3.0, 7.25} {
		for _, pr := range pairs {
			atR, err := d.Cost(pr.a, pr.b, r)
			require.NoError(t, err)
			atUnit, err := d.Cost(pr.a.Scale(1/r), pr.b.Scale(1/r), 1)
			require.NoError(t, err)
			require.InEpsilon(t, atUnit*r, atR, 1e-12, "radius %v", r)
		}
	}
}

func TestDistanceOracle_InvalidRadius(t *testing.T) {
	d, err := planner.NewDistanceOracle(chordOracle{})
	require.NoError(t, err)

	a, b := pose.New(0, 0, 0), pose.New(1, 1, 0)
	for _, r := range []float64{0, -1, -0.001} {
		_, cerr := d.Cost(a, b, r)
		require.ErrorIs(t, cerr, planner.ErrInvalidRadius, "radius %v", r)
		_, perr := d.Path(a, b, r)
		require.ErrorIs(t, perr, planner.ErrInvalidRadius, "radius %v", r)
	}
}

func TestDistanceOracle_IdenticalPosesSkipOracle(t *testing.T) {
	calls := 0
	d, err := planner.NewDistanceOracle(chordOracle{calls: &calls})
	require.NoError(t, err)

	p := pose.New(4, 4, 10)
	c, err := d.Cost(p, p, 2.5)
	require.NoError(t, err)
	require.Zero(t, c)
	require.Zero(t, calls)

	path, err := d.Path(p, p, 2.5)
	require.NoError(t, err)
	require.Empty(t, path)
	require.Zero(t, calls)
}

func TestDistanceOracle_PathStaysInUnitUnits(t *testing.T) {
	// the segment params come back unit-scaled; only Cost applies the
	// radius
	d, err := planner.NewDistanceOracle(reedsshepp.New())
	require.NoError(t, err)

	a, b := pose.New(0, 0, 0), pose.New(8, 0, 0)
	const r = 2.0

	p, err := d.Path(a, b, r)
	require.NoError(t, err)
	c, err := d.Cost(a, b, r)
	require.NoError(t, err)

	require.InDelta(t, c, p.Length()*r, 1e-12)
	// straight-ahead pair: one forward straight of 8/r unit lengths
	require.Len(t, p, 1)
	require.InDelta(t, 4.0, p[0].Param, 1e-12)
}

func TestDistanceOracle_PropagatesOracleFailure(t *testing.T) {
	d, err := planner.NewDistanceOracle(errOracle{err: errSynth})
	require.NoError(t, err)

	_, cerr := d.Cost(pose.New(0, 0, 0), pose.New(1, 0, 0), 1)
	require.ErrorIs(t, cerr, errSynth)
}

func TestNewDistanceOracle_NilOracle(t *testing.T) {
	_, err := planner.NewDistanceOracle(nil)
	require.ErrorIs(t, err, planner.ErrNilOracle)

	_, err = planner.NewTourSolver(nil)
	require.ErrorIs(t, err, planner.ErrNilOracle)

	_, err = planner.NewPathExpander(nil)
	require.ErrorIs(t, err, planner.ErrNilOracle)
}
