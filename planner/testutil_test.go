package planner_test

import (
	"errors"
	"math"

	"github.com/M-Podi/reeds-shepp-curves/planner"
	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// chordOracle is a synthetic symmetric oracle: the "path" is a single
// straight segment of chord length, headings ignored. calls, when
// non-nil, counts OptimalPath invocations.
type chordOracle struct{ calls *int }

func (o chordOracle) OptimalPath(a, b pose.Pose) (planner.Path, error) {
	if o.calls != nil {
		*o.calls++
	}
	return planner.Path{{Steering: planner.Straight, Gear: planner.Forward, Param: a.DistanceTo(b)}}, nil
}

func (o chordOracle) PathLength(p planner.Path) float64 { return p.Length() }

// turnOracle is a synthetic asymmetric oracle: chord length plus a
// directed heading-change surcharge, so cost(a,b) != cost(b,a) in
// general while still never undercutting the chord.
type turnOracle struct{}

func (turnOracle) OptimalPath(a, b pose.Pose) (planner.Path, error) {
	d := math.Mod(b.Theta-a.Theta, 360)
	if d < 0 {
		d += 360
	}
	return planner.Path{
		{Steering: planner.Straight, Gear: planner.Forward, Param: a.DistanceTo(b)},
		{Steering: planner.Left, Gear: planner.Forward, Param: d * math.Pi / 180},
	}, nil
}

func (turnOracle) PathLength(p planner.Path) float64 { return p.Length() }

// errOracle fails every synthesis call.
type errOracle struct{ err error }

func (o errOracle) OptimalPath(a, b pose.Pose) (planner.Path, error) { return nil, o.err }
func (o errOracle) PathLength(p planner.Path) float64               { return 0 }

var errSynth = errors.New("synthetic oracle failure")

// permutations enumerates all orderings of items in lexicographic
// order, invoking fn on each. Used to build independent brute-force
// references in tests.
func permutations(items []int, fn func([]int)) {
	var rec func(prefix []int, rest []int)
	rec = func(prefix, rest []int) {
		if len(rest) == 0 {
			fn(prefix)
			return
		}
		for i := 0; i < len(rest); i++ {
			next := append(append([]int{}, prefix...), rest[i])
			var remain []int
			remain = append(remain, rest[:i]...)
			remain = append(remain, rest[i+1:]...)
			rec(next, remain)
		}
	}
	rec(nil, items)
}

// tourCost sums the directed edge costs of a closed tour using the
// public DistanceOracle, independently of the solver internals.
func tourCost(d *planner.DistanceOracle, poses []pose.Pose, tour []int, radius float64) (float64, error) {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		c, err := d.Cost(poses[tour[i]], poses[tour[i+1]], radius)
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum, nil
}
