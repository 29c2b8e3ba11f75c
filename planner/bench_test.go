package planner_test

import (
	"math"
	"testing"

	"github.com/M-Podi/reeds-shepp-curves/planner"
	"github.com/M-Podi/reeds-shepp-curves/pose"
	"github.com/M-Podi/reeds-shepp-curves/reedsshepp"
)

// ringPoses builds a deterministic rippled ring; inputs are prepared
// outside the timers so only solver work is measured.
func ringPoses(n int) []pose.Pose {
	poses := make([]pose.Pose, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		r := 20 + 4*math.Sin(7*a)
		poses[i] = pose.New(r*math.Cos(a), r*math.Sin(a), float64((i*53)%360))
	}
	return poses
}

func BenchmarkSolveGreedy_ReedsShepp_n40(b *testing.B) {
	poses := ringPoses(40)
	solver, err := planner.NewTourSolver(reedsshepp.New())
	if err != nil {
		b.Fatal(err)
	}
	opts := planner.Options{Method: planner.MethodGreedy}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(poses, 1.5, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveExact_Chord_n8(b *testing.B) {
	poses := ringPoses(8)
	solver, err := planner.NewTourSolver(chordOracle{})
	if err != nil {
		b.Fatal(err)
	}
	opts := planner.Options{Method: planner.MethodExact}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(poses, 1, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpand_ReedsShepp_n12(b *testing.B) {
	poses := ringPoses(12)
	tour := make([]int, len(poses)+1)
	for i := range poses {
		tour[i] = i
	}
	expander, err := planner.NewPathExpander(reedsshepp.New())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := expander.Expand(tour, poses, 2); err != nil {
			b.Fatal(err)
		}
	}
}
