package planner

import (
	"math"

	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// costTable memoizes directed edge costs for one (poses, radius) pair.
// cost(i,j) and cost(j,i) are separate entries: curvature-constrained
// paths are not symmetric under reversal of the direction of travel.
//
// Entries are filled lazily, so the greedy solver pays only for the
// edges it actually inspects while the exact solver converges to the
// full O(n²) matrix. NaN marks an unfilled slot; the oracle itself
// never produces NaN costs.
type costTable struct {
	dist   *DistanceOracle
	poses  []pose.Pose
	radius float64
	cells  [][]float64
}

func newCostTable(dist *DistanceOracle, poses []pose.Pose, radius float64) *costTable {
	n := len(poses)
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
		for j := range cells[i] {
			cells[i][j] = math.NaN()
		}
	}
	return &costTable{dist: dist, poses: poses, radius: radius, cells: cells}
}

// at returns the memoized directed cost i→j, consulting the oracle on
// first use. The diagonal is 0 by definition.
func (t *costTable) at(i, j int) (float64, error) {
	if i == j {
		return 0, nil
	}
	if c := t.cells[i][j]; !math.IsNaN(c) {
		return c, nil
	}

	c, err := t.dist.Cost(t.poses[i], t.poses[j], t.radius)
	if err != nil {
		return 0, err
	}
	t.cells[i][j] = c
	return c, nil
}
