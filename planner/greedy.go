package planner

import (
	"github.com/dhconnelly/rtreego"

	"github.com/M-Podi/reeds-shepp-curves/pose"
)

const (
	// nnRectTol inflates waypoint positions into degenerate rectangles
	// for R-tree storage.
	nnRectTol = 1e-9
	// nnPruneEps is the slack kept when cutting off the candidate scan,
	// covering the rectangle inflation in the tree's distance ordering.
	nnPruneEps = 1e-9
)

// nnEntry is one unvisited waypoint in the spatial index.
type nnEntry struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nnEntry) Bounds() rtreego.Rect { return e.rect }

// solveGreedy builds the tour by nearest-neighbour construction: start
// at index 0, repeatedly append the unvisited index with minimum
// directed cost from the current tour end, then close the loop back to
// 0. Terminates in O(n²) oracle calls and never revisits an index.
//
// Unvisited waypoints live in an R-tree queried in increasing Euclidean
// distance from the current pose. Because the oracle's path length can
// never undercut the straight chord between two positions, the scan
// stops as soon as the best directed cost found is below the next
// candidate's Euclidean distance: the remaining candidates cannot win.
// The prune changes only how many oracle calls are made, never the
// selected tour: ties are still broken by the smallest index, exactly
// as a full scan in index order would.
func solveGreedy(tbl *costTable, poses []pose.Pose) ([]int, float64, error) {
	n := len(poses)

	entries := make([]*nnEntry, n)
	tree := rtreego.NewTree(2, 25, 50)
	for i, p := range poses {
		rect, err := rtreego.NewRect(rtreego.Point{p.X(), p.Y()}, []float64{nnRectTol, nnRectTol})
		if err != nil {
			return nil, 0, err
		}
		entries[i] = &nnEntry{idx: i, rect: rect}
		if i != 0 {
			tree.Insert(entries[i])
		}
	}

	var (
		tour    = make([]int, 1, n+1) // tour[0] == 0
		current = 0
		total   float64
	)
	for remaining := n - 1; remaining > 0; remaining-- {
		cur := poses[current]
		cands := tree.NearestNeighbors(remaining, rtreego.Point{cur.X(), cur.Y()})

		bestIdx := -1
		var bestCost float64
		for _, c := range cands {
			e, ok := c.(*nnEntry)
			if !ok || e == nil {
				break
			}
			eu := cur.DistanceTo(poses[e.idx])
			if bestIdx >= 0 && eu-bestCost > nnPruneEps {
				// cost(e) >= eu > bestCost, and candidates only get
				// farther from here
				break
			}
			cost, err := tbl.at(current, e.idx)
			if err != nil {
				return nil, 0, err
			}
			if bestIdx < 0 || cost < bestCost || (cost == bestCost && e.idx < bestIdx) {
				bestIdx, bestCost = e.idx, cost
			}
		}

		tree.Delete(entries[bestIdx])
		total += bestCost
		current = bestIdx
		tour = append(tour, bestIdx)
	}

	closing, err := tbl.at(current, 0)
	if err != nil {
		return nil, 0, err
	}
	total += closing
	tour = append(tour, 0)

	return tour, total, nil
}
