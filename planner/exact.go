package planner

import "math"

// solveExact enumerates every ordering of indices 1..n-1 after the
// fixed start 0, sums the directed edge costs including the closing
// edge back to 0, and keeps the cheapest tour.
//
// Fixing the start is sound because a closed tour's cost is invariant
// under rotation of its starting point; only equivalent rotations are
// pruned. Ties are broken by strict improvement, so the first optimal
// permutation in lexicographic enumeration order wins, deterministic
// for identical inputs.
//
// Oracle calls are bounded by the memoized cost table at O(n²); the
// permutation scan itself is O((n-1)!·n) additions. Callers enforce the
// practical ceiling before getting here.
func solveExact(tbl *costTable, n int) ([]int, float64, error) {
	var (
		best     []int
		bestCost = math.Inf(1)
		current  = make([]int, 1, n)
		used     = make([]bool, n)
		walkErr  error
	)
	current[0] = 0
	used[0] = true

	// recursive lexicographic enumeration; costSoFar tracks the directed
	// cost of the prefix in `current`
	var walk func(costSoFar float64)
	walk = func(costSoFar float64) {
		if walkErr != nil {
			return
		}
		if len(current) == n {
			closing, err := tbl.at(current[n-1], 0)
			if err != nil {
				walkErr = err
				return
			}
			total := costSoFar + closing
			if total < bestCost {
				bestCost = total
				best = append(best[:0], current...)
				best = append(best, 0)
			}
			return
		}
		for next := 1; next < n; next++ {
			if used[next] {
				continue
			}
			step, err := tbl.at(current[len(current)-1], next)
			if err != nil {
				walkErr = err
				return
			}
			used[next] = true
			current = append(current, next)
			walk(costSoFar + step)
			current = current[:len(current)-1]
			used[next] = false
		}
	}
	walk(0)

	if walkErr != nil {
		return nil, 0, walkErr
	}
	return best, bestCost, nil
}
