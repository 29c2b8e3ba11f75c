// Package planner orders oriented waypoints into a closed tour that
// minimizes curvature-constrained travel cost, and expands the tour
// into drawable path segments for arbitrary turning radii.
//
// The package contains three cooperating pieces:
//
//   - DistanceOracle — reports the cost (and segment sequence) of
//     traveling between two poses at a given turning radius. It wraps a
//     unit-radius PathOracle and rescales: positions divided by the
//     radius going in, lengths multiplied by the radius coming out.
//     The rescaling is exact because curvature-constrained geometry is
//     similarity-invariant.
//
//   - TourSolver — solves the asymmetric TSP over the oracle costs.
//     MethodExact enumerates all orderings with waypoint 0 fixed as the
//     start (closed-tour cost is rotation-invariant, so this prunes
//     only equivalent rotations) and is feasible for small counts;
//     above Options.MaxExact it downgrades to the greedy
//     nearest-neighbour heuristic and says so in the Result.
//     Costs are directed throughout: cost(i,j) need not equal
//     cost(j,i), because reverse-gear travel reshapes the path.
//
//   - PathExpander — turns each consecutive tour edge into the oracle's
//     segment sequence plus its real-world length, in tour order.
//
// Path synthesis itself is not implemented here: any PathOracle can be
// injected (the sibling reedsshepp package provides one). All solver
// and expander calls are pure, synchronous, CPU-bound functions of
// their inputs; callers may parallelize across independent (tour,
// radius) pairs, the package itself spawns no goroutines.
//
// Complexity, measured in oracle invocations: MethodExact memoizes the
// directed cost matrix in O(n²) calls and then scans (n−1)!
// permutations; MethodGreedy is O(n²) worst case, usually less thanks
// to an R-tree Euclidean lower-bound prune.
package planner
