// Package reedsshepp synthesizes shortest curvature-constrained paths
// between oriented poses at unit turning radius, for a vehicle that can
// drive both forward and in reverse.
//
// It implements the Reeds-Shepp construction: the goal pose is brought
// into the start pose's frame, then each of the twelve curve words from
// the original paper (CSC, C|C|C, C|CC, CC|C, CCu|CuC, C|CuCu|C,
// C|C(π/2)SC, CSC(π/2)|C and mirrors, C|C(π/2)SC(π/2)|C) is evaluated
// in four variants (plain, time-flipped, reflected, and both), giving
// up to 48 candidate paths; the shortest feasible one wins.
//
// The package satisfies planner.PathOracle and speaks the planner's own
// segment vocabulary at the boundary; no synthesis-internal types
// escape. Use it at radii other than 1 through planner.DistanceOracle,
// which performs the exact similarity rescaling.
package reedsshepp
