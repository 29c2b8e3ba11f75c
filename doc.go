// Package rscurves plans and draws shortest curvature-constrained tours
// over oriented waypoints — Reeds-Shepp paths, tour search, and turtle
// rendering under one module.
//
// 🚗 What is rscurves?
//
//	A library (plus a small CLI) for vehicles that can drive forward and
//	backward but cannot turn tighter than a minimum radius:
//		• Reeds-Shepp synthesis: the optimal L/S/R word between any two poses
//		• Radius rescaling: one unit-radius oracle answers every radius
//		• Tour search: exact permutation search with a greedy fallback
//		• Path expansion: per-edge segment sequences ready to draw
//		• Rendering: a turtle-style Renderer with recorder and plot backends
//
// Everything is organized under four subpackages:
//
//	pose/       — oriented waypoint values & waypoint file parsing
//	reedsshepp/ — unit-radius optimal path synthesis (the PathOracle)
//	planner/    — distance oracle, tour solver, path expander
//	render/     — Renderer interface, kinematic cursor, plot backend
//
// Quick example:
//
//	solver, _ := planner.NewTourSolver(reedsshepp.New())
//	res, err := solver.Solve(poses, 1.0, planner.Options{})
//	if err != nil { ... }
//	exp, _ := planner.NewPathExpander(reedsshepp.New())
//	edges, _ := exp.Expand(res.Tour, poses, 2.0)
//
// See cmd/rscurves for the end-to-end pipeline: waypoint file in,
// annotated multi-radius tour image out.
package rscurves
