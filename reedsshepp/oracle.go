package reedsshepp

import (
	"math"

	"github.com/M-Podi/reeds-shepp-curves/planner"
	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// Oracle synthesizes shortest unit-radius Reeds-Shepp paths. The zero
// value is ready to use; the type is stateless and safe for concurrent
// use.
type Oracle struct{}

var _ planner.PathOracle = Oracle{}

// New returns a ready Oracle.
func New() Oracle { return Oracle{} }

// OptimalPath returns the shortest feasible path from a to b at unit
// turning radius. Identical poses yield an empty path of length 0.
// Candidates are scanned in a fixed word order, so equal-length optima
// resolve deterministically.
func (Oracle) OptimalPath(a, b pose.Pose) (planner.Path, error) {
	var (
		best    planner.Path
		bestLen = math.Inf(1)
		found   bool
	)
	for _, cand := range AllPaths(a, b) {
		if l := cand.Length(); !found || l < bestLen {
			best, bestLen, found = cand, l, true
		}
	}
	if !found {
		return nil, ErrNoPath
	}
	return best, nil
}

// PathLength returns the length of p in unit-radius units.
func (Oracle) PathLength(p planner.Path) float64 { return p.Length() }

// AllPaths returns every feasible candidate path from a to b at unit
// radius: each curve word in its four orientations, with zero-length
// segments dropped. Mostly useful for tests and diagnostics;
// OptimalPath is the production entry point.
func AllPaths(a, b pose.Pose) []planner.Path {
	x, y, phi := changeOfBasis(a, b)

	out := make([]planner.Path, 0, 4*len(words))
	for _, w := range words {
		if p := w(x, y, phi); p != nil {
			out = append(out, dropZero(p))
		}
		if p := w(-x, y, -phi); p != nil {
			out = append(out, dropZero(timeflip(p)))
		}
		if p := w(x, -y, -phi); p != nil {
			out = append(out, dropZero(reflect(p)))
		}
		if p := w(-x, -y, phi); p != nil {
			out = append(out, dropZero(reflect(timeflip(p))))
		}
	}
	return out
}

// timeflip reverses the gear of every segment: driving a word backwards
// in time solves the mirrored goal (-x, y, -phi).
func timeflip(p planner.Path) planner.Path {
	out := make(planner.Path, len(p))
	for i, s := range p {
		s.Gear = -s.Gear
		out[i] = s
	}
	return out
}

// reflect swaps left and right arcs: mirroring across the start axis
// solves the mirrored goal (x, -y, -phi).
func reflect(p planner.Path) planner.Path {
	out := make(planner.Path, len(p))
	for i, s := range p {
		s.Steering = -s.Steering
		out[i] = s
	}
	return out
}

// dropZero removes zero-length segments; a feasible word whose every
// segment is zero collapses to the empty path (coincident poses).
func dropZero(p planner.Path) planner.Path {
	out := p[:0:0]
	for _, s := range p {
		if s.Param != 0 {
			out = append(out, s)
		}
	}
	return out
}
