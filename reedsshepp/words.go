package reedsshepp

import (
	"math"

	"github.com/M-Podi/reeds-shepp-curves/planner"
)

// A word builds one Reeds-Shepp curve family for a goal (x, y) with
// heading difference phi (radians) in the start frame, at unit radius.
// It returns nil when the family is infeasible for this goal. Words are
// written in their base orientation (first arc turning left, first gear
// forward); the time-flip and reflect transforms in oracle.go derive
// the other orientations.
type word func(x, y, phi float64) planner.Path

// words lists the twelve families by their formula numbers in Reeds &
// Shepp, "Optimal paths for a car that goes both forwards and
// backwards" (1990).
var words = []word{
	word81, word82, word83, word84a, word84b, word87,
	word88, word89a, word89b, word810a, word810b, word811,
}

// seg builds a segment, folding a negative parameter into a reversed
// gear so Param stays non-negative.
func seg(param float64, s planner.Steering, g planner.Gear) planner.Segment {
	if param < 0 {
		param, g = -param, -g
	}
	return planner.Segment{Steering: s, Gear: g, Param: param}
}

// word81 — formula 8.1: CSC, same turns (L+ S+ L+).
func word81(x, y, phi float64) planner.Path {
	u, t := polar(x-math.Sin(phi), y-1+math.Cos(phi))
	v := mod2pi(phi - t)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Straight, planner.Forward),
		seg(v, planner.Left, planner.Forward),
	}
}

// word82 — formula 8.2: CSC, opposite turns (L+ S+ R+).
func word82(x, y, phi float64) planner.Path {
	phi = mod2pi(phi)
	rho, t1 := polar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho*rho < 4 {
		return nil
	}
	u := math.Sqrt(rho*rho - 4)
	t := mod2pi(t1 + math.Atan2(2, u))
	v := mod2pi(t - phi)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Straight, planner.Forward),
		seg(v, planner.Right, planner.Forward),
	}
}

// word83 — formula 8.3: C|C|C (L+ R- L+).
func word83(x, y, phi float64) planner.Path {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho > 4 {
		return nil
	}
	a, ok := acosClamp(rho / 4)
	if !ok {
		return nil
	}
	t := mod2pi(theta + math.Pi/2 + a)
	u := mod2pi(math.Pi - 2*a)
	v := mod2pi(phi - t - u)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Right, planner.Backward),
		seg(v, planner.Left, planner.Forward),
	}
}

// word84a — formula 8.4 (1): C|CC (L+ R- L-).
func word84a(x, y, phi float64) planner.Path {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho > 4 {
		return nil
	}
	a, ok := acosClamp(rho / 4)
	if !ok {
		return nil
	}
	t := mod2pi(theta + math.Pi/2 + a)
	u := mod2pi(math.Pi - 2*a)
	v := mod2pi(t + u - phi)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Right, planner.Backward),
		seg(v, planner.Left, planner.Backward),
	}
}

// word84b — formula 8.4 (2): CC|C (L+ R+ L-).
func word84b(x, y, phi float64) planner.Path {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho > 4 || rho == 0 {
		return nil
	}
	u, ok := acosClamp(1 - rho*rho/8)
	if !ok {
		return nil
	}
	a, ok := asinClamp(2 * math.Sin(u) / rho)
	if !ok {
		return nil
	}
	t := mod2pi(theta + math.Pi/2 - a)
	v := mod2pi(t - u - phi)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Right, planner.Forward),
		seg(v, planner.Left, planner.Backward),
	}
}

// word87 — formula 8.7: CCu|CuC (L+ R+ L- R-).
func word87(x, y, phi float64) planner.Path {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho > 4 {
		return nil
	}

	var t, u, v float64
	if rho <= 2 {
		a, ok := acosClamp((rho + 2) / 4)
		if !ok {
			return nil
		}
		t = mod2pi(theta + math.Pi/2 + a)
		u = mod2pi(a)
		v = mod2pi(phi - t + 2*u)
	} else {
		a, ok := acosClamp((rho - 2) / 4)
		if !ok {
			return nil
		}
		t = mod2pi(theta + math.Pi/2 - a)
		u = mod2pi(math.Pi - a)
		v = mod2pi(phi - t + 2*u)
	}

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Right, planner.Forward),
		seg(u, planner.Left, planner.Backward),
		seg(v, planner.Right, planner.Backward),
	}
}

// word88 — formula 8.8: C|CuCu|C (L+ R- L- R+).
func word88(x, y, phi float64) planner.Path {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho > 6 || rho == 0 {
		return nil
	}
	u1 := (20 - rho*rho) / 16
	if u1 < 0 || u1 > 1 {
		return nil
	}
	u := math.Acos(u1)
	a, ok := asinClamp(2 * math.Sin(u) / rho)
	if !ok {
		return nil
	}
	t := mod2pi(theta + math.Pi/2 + a)
	v := mod2pi(t - phi)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Right, planner.Backward),
		seg(u, planner.Left, planner.Backward),
		seg(v, planner.Right, planner.Forward),
	}
}

// word89a — formula 8.9 (1): C|C(π/2)SC (L+ R- S- L-).
func word89a(x, y, phi float64) planner.Path {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho < 2 {
		return nil
	}
	u := math.Sqrt(rho*rho-4) - 2
	a := math.Atan2(2, u+2)
	t := mod2pi(theta + math.Pi/2 + a)
	v := mod2pi(t - phi + math.Pi/2)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(-math.Pi/2, planner.Right, planner.Forward),
		seg(-u, planner.Straight, planner.Forward),
		seg(-v, planner.Left, planner.Forward),
	}
}

// word89b — formula 8.9 (2): CSC(π/2)|C (L+ S+ R+ L-).
func word89b(x, y, phi float64) planner.Path {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho < 2 {
		return nil
	}
	u := math.Sqrt(rho*rho-4) - 2
	a := math.Atan2(u+2, 2)
	t := mod2pi(theta + math.Pi/2 - a)
	v := mod2pi(t - phi - math.Pi/2)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Straight, planner.Forward),
		seg(math.Pi/2, planner.Right, planner.Forward),
		seg(-v, planner.Left, planner.Forward),
	}
}

// word810a — formula 8.10 (1): C|C(π/2)SC, ending right (L+ R- S- R-).
func word810a(x, y, phi float64) planner.Path {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho < 2 {
		return nil
	}
	t := mod2pi(theta + math.Pi/2)
	u := rho - 2
	v := mod2pi(phi - t - math.Pi/2)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(-math.Pi/2, planner.Right, planner.Forward),
		seg(-u, planner.Straight, planner.Forward),
		seg(-v, planner.Right, planner.Forward),
	}
}

// word810b — formula 8.10 (2): CSC(π/2)|C, ending right (L+ S+ L+ R-).
func word810b(x, y, phi float64) planner.Path {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho < 2 {
		return nil
	}
	t := mod2pi(theta)
	u := rho - 2
	v := mod2pi(phi - t - math.Pi/2)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(u, planner.Straight, planner.Forward),
		seg(math.Pi/2, planner.Left, planner.Forward),
		seg(-v, planner.Right, planner.Forward),
	}
}

// word811 — formula 8.11: C|C(π/2)SC(π/2)|C (L+ R- S- L- R+).
func word811(x, y, phi float64) planner.Path {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho < 4 {
		return nil
	}
	u := math.Sqrt(rho*rho-4) - 4
	a := math.Atan2(2, u+4)
	t := mod2pi(theta + math.Pi/2 + a)
	v := mod2pi(t - phi)

	return planner.Path{
		seg(t, planner.Left, planner.Forward),
		seg(-math.Pi/2, planner.Right, planner.Forward),
		seg(-u, planner.Straight, planner.Forward),
		seg(-math.Pi/2, planner.Left, planner.Forward),
		seg(v, planner.Right, planner.Forward),
	}
}
