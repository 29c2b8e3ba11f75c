package reedsshepp

import (
	"math"

	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// domainTol forgives floating-point drift just outside the domain of
// acos/asin before declaring a curve word infeasible.
const domainTol = 1e-9

// mod2pi normalizes an angle to [-π, π).
func mod2pi(theta float64) float64 {
	m := math.Mod(theta, 2*math.Pi)
	if m < -math.Pi {
		m += 2 * math.Pi
	} else if m >= math.Pi {
		m -= 2 * math.Pi
	}
	return m
}

// polar converts cartesian (x, y) to (rho, theta).
func polar(x, y float64) (rho, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// acosClamp is acos with a tolerance band: inputs within domainTol of
// [-1, 1] are clamped, anything farther is infeasible.
func acosClamp(v float64) (float64, bool) {
	if v > 1 {
		if v > 1+domainTol {
			return 0, false
		}
		v = 1
	} else if v < -1 {
		if v < -1-domainTol {
			return 0, false
		}
		v = -1
	}
	return math.Acos(v), true
}

// asinClamp is asin with the same tolerance band as acosClamp.
func asinClamp(v float64) (float64, bool) {
	if v > 1 {
		if v > 1+domainTol {
			return 0, false
		}
		v = 1
	} else if v < -1 {
		if v < -1-domainTol {
			return 0, false
		}
		v = -1
	}
	return math.Asin(v), true
}

// changeOfBasis expresses b in the frame of a: a moves to the origin
// facing along +x, and the returned heading difference is in radians.
func changeOfBasis(a, b pose.Pose) (x, y, phi float64) {
	theta := a.ThetaRad()
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	x = dx*math.Cos(theta) + dy*math.Sin(theta)
	y = -dx*math.Sin(theta) + dy*math.Cos(theta)
	phi = b.ThetaRad() - a.ThetaRad()
	return x, y, phi
}
