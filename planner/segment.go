package planner

import (
	"strconv"
	"strings"
)

// Steering is the curvature sense of one path segment.
type Steering int

const (
	// Left is a constant-radius arc turning left.
	Left Steering = -1
	// Straight is a straight run.
	Straight Steering = 0
	// Right is a constant-radius arc turning right.
	Right Steering = 1
)

// String returns the conventional one-letter word for the steering.
func (s Steering) String() string {
	switch s {
	case Left:
		return "L"
	case Straight:
		return "S"
	case Right:
		return "R"
	}
	return "?"
}

// Gear is the direction of travel along one path segment.
type Gear int

const (
	// Forward traverses the segment nose-first.
	Forward Gear = 1
	// Backward traverses the segment in reverse.
	Backward Gear = -1
)

// String returns "+" for forward and "-" for backward.
func (g Gear) String() string {
	if g == Backward {
		return "-"
	}
	return "+"
}

// Segment is one primitive of a curvature-constrained path at unit
// turning radius. Param is a distance for straights and a subtended
// angle in radians for arcs; it is never negative. Direction and turn
// sense are carried by Gear and Steering, not by sign.
type Segment struct {
	Steering Steering
	Gear     Gear
	Param    float64
}

// String renders the segment as e.g. "L+1.571".
func (s Segment) String() string {
	return s.Steering.String() + s.Gear.String() + strconv.FormatFloat(s.Param, 'f', 3, 64)
}

// Path is an ordered sequence of segments between one pose pair,
// expressed at unit turning radius. It is immutable once produced.
type Path []Segment

// Length returns the total path length in unit-radius units: straight
// params plus arc angles (an arc of angle a at radius 1 has length a).
func (p Path) Length() float64 {
	var sum float64
	for _, s := range p {
		sum += s.Param
	}
	return sum
}

// String joins the segment words, e.g. "L+1.571 S+4.000 R-0.785".
func (p Path) String() string {
	words := make([]string, len(p))
	for i, s := range p {
		words[i] = s.String()
	}
	return strings.Join(words, " ")
}
