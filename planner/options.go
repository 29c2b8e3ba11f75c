package planner

import "fmt"

// Method selects the tour search algorithm.
type Method int

const (
	// MethodExact enumerates every ordering with waypoint 0 fixed as
	// the start and keeps the cheapest closed tour. Factorial in the
	// waypoint count; guarded by Options.MaxExact.
	MethodExact Method = iota

	// MethodGreedy builds the tour by repeatedly visiting the unvisited
	// waypoint with the minimum directed cost from the current end.
	// O(n²) oracle calls, no optimality guarantee.
	MethodGreedy
)

// String names the method for logs and fallback notices.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodGreedy:
		return "greedy"
	}
	return "unknown"
}

// ParseMethod maps a method name ("exact", "greedy") to its Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "exact":
		return MethodExact, nil
	case "greedy":
		return MethodGreedy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// DefaultMaxExact is the practical ceiling for MethodExact: at this
// waypoint count and above, Solve falls back to MethodGreedy (or
// refuses, under StrictExact).
const DefaultMaxExact = 10

// Options configures a tour solve. The zero value requests an exact
// solve with the default ceiling and the greedy fallback enabled.
type Options struct {
	// Method is the requested algorithm.
	Method Method

	// MaxExact caps MethodExact; 0 means DefaultMaxExact.
	MaxExact int

	// StrictExact turns the greedy fallback into ErrExactIntractable,
	// for callers that would rather refuse than downgrade.
	StrictExact bool
}

// maxExact resolves the ceiling, applying the default.
func (o Options) maxExact() int {
	if o.MaxExact <= 0 {
		return DefaultMaxExact
	}
	return o.MaxExact
}
