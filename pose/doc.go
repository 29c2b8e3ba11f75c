// Package pose provides the oriented-waypoint value type shared by the
// planner, the Reeds-Shepp oracle and the renderer, plus the waypoint
// file reader.
//
// A Pose is an immutable oriented 2D point: a position and a heading.
// Headings are stored in degrees for interoperability with drawing
// backends; ThetaRad converts for trigonometric work. Scale multiplies
// the position only; rotation is scale-invariant, which is what makes
// unit-radius path oracles reusable at arbitrary turning radii.
//
// ReadWaypoints parses the `x,y,theta_degrees` line format. Malformed
// lines are skipped and reported as warnings, never as fatal errors;
// only an unopenable file yields an error (with an empty waypoint set).
package pose
