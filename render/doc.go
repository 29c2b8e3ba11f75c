// Package render turns planner segment sequences into drawing
// instructions and ships two backends: a Recorder for headless tests
// and a gonum/plot image writer.
//
// The Renderer interface mirrors a turtle: relative Forward moves,
// TurnArc arcs with the turn side in the radius sign and the gear in
// the angle sign, and absolute SetPose repositioning. Trace drives any
// Renderer from a planner.Path, multiplying unit-radius params by the
// turning radius, and preserves heading and position continuity from
// segment to segment.
//
// Backends embed Cursor for the shared motion model, so a recorded or
// plotted trajectory always agrees with the pose arithmetic the
// planner's oracle was built on. The package never assumes a pixel
// scale; world units go in, and only the plot backend maps them to an
// image at save time.
package render
