package render

// Op tags one recorded drawing instruction.
type Op int

const (
	// OpForward is a straight move.
	OpForward Op = iota
	// OpTurnArc is an arc move.
	OpTurnArc
	// OpSetPose is an absolute jump.
	OpSetPose
)

// Instruction is one recorded Renderer call with its arguments.
type Instruction struct {
	Op Op

	// Dist is set for OpForward.
	Dist float64

	// Radius and AngleDeg are set for OpTurnArc.
	Radius   float64
	AngleDeg float64

	// X, Y, HeadingDeg are set for OpSetPose.
	X, Y, HeadingDeg float64
}

// Recorder is a headless Renderer that stores every instruction and
// tracks the resulting pose. It substitutes for a real drawing backend
// in tests and lets callers assert both the emitted stream and the
// geometric end state.
type Recorder struct {
	Cursor
	Ops []Instruction
}

// Forward records the move and advances the cursor.
func (r *Recorder) Forward(dist float64) {
	r.Ops = append(r.Ops, Instruction{Op: OpForward, Dist: dist})
	r.Cursor.Forward(dist)
}

// TurnArc records the arc and advances the cursor.
func (r *Recorder) TurnArc(radius, angleDeg float64) {
	r.Ops = append(r.Ops, Instruction{Op: OpTurnArc, Radius: radius, AngleDeg: angleDeg})
	r.Cursor.TurnArc(radius, angleDeg)
}

// SetPose records the jump and moves the cursor.
func (r *Recorder) SetPose(x, y, headingDeg float64) {
	r.Ops = append(r.Ops, Instruction{Op: OpSetPose, X: x, Y: y, HeadingDeg: headingDeg})
	r.Cursor.SetPose(x, y, headingDeg)
}
