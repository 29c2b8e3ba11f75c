package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/M-Podi/reeds-shepp-curves/pose"
)

// PlotConfig styles the plot backend. The zero value is usable.
type PlotConfig struct {
	// Title is the plot title.
	Title string

	// ArcStepDeg caps the angular extent of one arc-flattening chord,
	// in degrees. 0 means 4.
	ArcStepDeg float64

	// LineWidthPt is the trajectory pen width in points. 0 means 2.
	LineWidthPt float64
}

func (c PlotConfig) arcStep() float64 {
	if c.ArcStepDeg <= 0 {
		return 4
	}
	return c.ArcStepDeg
}

func (c PlotConfig) lineWidth() vg.Length {
	if c.LineWidthPt <= 0 {
		return vg.Points(2)
	}
	return vg.Points(c.LineWidthPt)
}

// Plot is a headless Renderer that accumulates trajectories into a
// gonum plot and writes PNG/SVG (format chosen by file extension).
// Arcs are flattened into short chords at draw time; the instruction
// stream itself still carries true arcs.
//
// Drawing methods cannot report failures (the Renderer contract has no
// return values), so the first internal error is held and surfaced by
// Save.
type Plot struct {
	Cursor

	cfg      PlotConfig
	p        *plot.Plot
	cur      plotter.XYs
	pen      color.Color
	penName  string
	legended map[string]bool
	err      error
}

// NewPlot builds an empty plot with equal-scale axes.
func NewPlot(cfg PlotConfig) *Plot {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Legend.Left = true

	return &Plot{
		cfg:      cfg,
		p:        p,
		pen:      color.Black,
		legended: make(map[string]bool),
	}
}

// SetPen closes the current polyline and switches to a new named pen.
// The first polyline drawn with each pen name lands in the legend.
func (pl *Plot) SetPen(name string, c color.Color) {
	pl.flush()
	pl.penName = name
	pl.pen = c
}

// Forward implements Renderer.
func (pl *Plot) Forward(dist float64) {
	pl.ensureStart()
	pl.Cursor.Forward(dist)
	pl.cur = append(pl.cur, plotter.XY{X: pl.X, Y: pl.Y})
}

// TurnArc implements Renderer, flattening the arc into chords no wider
// than the configured step.
func (pl *Plot) TurnArc(radius, angleDeg float64) {
	pl.ensureStart()

	span := angleDeg
	if span < 0 {
		span = -span
	}
	steps := int(span/pl.cfg.arcStep()) + 1
	for i := 0; i < steps; i++ {
		pl.Cursor.TurnArc(radius, angleDeg/float64(steps))
		pl.cur = append(pl.cur, plotter.XY{X: pl.X, Y: pl.Y})
	}
}

// SetPose implements Renderer: the pen lifts, so the current polyline
// ends and a fresh one starts at the new position.
func (pl *Plot) SetPose(x, y, headingDeg float64) {
	pl.flush()
	pl.Cursor.SetPose(x, y, headingDeg)
}

// MarkWaypoint draws a black arrow glyph at the waypoint's position
// pointing along its heading, sized in world units.
func (pl *Plot) MarkWaypoint(wp pose.Pose, size float64) {
	if size <= 0 {
		size = 0.6
	}

	var glyph Cursor
	glyph.SetPose(wp.X(), wp.Y(), wp.Theta)
	shaft := plotter.XYs{{X: glyph.X, Y: glyph.Y}}
	glyph.Forward(size)
	tip := plotter.XY{X: glyph.X, Y: glyph.Y}
	shaft = append(shaft, tip)

	// two barbs swept back from the tip
	for _, barb := range []float64{150, -150} {
		glyph.SetPose(tip.X, tip.Y, wp.Theta+barb)
		glyph.Forward(size / 3)
		shaft = append(shaft, plotter.XY{X: glyph.X, Y: glyph.Y}, tip)
	}

	line, err := plotter.NewLine(shaft)
	if err != nil {
		pl.fail(err)
		return
	}
	line.Color = color.Black
	line.Width = vg.Points(1)
	pl.p.Add(line)
}

// Save flushes pending geometry and writes the image, w×h in inches.
// It also reports the first error any drawing call swallowed.
func (pl *Plot) Save(w, h float64, file string) error {
	pl.flush()
	if pl.err != nil {
		return pl.err
	}
	return pl.p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, file)
}

// ensureStart seeds a new polyline with the current position.
func (pl *Plot) ensureStart() {
	if len(pl.cur) == 0 {
		pl.cur = append(pl.cur, plotter.XY{X: pl.X, Y: pl.Y})
	}
}

// flush commits the pending polyline to the plot.
func (pl *Plot) flush() {
	if len(pl.cur) < 2 {
		pl.cur = nil
		return
	}
	line, err := plotter.NewLine(pl.cur)
	pl.cur = nil
	if err != nil {
		pl.fail(err)
		return
	}
	line.Color = pl.pen
	line.Width = pl.cfg.lineWidth()
	pl.p.Add(line)

	if pl.penName != "" && !pl.legended[pl.penName] {
		pl.p.Legend.Add(pl.penName, line)
		pl.legended[pl.penName] = true
	}
}

// fail keeps the first swallowed error for Save.
func (pl *Plot) fail(err error) {
	if pl.err == nil {
		pl.err = err
	}
}
