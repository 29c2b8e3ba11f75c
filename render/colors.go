package render

import (
	"image/color"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Palette returns n distinct pen colors, deterministic per seed. Hues
// are stratified over the wheel with uniform jitter inside each band,
// while saturation and value stay fixed in a band that reads well on a
// white plot, so every draw is accepted in one sample.
func Palette(n int, seed uint64) []color.Color {
	if n <= 0 {
		return nil
	}
	jitter := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)}

	out := make([]color.Color, n)
	for i := range out {
		hue := (float64(i) + jitter.Rand()) * 360 / float64(n)
		out[i] = hsv(hue, 0.85, 0.75)
	}
	return out
}

// hsv converts hue in degrees and saturation/value in [0,1] to RGBA.
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 60
	sector := int(h)
	f := h - float64(sector)

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}
