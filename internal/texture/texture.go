// Package texture samples procedural colors along a straight wall.
//
// A Texture is a plain value: a main color, an optional periodic body pattern
// and an optional highlight near both ends. Sampling is a pure function of the
// wall length and the position along it, so chained walls of one closed shape
// can share a pattern by shifting its phase.
package texture

import (
	"image/color"
	"math"
)

// EdgeCurve selects how the edge color fades in toward the wall ends.
type EdgeCurve int

const (
	EdgeStep EdgeCurve = iota
	EdgeLinear
	EdgeQuadratic
)

// BodyCurve selects the shape of the periodic body pattern.
type BodyCurve int

const (
	BodyNone BodyCurve = iota
	BodyStep
	BodyLinear
	BodySinusoidal
)

// Texture describes the colors of a wall.
type Texture struct {
	Main color.RGBA

	Edge      color.RGBA
	EdgeWidth float64
	EdgeCurve EdgeCurve

	Periodic     color.RGBA
	Period       float64
	Phase        float64 // fraction of one period, [0, 1)
	BodyCurve    BodyCurve
	BodyFraction float64 // [0, 1]
}

// Plain returns a texture of a single color.
func Plain(c color.RGBA) Texture {
	return Texture{Main: c, Edge: c, Periodic: c}
}

// Sample returns the color at position along a wall of the given total length.
// The body pattern is applied first and the edges on top of it, so outlines
// stay visible whatever the pattern.
func (t Texture) Sample(total, position float64) color.RGBA {
	c := t.Main

	if t.Period > 0 {
		phase := frac(position/t.Period + t.Phase)

		switch t.BodyCurve {
		case BodyStep:
			if phase < t.BodyFraction {
				c = t.Periodic
			}
		case BodyLinear:
			c = Blend(t.Periodic, c, t.ramp(phase))
		case BodySinusoidal:
			c = Blend(t.Periodic, c, (math.Sin(phase*2*math.Pi)+1)/2)
		}
	}

	if t.EdgeWidth > 0 {
		d := math.Min(position, total-position)
		if d < t.EdgeWidth {
			f := clamp01(1 - d/t.EdgeWidth)

			switch t.EdgeCurve {
			case EdgeLinear:
				c = Blend(t.Edge, c, f)
			case EdgeQuadratic:
				c = Blend(t.Edge, c, f*f)
			default:
				c = t.Edge
			}
		}
	}

	return c
}

// ramp is a triangle rising from 0 at phase 0 to 1 at BodyFraction and back to 0 at phase 1.
func (t Texture) ramp(phase float64) float64 {
	bf := clamp01(t.BodyFraction)
	if phase < bf {
		return phase / bf
	}
	if bf >= 1 {
		return 1
	}
	return (1 - phase) / (1 - bf)
}

// ShiftedPhase returns a copy whose pattern starts shift units further along.
// Textures without a period are returned unchanged.
func (t Texture) ShiftedPhase(shift float64) Texture {
	if t.Period > 0 {
		t.Phase = frac(t.Phase + shift/t.Period)
	}
	return t
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
