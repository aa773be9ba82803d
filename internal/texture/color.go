package texture

import (
	"image/color"
	"math"
)

var black = color.RGBA{A: 255}

// Blend puts over on top of base with opacity alpha. The result is opaque.
func Blend(over, base color.RGBA, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	mix := func(o, b uint8) uint8 {
		return uint8(math.Round(float64(o)*alpha + float64(b)*(1-alpha)))
	}
	return color.RGBA{
		R: mix(over.R, base.R),
		G: mix(over.G, base.G),
		B: mix(over.B, base.B),
		A: 255,
	}
}

// Scale darkens c by factor, which is clamped to [0, 1].
func Scale(c color.RGBA, factor float64) color.RGBA {
	return Blend(c, black, factor)
}

// Over composites a possibly translucent c onto an opaque base using c's own alpha.
func Over(c, base color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	return Blend(c, base, float64(c.A)/255)
}
