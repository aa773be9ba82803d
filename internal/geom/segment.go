// Package geom holds the oriented segment every wall, ray and body edge is made of.
//
// A Segment is a base point plus a tip offset relative to it. Length and
// direction are cached when the value is built; since every transform returns
// a new Segment, the cache cannot go stale.
package geom

import (
	"image/color"
	"math"

	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/texture"
)

// Segment is an oriented line segment from Base to Base+Tip.
type Segment struct {
	base    pixel.Vec
	tip     pixel.Vec
	texture texture.Texture
	length  float64
	phi     Angle
}

// New returns the segment starting at base with offset tip.
// A zero tip has length 0 and direction 0.
func New(base, tip pixel.Vec, tex texture.Texture) Segment {
	s := Segment{base: base, tip: tip, texture: tex}
	s.length = tip.Len()
	if s.length > 0 {
		s.phi = Rad(math.Atan2(tip.Y, tip.X))
	}
	return s
}

// Between returns the segment from a to b.
func Between(a, b pixel.Vec, tex texture.Texture) Segment {
	return New(a, b.Sub(a), tex)
}

// FromPolar returns the segment starting at base pointing along phi.
func FromPolar(base pixel.Vec, phi Angle, length float64, tex texture.Texture) Segment {
	if length <= 0 {
		return Segment{base: base, texture: tex}
	}
	return Segment{
		base:    base,
		tip:     pixel.Unit(phi.Rad()).Scaled(length),
		texture: tex,
		length:  length,
		phi:     phi.Normalized(),
	}
}

func (s Segment) Base() pixel.Vec { return s.base }

func (s Segment) Tip() pixel.Vec { return s.tip }

// End is the absolute position of the tip.
func (s Segment) End() pixel.Vec { return s.base.Add(s.tip) }

func (s Segment) Texture() texture.Texture { return s.texture }

func (s Segment) Length() float64 { return s.length }

func (s Segment) Phi() Angle { return s.phi }

// At returns the point at parameter t, where 0 is the base and 1 the end.
func (s Segment) At(t float64) pixel.Vec {
	return s.base.Add(s.tip.Scaled(t))
}

// ColorAt samples the texture at distance pos from the base.
func (s Segment) ColorAt(pos float64) color.RGBA {
	return s.texture.Sample(s.length, pos)
}

// Line converts s into a pixel.Line.
func (s Segment) Line() pixel.Line {
	return pixel.L(s.base, s.End())
}

// Rotated turns the tip around the base by alpha.
func (s Segment) Rotated(alpha Angle) Segment {
	if s.length == 0 {
		return s
	}
	return FromPolar(s.base, s.phi.Turn(alpha), s.length, s.texture)
}

// Shifted moves the base by delta, keeping the tip.
func (s Segment) Shifted(delta pixel.Vec) Segment {
	s.base = s.base.Add(delta)
	return s
}

// WithBase moves the base to b, keeping the tip.
func (s Segment) WithBase(b pixel.Vec) Segment {
	s.base = b
	return s
}

// Scaled multiplies the tip by f.
func (s Segment) Scaled(f float64) Segment {
	return New(s.base, s.tip.Scaled(f), s.texture)
}

// Reversed points the tip the other way from the same base.
func (s Segment) Reversed() Segment {
	return New(s.base, s.tip.Scaled(-1), s.texture)
}

// Unit returns the segment of length 1 with the same base and direction.
func (s Segment) Unit() Segment {
	if s.length == 0 {
		return s
	}
	return FromPolar(s.base, s.phi, 1, s.texture)
}

// Normal returns the segment turned a quarter counter-clockwise, same length and base.
func (s Segment) Normal() Segment {
	return New(s.base, s.tip.Normal(), s.texture)
}

// Add is vector addition of the tips. Base and texture come from s.
func (s Segment) Add(o Segment) Segment {
	return New(s.base, s.tip.Add(o.tip), s.texture)
}

// Sub is vector subtraction of the tips. Base and texture come from s.
func (s Segment) Sub(o Segment) Segment {
	return New(s.base, s.tip.Sub(o.tip), s.texture)
}
