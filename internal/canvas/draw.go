package canvas

import (
	"math"

	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/geom"
)

// Projection maps world coordinates onto the canvas by a uniform scale and a translation.
type Projection struct {
	M     pixel.Matrix
	Scale float64
}

// Centered returns the projection that puts center in the middle of a width by
// height canvas, scale pixels per world unit.
func Centered(center pixel.Vec, scale float64, width, height int) Projection {
	return Projection{
		M: pixel.IM.
			Moved(center.Scaled(-1)).
			Scaled(pixel.ZV, scale).
			Moved(pixel.V(float64(width/2), float64(height/2))),
		Scale: scale,
	}
}

// DrawSegment plots s one pixel per step along it, each pixel colored by the
// texture at that point.
func (c *Canvas) DrawSegment(s geom.Segment, p Projection) {
	if s.Length() == 0 || p.Scale <= 0 {
		return
	}
	steps := int(s.Length() * p.Scale)
	for i := 0; i <= steps; i++ {
		pos := float64(i) / p.Scale
		at := p.M.Project(s.At(pos / s.Length()))
		c.Set(int(math.Floor(at.X)), int(math.Floor(at.Y)), s.ColorAt(pos))
	}
}

// DrawSegmentSmooth antialiases s: every pixel of its bounding box within one
// pixel of the segment gets the texture color at its foot, faded by distance.
func (c *Canvas) DrawSegmentSmooth(s geom.Segment, p Projection) {
	if s.Length() == 0 || p.Scale <= 0 {
		return
	}
	a, b := p.M.Project(s.Base()), p.M.Project(s.End())
	x0, x1 := int(math.Floor(math.Min(a.X, b.X)))-1, int(math.Ceil(math.Max(a.X, b.X)))+1
	y0, y1 := int(math.Floor(math.Min(a.Y, b.Y)))-1, int(math.Ceil(math.Max(a.Y, b.Y)))+1

	// clip to the canvas so a huge segment does not walk off-screen pixels
	x0, y0 = maxInt(x0, 0), maxInt(y0, 0)
	x1, y1 = minInt(x1, c.width-1), minInt(y1, c.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			orth, ok := s.OrthogonalFromPoint(p.M.Unproject(pixel.V(float64(x), float64(y))))
			if !ok {
				continue
			}
			d := orth.Length() * p.Scale
			if d >= 1 {
				continue
			}
			col := orth.Texture().Main
			col.A = uint8(math.Round(255 * (1 - d)))
			c.Set(x, y, col)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
