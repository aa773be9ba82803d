package geom

import (
	"image/color"

	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/texture"
)

// Hit is where one segment crosses another.
type Hit struct {
	Point pixel.Vec

	// T and U are the crossing parameters along the caller and along the other segment.
	T, U float64

	// Distance is measured along the caller from its base.
	Distance float64

	// Position is measured along the other segment from its base.
	Position float64

	// Color is the other segment's texture sampled at Position.
	Color color.RGBA
}

// Intersect returns where s crosses other. Only strict interior crossings count:
// touching at an endpoint, parallel and collinear segments report false.
func (s Segment) Intersect(other Segment) (Hit, bool) {
	det := s.tip.Cross(other.tip)
	if det == 0 {
		return Hit{}, false
	}

	d := s.base.Sub(other.base)
	t := (d.Y*other.tip.X - d.X*other.tip.Y) / det
	u := (d.Y*s.tip.X - d.X*s.tip.Y) / det

	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return Hit{}, false
	}

	pos := u * other.length
	return Hit{
		Point:    s.At(t),
		T:        t,
		U:        u,
		Distance: t * s.length,
		Position: pos,
		Color:    other.ColorAt(pos),
	}, true
}

// OrthogonalFromPoint returns the segment from p to its perpendicular foot on s.
// It reports false when the foot falls on the extension of s rather than on s.
// The result is textured with the plain color of s at the foot.
func (s Segment) OrthogonalFromPoint(p pixel.Vec) (Segment, bool) {
	sq := s.tip.Dot(s.tip)
	if sq == 0 {
		return Segment{}, false
	}

	t := p.Sub(s.base).Dot(s.tip) / sq
	if t < 0 || t > 1 {
		return Segment{}, false
	}

	foot := s.At(t)
	return New(p, foot.Sub(p), texture.Plain(s.ColorAt(t*s.length))), true
}
