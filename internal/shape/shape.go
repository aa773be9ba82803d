// Package shape builds closed outlines out of segments and places them in the world.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/texture"
)

var (
	ErrBadDimensions  = errors.New("shape: width and height must be positive")
	ErrBadRadius      = errors.New("shape: radius must be positive")
	ErrTooFewSides    = errors.New("shape: a regular polygon needs at least 3 sides")
	ErrTooFewVertices = errors.New("shape: a vertex list needs at least 2 vertices")
)

// Shape is a named set of segments stored relative to an anchor.
// Moving the shape moves the anchor only; the elements are re-based onto the
// anchor when the shape is placed.
type Shape struct {
	name     string
	elements []geom.Segment
	anchor   pixel.Vec
	radius   float64
}

// NewBox returns a w by h rectangle centered on the origin. Its sides are walked
// clockwise from the right one and the texture runs on around the corners.
// The radius is half the diagonal.
func NewBox(name string, w, h float64, tex texture.Texture) (*Shape, error) {
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("%w: %s is %vx%v", ErrBadDimensions, name, w, h)
	}
	vertices := []pixel.Vec{
		pixel.V(w/2, -h/2),
		pixel.V(w/2, h/2),
		pixel.V(-w/2, h/2),
		pixel.V(-w/2, -h/2),
	}
	return &Shape{
		name:     name,
		elements: closedLoop(vertices, tex),
		radius:   math.Hypot(w, h) / 2,
	}, nil
}

// NewRegularPolygon returns n equal sides with vertices on the circle of radius r
// around the origin, starting on the positive x axis.
func NewRegularPolygon(name string, r float64, n int, tex texture.Texture) (*Shape, error) {
	if !(r > 0) {
		return nil, fmt.Errorf("%w: %s has radius %v", ErrBadRadius, name, r)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: %s has %d", ErrTooFewSides, name, n)
	}
	step := 2 * math.Pi / float64(n)
	vertices := make([]pixel.Vec, n)
	for k := range vertices {
		vertices[k] = pixel.Unit(step * float64(k)).Scaled(r)
	}
	return &Shape{
		name:     name,
		elements: closedLoop(vertices, tex),
		radius:   r,
	}, nil
}

// FromVertices closes the given vertex list into a loop. The vertices are taken
// relative to the anchor, which starts at the origin. The radius is the distance
// of the farthest vertex.
func FromVertices(name string, vertices []pixel.Vec, tex texture.Texture) (*Shape, error) {
	if len(vertices) < 2 {
		return nil, fmt.Errorf("%w: %s has %d", ErrTooFewVertices, name, len(vertices))
	}
	radius := 0.0
	for _, v := range vertices {
		radius = math.Max(radius, v.Len())
	}
	return &Shape{
		name:     name,
		elements: closedLoop(vertices, tex),
		radius:   radius,
	}, nil
}

// closedLoop joins consecutive vertices and the last back to the first. Each
// side's texture is shifted by the perimeter walked so far.
func closedLoop(vertices []pixel.Vec, tex texture.Texture) []geom.Segment {
	elements := make([]geom.Segment, 0, len(vertices))
	walked := 0.0
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		side := geom.Between(v, next, tex.ShiftedPhase(walked))
		walked += side.Length()
		elements = append(elements, side)
	}
	return elements
}

func (s *Shape) Name() string { return s.name }

func (s *Shape) Anchor() pixel.Vec { return s.anchor }

// Radius bounds the shape around its anchor. It is only meant for coarse collision.
func (s *Shape) Radius() float64 { return s.radius }

// Elements returns a copy of the anchor-relative segments.
func (s *Shape) Elements() []geom.Segment {
	return append([]geom.Segment(nil), s.elements...)
}

// Placed returns the segments in world coordinates.
func (s *Shape) Placed() []geom.Segment {
	placed := make([]geom.Segment, len(s.elements))
	for i, e := range s.elements {
		placed[i] = e.Shifted(s.anchor)
	}
	return placed
}

// Shift moves the anchor by delta.
func (s *Shape) Shift(delta pixel.Vec) {
	s.anchor = s.anchor.Add(delta)
}

// MoveTo puts the anchor at p.
func (s *Shape) MoveTo(p pixel.Vec) {
	s.anchor = p
}

// Rotate turns every element about the anchor by alpha. The anchor stays put.
func (s *Shape) Rotate(alpha geom.Angle) {
	for i, e := range s.elements {
		s.elements[i] = e.WithBase(e.Base().Rotated(alpha.Rad())).Rotated(alpha)
	}
}

// Append adds the elements of o, re-expressed relative to this shape's anchor.
// The radius grows to cover them.
func (s *Shape) Append(o *Shape) {
	offset := o.anchor.Sub(s.anchor)
	for _, e := range o.elements {
		e = e.Shifted(offset)
		s.elements = append(s.elements, e)
		s.radius = math.Max(s.radius, math.Max(e.Base().Len(), e.End().Len()))
	}
}

// Clone returns an independent copy.
func (s *Shape) Clone() *Shape {
	c := *s
	c.elements = s.Elements()
	return &c
}
