package shape

import (
	"fmt"

	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/texture"
)

// Kind names one of the outline builders.
type Kind int

const (
	KindBox Kind = iota
	KindRegularPolygon
	KindVertices
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRegularPolygon:
		return "polygon"
	case KindVertices:
		return "vertices"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Outline describes a shape before it is built. Only the fields of its Kind are read.
type Outline struct {
	Kind Kind

	Width, Height float64 // box

	Radius float64 // regular polygon
	Sides  int

	Vertices []pixel.Vec // vertex list
}

// Build dispatches to the builder for o.Kind.
func Build(name string, o Outline, tex texture.Texture) (*Shape, error) {
	switch o.Kind {
	case KindBox:
		return NewBox(name, o.Width, o.Height, tex)
	case KindRegularPolygon:
		return NewRegularPolygon(name, o.Radius, o.Sides, tex)
	case KindVertices:
		return FromVertices(name, o.Vertices, tex)
	}
	return nil, fmt.Errorf("shape: unknown kind %v for %s", o.Kind, name)
}
