package scene

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"

	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/shape"
	"psykar.com/wallrunner/internal/texture"
)

// File is the YAML layout of a scene.
type File struct {
	Background string      `yaml:"background"`
	Agent      AgentRecord `yaml:"agent"`
	Shapes     []Record    `yaml:"shapes"`
}

// AgentRecord is where the agent starts and how it moves. Angles are in degrees.
type AgentRecord struct {
	Position []float64 `yaml:"position"`
	Facing   float64   `yaml:"facing"`
	FOV      float64   `yaml:"fov"`
	MaxView  float64   `yaml:"max_view"`
	Step     float64   `yaml:"step"`
	Turn     float64   `yaml:"turn"`
	Radius   float64   `yaml:"radius"`
}

// Record is one wall shape, built at the origin and then moved to At and
// turned by Rotate degrees.
type Record struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Radius float64 `yaml:"radius"`
	Sides  int     `yaml:"sides"`

	Vertices [][]float64 `yaml:"vertices"`

	At      []float64     `yaml:"at"`
	Rotate  float64       `yaml:"rotate"`
	Texture TextureRecord `yaml:"texture"`
}

// TextureRecord names colors by colornames name or as #rrggbb. Edge and
// periodic colors default to the main one.
type TextureRecord struct {
	Main         string  `yaml:"main"`
	Edge         string  `yaml:"edge"`
	EdgeWidth    float64 `yaml:"edge_width"`
	EdgeCurve    string  `yaml:"edge_curve"`
	Periodic     string  `yaml:"periodic"`
	Period       float64 `yaml:"period"`
	Phase        float64 `yaml:"phase"`
	BodyCurve    string  `yaml:"body_curve"`
	BodyFraction float64 `yaml:"body_fraction"`
}

var kinds = map[string]shape.Kind{
	shape.KindBox.String():            shape.KindBox,
	shape.KindRegularPolygon.String(): shape.KindRegularPolygon,
	shape.KindVertices.String():       shape.KindVertices,
}

var edgeCurves = map[string]texture.EdgeCurve{
	"":          texture.EdgeStep,
	"step":      texture.EdgeStep,
	"linear":    texture.EdgeLinear,
	"quadratic": texture.EdgeQuadratic,
}

var bodyCurves = map[string]texture.BodyCurve{
	"":           texture.BodyNone,
	"none":       texture.BodyNone,
	"step":       texture.BodyStep,
	"linear":     texture.BodyLinear,
	"sinusoidal": texture.BodySinusoidal,
	"sine":       texture.BodySinusoidal,
}

// ParseColor reads a colornames name ("darkgreen") or a hex color
// ("#006400", "#00640080").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		b, err := hex.DecodeString(s[1:])
		if err != nil || (len(b) != 3 && len(b) != 4) {
			return color.RGBA{}, fmt.Errorf("scene: bad hex color %q", s)
		}
		c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}
		if len(b) == 4 {
			c.A = b[3]
		}
		return c, nil
	}
	c, ok := colornames.Map[s]
	if !ok {
		return color.RGBA{}, fmt.Errorf("scene: unknown color %q", s)
	}
	return c, nil
}

func (r TextureRecord) build() (texture.Texture, error) {
	base, err := ParseColor(r.Main)
	if err != nil {
		return texture.Texture{}, err
	}
	tex := texture.Plain(base)

	if r.Edge != "" {
		if tex.Edge, err = ParseColor(r.Edge); err != nil {
			return texture.Texture{}, err
		}
	}
	if r.Periodic != "" {
		if tex.Periodic, err = ParseColor(r.Periodic); err != nil {
			return texture.Texture{}, err
		}
	}

	var ok bool
	if tex.EdgeCurve, ok = edgeCurves[strings.ToLower(r.EdgeCurve)]; !ok {
		return texture.Texture{}, fmt.Errorf("scene: unknown edge curve %q", r.EdgeCurve)
	}
	if tex.BodyCurve, ok = bodyCurves[strings.ToLower(r.BodyCurve)]; !ok {
		return texture.Texture{}, fmt.Errorf("scene: unknown body curve %q", r.BodyCurve)
	}
	tex.EdgeWidth = r.EdgeWidth
	tex.Period = r.Period
	tex.Phase = r.Phase
	tex.BodyFraction = r.BodyFraction
	return tex, nil
}

func (r Record) outline() (shape.Outline, error) {
	kind, ok := kinds[strings.ToLower(r.Kind)]
	if !ok {
		return shape.Outline{}, fmt.Errorf("scene: unknown shape kind %q", r.Kind)
	}
	o := shape.Outline{
		Kind:   kind,
		Width:  r.Width,
		Height: r.Height,
		Radius: r.Radius,
		Sides:  r.Sides,
	}
	for _, v := range r.Vertices {
		p, err := vec(v)
		if err != nil {
			return shape.Outline{}, err
		}
		o.Vertices = append(o.Vertices, p)
	}
	return o, nil
}

// build returns the shape placed and turned as the record says.
func (r Record) build() (*shape.Shape, error) {
	o, err := r.outline()
	if err != nil {
		return nil, err
	}
	tex, err := r.Texture.build()
	if err != nil {
		return nil, err
	}
	s, err := shape.Build(r.Name, o, tex)
	if err != nil {
		return nil, err
	}
	if r.At != nil {
		at, err := vec(r.At)
		if err != nil {
			return nil, err
		}
		s.Shift(at)
	}
	s.Rotate(geom.Deg(r.Rotate))
	return s, nil
}

func vec(xy []float64) (pixel.Vec, error) {
	if len(xy) != 2 {
		return pixel.ZV, fmt.Errorf("scene: want [x, y], got %v", xy)
	}
	return pixel.V(xy[0], xy[1]), nil
}
