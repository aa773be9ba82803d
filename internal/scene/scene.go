// Package scene reads wall layouts and the agent's starting point from YAML.
package scene

import (
	_ "embed"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v1"

	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/shape"
)

//go:embed default.yaml
var defaultScene []byte

// Start is the agent's starting state.
type Start struct {
	Position    pixel.Vec
	Facing      geom.Angle
	FieldOfView float64 // radians
	MaxView     float64
	Step        float64
	TurnDeg     float64
	Radius      float64
}

// Scene is a loaded scene with every shape built and placed.
type Scene struct {
	Background color.RGBA
	Start      Start
	Shapes     []*shape.Shape
}

// defaults are kept for anything a scene file leaves out. yaml appends a
// sequence to a slice already present, so slices stay nil here.
func defaults() File {
	return File{
		Background: "black",
		Agent: AgentRecord{
			FOV:      120,
			MaxView:  1000,
			Step:     5,
			Turn:     5,
			Radius:   10,
		},
	}
}

var log = logrus.WithField("component", "scene")

// Default returns the built-in room.
func Default() (*Scene, error) {
	return Parse(defaultScene)
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML. A bad shape record is logged and skipped;
// a bad background or agent block fails the whole scene.
func Parse(data []byte) (*Scene, error) {
	f := defaults()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	bg, err := ParseColor(f.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	start, err := f.Agent.start()
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	s := &Scene{Background: bg, Start: start}
	for i, r := range f.Shapes {
		built, err := r.build()
		if err != nil {
			log.WithFields(logrus.Fields{
				"index": i,
				"name":  r.Name,
			}).WithError(err).Warn("Shape record skipped.")
			continue
		}
		log.WithFields(logrus.Fields{
			"name":   built.Name(),
			"kind":   r.Kind,
			"walls":  len(built.Elements()),
			"anchor": built.Anchor(),
		}).Debug("Shape built.")
		s.Shapes = append(s.Shapes, built)
	}
	log.WithField("shapes", len(s.Shapes)).Info("Scene loaded.")
	return s, nil
}

func (a AgentRecord) start() (Start, error) {
	var pos pixel.Vec
	if len(a.Position) > 0 {
		var err error
		if pos, err = vec(a.Position); err != nil {
			return Start{}, err
		}
	}
	if !(a.FOV > 0 && a.FOV <= 360) {
		return Start{}, fmt.Errorf("scene: fov %v must be in (0, 360]", a.FOV)
	}
	if !(a.MaxView > 0) {
		return Start{}, fmt.Errorf("scene: max_view %v must be positive", a.MaxView)
	}
	if !(a.Radius > 0) {
		return Start{}, fmt.Errorf("scene: radius %v must be positive", a.Radius)
	}
	if !(a.Step > 0) {
		return Start{}, fmt.Errorf("scene: step %v must be positive", a.Step)
	}
	if !(a.Turn > 0) {
		return Start{}, fmt.Errorf("scene: turn %v must be positive", a.Turn)
	}
	return Start{
		Position:    pos,
		Facing:      geom.Deg(a.Facing),
		FieldOfView: a.FOV * math.Pi / 180,
		MaxView:     a.MaxView,
		Step:        a.Step,
		TurnDeg:     a.Turn,
		Radius:      a.Radius,
	}, nil
}
