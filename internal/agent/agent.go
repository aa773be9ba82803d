// Package agent moves an oriented body through the walls and renders what it sees.
package agent

import (
	"errors"
	"image/color"
	"math"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"

	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/shape"
	"psykar.com/wallrunner/internal/texture"
)

var (
	ErrFieldOfView  = errors.New("agent: field of view must be in (0, 2π]")
	ErrViewDistance = errors.New("agent: max view distance must be positive")
)

// Direction is a step relative to the agent's facing.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Agent is a body with a position, a facing and a field of view.
//
// The walls it sees and collides with are a snapshot taken by
// UpdateVisibleWalls. Refreshing that snapshot after the world changes is up
// to the caller.
type Agent struct {
	center     pixel.Vec
	facing     geom.Angle
	body       *shape.Shape
	fov        float64
	maxView    float64
	background color.RGBA
	scan       Scanner
	generation uint64
}

// DefaultBody is a triangle of circumradius 10 with one vertex pointing forward.
func DefaultBody() *shape.Shape {
	body, _ := shape.NewRegularPolygon("agent", 10, 3, texture.Plain(colornames.Red))
	return body
}

// New places an agent with DefaultBody at center, looking along facing.
// fov is the whole sweep of the view in radians.
func New(center pixel.Vec, facing geom.Angle, fov, maxView float64) (*Agent, error) {
	if !(fov > 0 && fov <= 2*math.Pi) {
		return nil, ErrFieldOfView
	}
	if !(maxView > 0) {
		return nil, ErrViewDistance
	}
	a := &Agent{
		center:     center,
		facing:     facing.Normalized(),
		fov:        fov,
		maxView:    maxView,
		background: color.RGBA{A: 255},
		scan:       Linear(nil),
	}
	a.SetBody(DefaultBody())
	return a, nil
}

// SetBody replaces the body with a copy of body. The body is taken as built at
// the origin facing along +x; it is turned to the agent's facing and moved to
// its center.
func (a *Agent) SetBody(body *shape.Shape) {
	body = body.Clone()
	body.MoveTo(a.center)
	body.Rotate(a.facing)
	a.body = body
	a.generation++
}

// SetBackground sets the color of view columns that hit nothing.
func (a *Agent) SetBackground(c color.RGBA) {
	a.background = c
	a.generation++
}

// UpdateVisibleWalls takes a copy of walls as the agent's snapshot.
func (a *Agent) UpdateVisibleWalls(walls []geom.Segment) {
	a.scan = Linear(append([]geom.Segment(nil), walls...))
	a.generation++
}

// SetScanner installs a custom wall index in place of the snapshot.
func (a *Agent) SetScanner(s Scanner) {
	a.scan = s
	a.generation++
}

func (a *Agent) Center() pixel.Vec { return a.center }

func (a *Agent) Facing() geom.Angle { return a.facing }

func (a *Agent) FieldOfView() float64 { return a.fov }

func (a *Agent) MaxViewDistance() float64 { return a.maxView }

// Body returns the agent's shape. It moves with the agent; callers must not modify it.
func (a *Agent) Body() *shape.Shape { return a.body }

// VisibleWalls returns the current wall snapshot.
func (a *Agent) VisibleWalls() []geom.Segment {
	return append([]geom.Segment(nil), a.scan.Walls()...)
}

// Generation counts changes to anything the agent's view depends on.
func (a *Agent) Generation() uint64 { return a.generation }

// Move steps the agent relative to its facing and then pushes it out of any
// wall it ran into. Left and right are taken with y growing downward, as on screen.
func (a *Agent) Move(dir Direction, step float64) {
	var local pixel.Vec
	switch dir {
	case Forward:
		local = pixel.V(step, 0)
	case Backward:
		local = pixel.V(-step, 0)
	case Left:
		local = pixel.V(0, -step)
	case Right:
		local = pixel.V(0, step)
	default:
		return
	}
	a.shift(local.Rotated(a.facing.Rad()))
	a.Collide()
	a.generation++
}

// Turn rotates the agent and its body by alpha.
func (a *Agent) Turn(alpha geom.Angle) {
	a.facing = a.facing.Turn(alpha)
	a.body.Rotate(alpha)
	a.generation++
}

// TurnDegrees rotates the agent by deg degrees.
func (a *Agent) TurnDegrees(deg float64) {
	a.Turn(geom.Angle(deg * math.Pi / 180))
}

// shift moves the center and the body anchor together.
func (a *Agent) shift(delta pixel.Vec) {
	a.center = a.center.Add(delta)
	a.body.Shift(delta)
}

// State is a plain copy of the agent for logging and dumps.
type State struct {
	Center          pixel.Vec
	FacingDeg       float64
	FieldOfViewDeg  float64
	MaxViewDistance float64
	Radius          float64
	VisibleWalls    int
	Generation      uint64
}

func (a *Agent) Snapshot() State {
	return State{
		Center:          a.center,
		FacingDeg:       a.facing.Deg(),
		FieldOfViewDeg:  a.fov * 180 / math.Pi,
		MaxViewDistance: a.maxView,
		Radius:          a.body.Radius(),
		VisibleWalls:    len(a.scan.Walls()),
		Generation:      a.generation,
	}
}
