package main

import (
	"github.com/faiface/pixel"
	"golang.org/x/sync/errgroup"

	"psykar.com/wallrunner/internal/agent"
	"psykar.com/wallrunner/internal/canvas"
	"psykar.com/wallrunner/internal/world"
)

type viewMode int

const (
	viewBoth viewMode = iota
	viewTop
	viewFirstPerson
)

func (m viewMode) String() string {
	switch m {
	case viewBoth:
		return "both"
	case viewTop:
		return "top"
	case viewFirstPerson:
		return "first person"
	}
	return "unknown"
}

func (m viewMode) next() viewMode {
	return (m + 1) % 3
}

func (m viewMode) showsTop() bool { return m != viewFirstPerson }

func (m viewMode) showsFirstPerson() bool { return m != viewTop }

// stale remembers the world and agent generations a view was last drawn at.
type stale struct {
	world, agent uint64
	valid        bool
}

// check reports whether a view drawn at the remembered generations is out of
// date, and remembers the given ones.
func (s *stale) check(world, agent uint64) bool {
	if s.valid && s.world == world && s.agent == agent {
		return false
	}
	s.world, s.agent, s.valid = world, agent, true
	return true
}

// renderer keeps the last drawing of each view and redraws only the views
// whose inputs changed.
type renderer struct {
	world *world.World
	agent *agent.Agent

	width, height, viewHeight int
	scale                     float64

	top, firstPerson         *canvas.Canvas
	topSeen, firstPersonSeen stale
}

func newRenderer(w *world.World, a *agent.Agent, o options) *renderer {
	return &renderer{
		world:      w,
		agent:      a,
		width:      o.width,
		height:     o.height,
		viewHeight: o.viewHeight,
		scale:      o.scale,
	}
}

// viewCenter is the world point shown in the middle of the top view: the
// middle of the world when unzoomed, the agent otherwise.
func (r *renderer) viewCenter() pixel.Vec {
	if r.scale == 1 {
		return pixel.V(float64(r.width)/2, float64(r.height)/2)
	}
	return r.agent.Center()
}

// render brings the views shown in mode up to date. Both views only read the
// world and the agent, so stale ones are drawn concurrently.
func (r *renderer) render(mode viewMode) (bool, error) {
	worldGen, agentGen := r.world.Generation(), r.agent.Generation()

	var g errgroup.Group
	changed := false
	if mode.showsTop() && r.topSeen.check(worldGen, agentGen) {
		changed = true
		center := r.viewCenter()
		g.Go(func() error {
			r.top = r.world.RenderTopView(r.agent.Body(), center, r.scale, r.width, r.height)
			return nil
		})
	}
	if mode.showsFirstPerson() && r.firstPersonSeen.check(worldGen, agentGen) {
		changed = true
		g.Go(func() error {
			r.firstPerson = r.agent.RenderView(r.width, r.viewHeight)
			return nil
		})
	}
	return changed, g.Wait()
}

// agentOnScreen is where the agent appears in the top view, in window
// coordinates with y growing upward.
func (r *renderer) agentOnScreen() pixel.Vec {
	p := world.Project(r.agent.Center(), r.viewCenter(), r.scale, r.width, r.height)
	return pixel.V(p.X, float64(r.viewHeight+r.height)-p.Y)
}

// screenToWorld maps a window position inside the top view back to the world.
func (r *renderer) screenToWorld(p pixel.Vec) pixel.Vec {
	onCanvas := pixel.V(p.X, float64(r.viewHeight+r.height)-p.Y)
	return canvas.Centered(r.viewCenter(), r.scale, r.width, r.height).M.Unproject(onCanvas)
}
