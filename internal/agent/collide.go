package agent

import "github.com/faiface/pixel"

// Collide pushes the agent out of the walls it overlaps, treating the body as
// a circle of the body's radius. It reports whether the agent was moved.
//
// Walls are tried first: the center is pushed straight away from each wall
// whose perpendicular foot is closer than the radius. When no wall did that,
// the agent may be poking into a convex corner that no wall's interior covers,
// so each wall's start point is then tried as a point obstacle.
func (a *Agent) Collide() bool {
	r := a.body.Radius()
	walls := a.scan.Walls()

	pushed := false
	for _, wall := range walls {
		orth, ok := wall.OrthogonalFromPoint(a.center)
		if !ok {
			continue
		}
		d := orth.Length()
		if d >= r {
			continue
		}
		var away pixel.Vec
		if d > 0 {
			away = orth.Tip().Scaled(-1 / d)
		} else {
			// on the wall itself: leave along its left-hand normal
			away = wall.Tip().Normal().Unit()
		}
		a.shift(away.Scaled(r - d))
		pushed = true
	}

	if !pushed {
		for _, wall := range walls {
			off := a.center.Sub(wall.Base())
			d := off.Len()
			if d >= r || d == 0 {
				continue
			}
			a.shift(off.Scaled((r - d) / d))
			pushed = true
		}
	}

	if pushed {
		a.generation++
	}
	return pushed
}
