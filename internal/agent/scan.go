package agent

import "psykar.com/wallrunner/internal/geom"

// Scanner answers the two wall queries the agent makes: which walls to collide
// with and which wall a ray strikes first.
type Scanner interface {
	Walls() []geom.Segment
	Nearest(ray geom.Segment) (geom.Hit, bool)
}

// Linear scans every wall for every query.
type Linear []geom.Segment

func (l Linear) Walls() []geom.Segment { return l }

// Nearest returns the hit closest to the ray's base. On equal distance the
// earlier wall wins.
func (l Linear) Nearest(ray geom.Segment) (geom.Hit, bool) {
	var (
		best  geom.Hit
		found bool
	)
	for _, wall := range l {
		hit, ok := ray.Intersect(wall)
		if ok && (!found || hit.Distance < best.Distance) {
			best, found = hit, true
		}
	}
	return best, found
}
