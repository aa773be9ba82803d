package main

import (
	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/geom"
)

// getClosestWall returns the wall nearest to p and how far it is: the
// perpendicular distance when p lies alongside the wall, otherwise the
// distance to its nearer end.
func getClosestWall(p pixel.Vec, walls []geom.Segment) (geom.Segment, float64, bool) {
	var ret geom.Segment
	closestDist := -1.0
	for _, wall := range walls {
		dist := distToWall(p, wall)
		if closestDist < 0 || dist < closestDist {
			closestDist = dist
			ret = wall
		}
	}
	return ret, closestDist, closestDist >= 0
}

func distToWall(p pixel.Vec, wall geom.Segment) float64 {
	if orth, ok := wall.OrthogonalFromPoint(p); ok {
		return orth.Length()
	}
	return distBetweenPoints(p, wall.Base(), wall.End())
}

// distBetweenPoints is the distance from o to the closest of points.
func distBetweenPoints(o pixel.Vec, points ...pixel.Vec) float64 {
	closest := -1.0
	for _, p := range points {
		if d := o.Sub(p).Len(); closest < 0 || d < closest {
			closest = d
		}
	}
	return closest
}
