// Package world keeps the flattened wall list and draws the overhead view.
package world

import (
	"image/color"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"

	"psykar.com/wallrunner/internal/canvas"
	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/shape"
)

// World owns the walls in world coordinates and a static background.
//
// Every change bumps a generation counter. Renderers remember the generation
// they last drew and redraw only when it moved on.
type World struct {
	// Smooth selects antialiased wall drawing in the top view.
	Smooth bool

	background *canvas.Canvas
	fill       color.RGBA
	walls      []geom.Segment
	generation uint64
	log        *logrus.Entry
}

// New returns an empty world whose background is width by height pixels of bg.
func New(width, height int, bg color.RGBA) *World {
	return &World{
		background: canvas.NewFilled(width, height, bg),
		fill:       bg,
		log:        logrus.WithField("component", "world"),
	}
}

// AddShapes flattens the placed shapes into walls. The shapes are not kept.
func (w *World) AddShapes(shapes ...*shape.Shape) {
	for _, s := range shapes {
		placed := s.Placed()
		w.walls = append(w.walls, placed...)
		w.log.WithFields(logrus.Fields{
			"shape": s.Name(),
			"walls": len(placed),
		}).Debug("Shape added as walls.")
	}
	w.generation++
	w.log.WithField("total_walls", len(w.walls)).Info("World walls updated.")
}

// Walls returns a copy of the wall list.
func (w *World) Walls() []geom.Segment {
	return append([]geom.Segment(nil), w.walls...)
}

// LocalWalls returns the walls that come within r of p: an endpoint or the
// perpendicular foot of p lies within range.
func (w *World) LocalWalls(p pixel.Vec, r float64) []geom.Segment {
	var local []geom.Segment
	for _, wall := range w.walls {
		if near(wall, p, r) {
			local = append(local, wall)
		}
	}
	return local
}

func near(wall geom.Segment, p pixel.Vec, r float64) bool {
	if wall.Base().Sub(p).Len() <= r || wall.End().Sub(p).Len() <= r {
		return true
	}
	orth, ok := wall.OrthogonalFromPoint(p)
	return ok && orth.Length() <= r
}

// Generation counts changes to the world.
func (w *World) Generation() uint64 {
	return w.generation
}
