package world

import (
	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/canvas"
	"psykar.com/wallrunner/internal/shape"
)

// RenderTopView draws the walls and the given body from above, scale pixels
// per world unit, with center in the middle of a width by height canvas.
// The body may be nil.
func (w *World) RenderTopView(body *shape.Shape, center pixel.Vec, scale float64, width, height int) *canvas.Canvas {
	var view *canvas.Canvas
	if w.background.Width() == width && w.background.Height() == height {
		view = w.background.Clone()
	} else {
		view = canvas.NewFilled(width, height, w.fill)
	}

	proj := canvas.Centered(center, scale, width, height)
	draw := view.DrawSegment
	if w.Smooth {
		draw = view.DrawSegmentSmooth
	}

	for _, wall := range w.walls {
		draw(wall, proj)
	}
	if body != nil {
		for _, e := range body.Placed() {
			draw(e, proj)
		}
	}
	return view
}

// Project maps a world point onto a top view rendered with the same arguments,
// for overlays drawn on top of it.
func Project(p, center pixel.Vec, scale float64, width, height int) pixel.Vec {
	return canvas.Centered(center, scale, width, height).M.Project(p)
}
