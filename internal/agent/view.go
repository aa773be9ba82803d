package agent

import (
	"image/color"

	"psykar.com/wallrunner/internal/canvas"
	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/texture"
)

var black = color.RGBA{A: 255}

// leftRay is the ray along the left edge of the field of view.
func (a *Agent) leftRay() geom.Segment {
	return geom.FromPolar(a.center, a.facing.Turn(geom.Angle(-a.fov/2)), a.maxView, texture.Texture{})
}

// View casts one ray per screen column and returns the colors they see, left
// to right. Rays are spread by equal angles, which bends straight walls a
// little at wide fields of view.
//
// A ray that hits nothing shows the background. A hit shows the wall texture
// at the struck point darkened by (1 - distance/max)², and black at or beyond
// the max view distance.
func (a *Agent) View(width int) []color.RGBA {
	if width <= 0 {
		return nil
	}
	left := a.leftRay()
	step := a.fov / float64(width)

	cols := make([]color.RGBA, width)
	for c := range cols {
		ray := left.Rotated(geom.Angle(step * float64(c)))
		cols[c] = a.shade(ray)
	}
	return cols
}

func (a *Agent) shade(ray geom.Segment) color.RGBA {
	hit, ok := a.scan.Nearest(ray)
	if !ok {
		return a.background
	}
	f := 1 - hit.Distance/a.maxView
	if f <= 0 {
		return black
	}
	return texture.Scale(hit.Color, f*f)
}

// RenderView draws View(width) as a width by height canvas, each column's
// color repeated top to bottom.
func (a *Agent) RenderView(width, height int) *canvas.Canvas {
	view := canvas.New(width, height)
	for x, c := range a.View(width) {
		view.FillColumn(x, c)
	}
	return view
}

// Probe casts n rays spread evenly from the left edge of the field of view to
// the right edge and returns how far each got, max view distance when it hit nothing.
func (a *Agent) Probe(n int) []float64 {
	if n <= 0 {
		return nil
	}
	left := a.leftRay()
	dist := make([]float64, n)
	for i := range dist {
		turn := a.fov / 2
		if n > 1 {
			turn = a.fov * float64(i) / float64(n-1)
		}
		dist[i] = a.maxView
		if hit, ok := a.scan.Nearest(left.Rotated(geom.Angle(turn))); ok {
			dist[i] = hit.Distance
		}
	}
	return dist
}
