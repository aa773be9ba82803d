// Package canvas is the RGBA8 pixel buffer both views render into.
//
// Pixels are stored row-major in a pixel.PictureData so a finished canvas can
// be handed to pixelgl as a picture without copying. Writes outside the
// buffer are dropped.
package canvas

import (
	"image/color"

	"github.com/faiface/pixel"

	"psykar.com/wallrunner/internal/texture"
)

// Canvas is a fixed size pixel buffer.
type Canvas struct {
	pd     *pixel.PictureData
	width  int
	height int
}

// New returns an opaque black canvas. Non-positive sizes give an empty canvas.
func New(width, height int) *Canvas {
	return NewFilled(width, height, color.RGBA{A: 255})
}

// NewFilled returns a canvas painted with c.
func NewFilled(width, height int, c color.RGBA) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cv := &Canvas{
		pd:     pixel.MakePictureData(pixel.R(0, 0, float64(width), float64(height))),
		width:  width,
		height: height,
	}
	cv.Fill(c)
	return cv
}

func (c *Canvas) Width() int { return c.width }

func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if !c.inside(x, y) {
		return color.RGBA{}
	}
	return c.pd.Pix[y*c.pd.Stride+x]
}

// Set writes col at (x, y). Translucent colors are blended over what is there.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !c.inside(x, y) {
		return
	}
	i := y*c.pd.Stride + x
	c.pd.Pix[i] = texture.Over(col, c.pd.Pix[i])
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col color.RGBA) {
	for i := range c.pd.Pix {
		c.pd.Pix[i] = col
	}
}

// FillColumn paints column x top to bottom with col.
func (c *Canvas) FillColumn(x int, col color.RGBA) {
	if x < 0 || x >= c.width {
		return
	}
	for y := 0; y < c.height; y++ {
		c.pd.Pix[y*c.pd.Stride+x] = col
	}
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	cp := *c.pd
	cp.Pix = append([]color.RGBA(nil), c.pd.Pix...)
	return &Canvas{pd: &cp, width: c.width, height: c.height}
}

// Picture exposes the buffer for drawing with pixel. Row 0 is the top row of
// the view, so a sprite of it has to be flipped vertically.
func (c *Canvas) Picture() *pixel.PictureData {
	return c.pd
}
