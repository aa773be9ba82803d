package world

import (
	"image/color"
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"psykar.com/wallrunner/internal/shape"
	"psykar.com/wallrunner/internal/texture"
)

func box(t *testing.T, w, h float64, at pixel.Vec, c color.RGBA) *shape.Shape {
	t.Helper()
	s, err := shape.NewBox("box", w, h, texture.Plain(c))
	require.NoError(t, err)
	s.Shift(at)
	return s
}

func TestAddShapesFlattens(t *testing.T) {
	w := New(10, 10, colornames.Black)
	assert.Equal(t, uint64(0), w.Generation())

	a := box(t, 10, 10, pixel.V(100, 100), colornames.Red)
	b := box(t, 4, 4, pixel.V(-50, 0), colornames.Blue)
	w.AddShapes(a, b)

	walls := w.Walls()
	require.Len(t, walls, 8)
	assert.Equal(t, pixel.V(105, 95), walls[0].Base())
	assert.Equal(t, pixel.V(-48, -2), walls[4].Base())
	assert.Equal(t, uint64(1), w.Generation())

	// the world does not follow the shapes after flattening
	a.Shift(pixel.V(1000, 0))
	assert.Equal(t, pixel.V(105, 95), w.Walls()[0].Base())

	// callers get a copy
	walls[0] = walls[1]
	assert.Equal(t, pixel.V(105, 95), w.Walls()[0].Base())
}

func TestLocalWalls(t *testing.T) {
	w := New(10, 10, colornames.Black)
	w.AddShapes(box(t, 10, 10, pixel.V(0, 0), colornames.Red))

	// right side x=5, y in [-5,5]: its foot from (8,0) is 3 away
	local := w.LocalWalls(pixel.V(8, 0), 3)
	require.Len(t, local, 1)
	assert.Equal(t, pixel.V(5, -5), local[0].Base())

	// corner reach picks up the two sides meeting at (5,5)
	assert.Len(t, w.LocalWalls(pixel.V(7, 7), 3), 2)
	assert.Empty(t, w.LocalWalls(pixel.V(100, 100), 3))
	assert.Len(t, w.LocalWalls(pixel.ZV, 100), 4)
}

func TestRenderTopView(t *testing.T) {
	w := New(40, 40, colornames.Navy)
	w.AddShapes(box(t, 20, 20, pixel.V(100, 100), colornames.Red))

	view := w.RenderTopView(nil, pixel.V(100, 100), 1, 40, 40)
	require.Equal(t, 40, view.Width())

	// box corners land 10 pixels around the center
	assert.Equal(t, colornames.Red, view.At(30, 20))
	assert.Equal(t, colornames.Red, view.At(20, 10))
	assert.Equal(t, colornames.Navy, view.At(20, 20))
	assert.Equal(t, colornames.Navy, view.At(2, 2))

	// drawing does not touch the background of later views
	empty := w.RenderTopView(nil, pixel.V(1000, 1000), 1, 40, 40)
	assert.Equal(t, colornames.Navy, empty.At(30, 20))
}

func TestRenderTopViewScaledWithBody(t *testing.T) {
	w := New(10, 10, colornames.Navy)
	w.AddShapes(box(t, 20, 20, pixel.V(0, 0), colornames.Red))
	body := box(t, 2, 2, pixel.V(0, 0), colornames.Yellow)

	view := w.RenderTopView(body, pixel.ZV, 2, 60, 60)
	assert.Equal(t, 60, view.Height())
	assert.Equal(t, colornames.Red, view.At(50, 30))
	assert.Equal(t, colornames.Yellow, view.At(32, 30))
	assert.Equal(t, colornames.Navy, view.At(30, 30))
	assert.Equal(t, colornames.Navy, view.At(0, 0))

	assert.Equal(t, pixel.V(50, 30), Project(pixel.V(10, 0), pixel.ZV, 2, 60, 60))
}

func TestRenderTopViewSmooth(t *testing.T) {
	w := New(40, 40, colornames.Black)
	w.Smooth = true
	w.AddShapes(box(t, 20, 20, pixel.V(0, 0), colornames.White))

	view := w.RenderTopView(nil, pixel.ZV, 1, 40, 40)
	assert.Equal(t, colornames.White, view.At(30, 20))
	assert.Equal(t, colornames.Black, view.At(20, 20))
}
