package shape

import (
	"math"
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"psykar.com/wallrunner/internal/geom"
	"psykar.com/wallrunner/internal/texture"
)

const eps = 1e-9

var stripes = texture.Texture{
	Main:         colornames.Green,
	Periodic:     colornames.Darkgreen,
	Period:       70,
	BodyCurve:    texture.BodyStep,
	BodyFraction: 0.2,
}

func assertVec(t *testing.T, want, got pixel.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
}

func assertClosed(t *testing.T, s *Shape) {
	t.Helper()
	el := s.Elements()
	for i, e := range el {
		assertVec(t, el[(i+1)%len(el)].Base(), e.End())
	}
}

func TestNewBox(t *testing.T) {
	box, err := NewBox("box", 100, 200, stripes)
	require.NoError(t, err)

	el := box.Elements()
	require.Len(t, el, 4)
	assertClosed(t, box)

	assert.Equal(t, pixel.V(50, -100), el[0].Base())
	assert.Equal(t, pixel.V(0, 200), el[0].Tip())
	assert.Equal(t, pixel.V(-100, 0), el[1].Tip())
	assert.Equal(t, pixel.V(0, -200), el[2].Tip())
	assert.Equal(t, pixel.V(100, 0), el[3].Tip())

	assert.InDelta(t, math.Hypot(100, 200)/2, box.Radius(), eps)
	assert.Equal(t, pixel.ZV, box.Anchor())
}

func TestBoxPhaseWrapsAroundPerimeter(t *testing.T) {
	tex := stripes
	tex.Period = 600 // 2w + 2h
	box, err := NewBox("box", 100, 200, tex)
	require.NoError(t, err)

	el := box.Elements()
	walked := 0.0
	for _, e := range el {
		assert.InDelta(t, walked/600, e.Texture().Phase, eps)
		walked += e.Length()
	}
	assert.InDelta(t, 600, walked, eps)
	assert.InDelta(t, 0, tex.ShiftedPhase(walked).Phase, eps)

	// the pattern continues across the inner corners
	for i := 0; i < len(el)-1; i++ {
		assert.Equal(t, el[i].ColorAt(el[i].Length()), el[i+1].ColorAt(0))
	}
}

func TestNewBoxRejectsBadDimensions(t *testing.T) {
	for _, wh := range [][2]float64{{0, 10}, {10, 0}, {-1, 5}, {math.NaN(), 5}} {
		s, err := NewBox("bad", wh[0], wh[1], stripes)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrBadDimensions)
	}
}

func TestNewRegularPolygon(t *testing.T) {
	pent, err := NewRegularPolygon("pentagon", 100, 5, stripes)
	require.NoError(t, err)

	el := pent.Elements()
	require.Len(t, el, 5)
	assertClosed(t, pent)
	assert.Equal(t, 100.0, pent.Radius())

	side := 2 * 100 * math.Sin(math.Pi/5)
	for k, e := range el {
		assertVec(t, pixel.Unit(2*math.Pi*float64(k)/5).Scaled(100), e.Base())
		assert.InDelta(t, side, e.Length(), 1e-9)
		assert.InDelta(t, math.Mod(side*float64(k)/70, 1), e.Texture().Phase, 1e-9)
	}

	_, err = NewRegularPolygon("flat", 100, 2, stripes)
	assert.ErrorIs(t, err, ErrTooFewSides)
	_, err = NewRegularPolygon("dot", 0, 5, stripes)
	assert.ErrorIs(t, err, ErrBadRadius)
}

func TestFromVertices(t *testing.T) {
	tri, err := FromVertices("triangle", []pixel.Vec{pixel.V(0, 0), pixel.V(30, 0), pixel.V(0, 40)}, stripes)
	require.NoError(t, err)
	require.Len(t, tri.Elements(), 3)
	assertClosed(t, tri)
	assert.Equal(t, 40.0, tri.Radius())

	el := tri.Elements()
	assert.InDelta(t, 30.0/70, el[1].Texture().Phase, eps)
	assert.InDelta(t, 80.0/70-1, el[2].Texture().Phase, eps)

	wall, err := FromVertices("thin", []pixel.Vec{pixel.V(-5, 0), pixel.V(5, 0)}, stripes)
	require.NoError(t, err)
	assert.Len(t, wall.Elements(), 2)

	_, err = FromVertices("point", []pixel.Vec{pixel.V(1, 1)}, stripes)
	assert.ErrorIs(t, err, ErrTooFewVertices)
	_, err = FromVertices("none", nil, stripes)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestBuild(t *testing.T) {
	box, err := Build("b", Outline{Kind: KindBox, Width: 4, Height: 2}, stripes)
	require.NoError(t, err)
	assert.Len(t, box.Elements(), 4)

	hex, err := Build("h", Outline{Kind: KindRegularPolygon, Radius: 3, Sides: 6}, stripes)
	require.NoError(t, err)
	assert.Len(t, hex.Elements(), 6)

	v, err := Build("v", Outline{Kind: KindVertices, Vertices: []pixel.Vec{pixel.V(1, 0), pixel.V(0, 1), pixel.V(-1, 0)}}, stripes)
	require.NoError(t, err)
	assert.Len(t, v.Elements(), 3)

	_, err = Build("x", Outline{Kind: Kind(9)}, stripes)
	assert.Error(t, err)
	assert.Equal(t, "polygon", KindRegularPolygon.String())
}

func TestShiftMovesAnchorOnly(t *testing.T) {
	box, err := NewBox("box", 10, 10, stripes)
	require.NoError(t, err)
	before := box.Elements()

	box.Shift(pixel.V(100, 50))
	box.Shift(pixel.V(1, 1))
	assert.Equal(t, pixel.V(101, 51), box.Anchor())
	assert.Equal(t, before, box.Elements())

	placed := box.Placed()
	for i, p := range placed {
		assert.Equal(t, before[i].Base().Add(pixel.V(101, 51)), p.Base())
		assert.Equal(t, before[i].Tip(), p.Tip())
	}

	box.MoveTo(pixel.V(-3, 4))
	assert.Equal(t, pixel.V(-3, 4), box.Anchor())
}

func TestRotateRoundTrip(t *testing.T) {
	box, err := NewBox("box", 100, 200, stripes)
	require.NoError(t, err)
	box.Shift(pixel.V(500, 300))
	before := box.Placed()

	box.Rotate(geom.Deg(11))
	turned := box.Placed()
	assert.NotEqual(t, before[0].Base(), turned[0].Base())
	assertClosed(t, box)
	assert.Equal(t, pixel.V(500, 300), box.Anchor())

	box.Rotate(geom.Deg(-11))
	after := box.Placed()
	for i := range before {
		assertVec(t, before[i].Base(), after[i].Base())
		assertVec(t, before[i].End(), after[i].End())
	}
}

func TestRotateIsAboutAnchor(t *testing.T) {
	box, err := NewBox("box", 20, 20, stripes)
	require.NoError(t, err)
	box.Shift(pixel.V(100, 0))

	box.Rotate(geom.Deg(90))
	el := box.Placed()
	// right side starts at (10,-10) from the anchor; a quarter turn takes it to (10,10)
	assertVec(t, pixel.V(110, 10), el[0].Base())
	for _, e := range el {
		assert.InDelta(t, math.Hypot(10, 10), e.Base().Sub(box.Anchor()).Len(), 1e-9)
	}
}

func TestAppendAndClone(t *testing.T) {
	a, err := NewBox("a", 2, 2, stripes)
	require.NoError(t, err)
	b, err := NewBox("b", 2, 2, stripes)
	require.NoError(t, err)
	b.Shift(pixel.V(10, 0))

	a.Append(b)
	el := a.Placed()
	require.Len(t, el, 8)
	assert.Equal(t, pixel.V(11, -1), el[4].Base())
	assert.InDelta(t, math.Hypot(11, 1), a.Radius(), eps)

	c := a.Clone()
	c.Rotate(geom.Deg(45))
	c.Shift(pixel.V(5, 5))
	assert.Equal(t, el, a.Placed())
	assert.Equal(t, "a", c.Name())
}
