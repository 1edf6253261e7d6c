package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  bool
	}{
		{"rect degenerate width", Rectangle{Width: 0, Height: 4}, false},
		{"rect", Rectangle{Width: 1, Height: 1}, true},
		{"circle zero", Circle{}, false},
		{"circle", Circle{Radius: 1}, true},
		{"arrow collapsed", Arrow{X1: 3, Y1: 3, X2: 3, Y2: 3}, false},
		{"arrow", Arrow{X2: 1}, true},
		{"scribble one point", Scribble{Points: []Point{{1, 1}}}, false},
		{"scribble", Scribble{Points: []Point{{1, 1}, {2, 2}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Visible())
		})
	}
}

func TestHitTest(t *testing.T) {
	arrow := Arrow{Base: Base{Style: Style{StrokeWidth: 2}}, X1: 0, Y1: 0, X2: 10, Y2: 0}
	assert.True(t, HitTest(arrow, Point{5, 0.5}, 0))
	assert.False(t, HitTest(arrow, Point{5, 4}, 0))
	assert.True(t, HitTest(arrow, Point{5, 4}, 3))

	circle := Circle{CX: 0, CY: 0, Radius: 5}
	assert.True(t, HitTest(circle, Point{3, 4}, 0))
	assert.False(t, HitTest(circle, Point{6, 0}, 0))

	scribble := Scribble{Points: []Point{{0, 0}, {10, 0}, {10, 10}}}
	assert.True(t, HitTest(scribble, Point{10, 5}, 0))
	assert.False(t, HitTest(scribble, Point{2, 8}, 1))
}

func TestTranslateAndScale(t *testing.T) {
	r := Translate(Rectangle{X: 1, Y: 2, Width: 3, Height: 4}, 10, 20).(Rectangle)
	assert.Equal(t, Rectangle{X: 11, Y: 22, Width: 3, Height: 4}, r)

	r = Scale(r, 2, 0).(Rectangle)
	assert.Equal(t, 6.0, r.Width)
	assert.Equal(t, 4.0, r.Height, "non-positive factor is ignored")

	c := Scale(Circle{CX: 10, CY: 10, Radius: 5}, 2, 3).(Circle)
	assert.Equal(t, 15.0, c.Radius)
	assert.Equal(t, Area{X: 5, Y: 5, Width: 30, Height: 30}, c.Bounds())

	orig := Scribble{Points: []Point{{0, 0}, {2, 2}}}
	moved := Translate(orig, 1, 1).(Scribble)
	assert.Equal(t, []Point{{1, 1}, {3, 3}}, moved.Points)
	assert.Equal(t, []Point{{0, 0}, {2, 2}}, orig.Points)

	a := Scale(Arrow{X1: 2, Y1: 2, X2: 4, Y2: 6}, 2, 2).(Arrow)
	assert.Equal(t, Arrow{X1: 2, Y1: 2, X2: 6, Y2: 10}, a)
}

func TestAreaUnion(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 10, Height: 10}
	b := Area{X: 5, Y: -5, Width: 10, Height: 10}
	assert.Equal(t, Area{X: 0, Y: -5, Width: 15, Height: 15}, a.Union(b))
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(Area{X: 20, Y: 20, Width: 1, Height: 1}))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#B92929")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xb9, G: 0x29, B: 0x29, A: 0xff}, c)

	c, err = ParseHex("#00000000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{}, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = ParseHex("red")
	assert.Error(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, ColorOf("red"))
}
