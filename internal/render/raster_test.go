package render

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/state"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

var white = color.RGBA{255, 255, 255, 255}

func TestRenderPaintsVisibleShapes(t *testing.T) {
	st := state.NewStore()
	red := state.Style{Fill: "#ff0000", Stroke: "#ff0000", StrokeWidth: 1}
	blue := state.Style{Fill: "#0000ff", Stroke: "#0000ff", StrokeWidth: 1}
	require.NoError(t, st.Add(state.Rectangle{Base: state.Base{ID: "r", Style: red}, X: 10, Y: 10, Width: 40, Height: 40}))
	require.NoError(t, st.Add(state.Circle{Base: state.Base{ID: "c", Style: blue}, CX: 150, CY: 150, Radius: 20}))
	// zero height: stored but never painted
	require.NoError(t, st.Add(state.Rectangle{Base: state.Base{ID: "flat", Style: blue}, X: 100, Y: 30, Width: 50}))

	img := NewSurface(st, 200, 200, "#ffffff").Render()
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba(img.At(30, 30)))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba(img.At(150, 150)))
	assert.Equal(t, white, rgba(img.At(120, 30)))
	assert.Equal(t, white, rgba(img.At(190, 10)))
}

func TestRenderLaterShapesOnTop(t *testing.T) {
	st := state.NewStore()
	require.NoError(t, st.Add(state.Rectangle{Base: state.Base{ID: "a", Style: state.Style{Fill: "#ff0000"}}, Width: 50, Height: 50}))
	require.NoError(t, st.Add(state.Rectangle{Base: state.Base{ID: "b", Style: state.Style{Fill: "#00ff00"}}, Width: 50, Height: 50}))

	img := NewSurface(st, 60, 60, "#ffffff").Render()
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgba(img.At(25, 25)))
}

func TestScribbleAndArrowUseStrokeColor(t *testing.T) {
	st := state.NewStore()
	s := state.Style{Fill: "#00000000", Stroke: "#000000", StrokeWidth: 6}
	require.NoError(t, st.Add(state.Scribble{Base: state.Base{ID: "s", Style: s}, Points: []state.Point{{X: 10, Y: 10}, {X: 90, Y: 10}}}))
	require.NoError(t, st.Add(state.Arrow{Base: state.Base{ID: "a", Style: s}, X1: 10, Y1: 60, X2: 90, Y2: 60}))

	img := NewSurface(st, 100, 100, "#ffffff").Render()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgba(img.At(50, 10)))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgba(img.At(50, 60)))
	assert.Equal(t, white, rgba(img.At(50, 35)))
}

func TestToDataURLOfEmptyCanvas(t *testing.T) {
	url, err := NewSurface(state.NewStore(), 32, 16, "#ffffff").ToDataURL()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, DataURLPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, DataURLPrefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
	assert.Equal(t, white, rgba(img.At(5, 5)))
}

func TestArrowHead(t *testing.T) {
	head := ArrowHead(state.Arrow{X1: 0, Y1: 0, X2: 20, Y2: 0})
	assert.Equal(t, state.Point{X: 20, Y: 0}, head[0])
	assert.InDelta(t, 10, head[1].X, 1e-9)
	assert.InDelta(t, 5, head[1].Y, 1e-9)
	assert.InDelta(t, 10, head[2].X, 1e-9)
	assert.InDelta(t, -5, head[2].Y, 1e-9)
}
