package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/config"
	"LocalSketch/internal/editor"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

func newTestWidget(t *testing.T) *BoardWidget {
	t.Helper()
	test.NewTempApp(t)
	cfg := config.Default()
	board := editor.NewBoard(editor.BoardOptions{Style: cfg.InitialStyle(), IDs: state.SequentialIDs("s")})
	surface := render.NewSurface(board.Store(), 400, 400, cfg.Canvas.Background)
	b := NewBoardWidget(board, surface, cfg.Canvas.Background)
	b.Resize(fyne.NewSize(400, 400))
	return b
}

func press(b *BoardWidget, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: desktop.MouseButtonPrimary})
}

func drag(b *BoardWidget, x, y, dx, dy float32) {
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Dragged: fyne.NewDelta(dx, dy)})
}

func release(b *BoardWidget, x, y float32) {
	b.MouseUp(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: desktop.MouseButtonPrimary})
	b.DragEnd()
}

func TestWidgetDrawsRectangle(t *testing.T) {
	b := newTestWidget(t)
	b.SetTool(editor.ToolRectangle)

	press(b, 10, 10)
	drag(b, 50, 80, 40, 70)
	release(b, 50, 80)

	rects := b.Board().Store().Rectangles()
	require.Len(t, rects, 1)
	assert.Equal(t, [4]float64{10, 10, 40, 70}, [4]float64{rects[0].X, rects[0].Y, rects[0].Width, rects[0].Height})
	assert.Equal(t, editor.Idle, b.Board().Controller.Phase())

	objects := test.WidgetRenderer(b).Objects()
	assert.Len(t, objects, 2, "background and rectangle")
}

func TestWidgetSelectMoveAndResize(t *testing.T) {
	b := newTestWidget(t)
	b.SetTool(editor.ToolCircle)
	press(b, 100, 100)
	drag(b, 130, 140, 30, 40)
	release(b, 130, 140)

	b.SetTool(editor.ToolSelect)
	b.Tapped(&fyne.PointEvent{Position: fyne.NewPos(100, 100)})
	id, ok := b.Board().Selection.Selected()
	require.True(t, ok)
	assert.Equal(t, "s-1", id)
	assert.Equal(t, "s-1", b.handle.target)

	press(b, 100, 100)
	drag(b, 110, 90, 10, -10)
	release(b, 110, 90)

	got, _ := b.Board().Store().Get("s-1")
	c := got.(state.Circle)
	assert.Equal(t, 110.0, c.CX)
	assert.Equal(t, 90.0, c.CY)
	assert.Equal(t, 50.0, c.Radius)

	// bottom-right grip of the padded bounds
	a := c.Bounds().Pad(handlePadding)
	gx, gy := float32(a.X+a.Width), float32(a.Y+a.Height)
	press(b, gx, gy)
	drag(b, gx+100, gy+100, 100, 100)
	release(b, gx+100, gy+100)

	got, _ = b.Board().Store().Get("s-1")
	assert.Equal(t, 100.0, got.(state.Circle).Radius)
}

func TestWidgetBackgroundTapClearsSelection(t *testing.T) {
	b := newTestWidget(t)
	b.SetTool(editor.ToolArrow)
	press(b, 20, 20)
	drag(b, 120, 20, 100, 0)
	release(b, 120, 20)

	b.SetTool(editor.ToolSelect)
	b.Tapped(&fyne.PointEvent{Position: fyne.NewPos(70, 21)})
	_, ok := b.Board().Selection.Selected()
	require.True(t, ok)

	b.Tapped(&fyne.PointEvent{Position: fyne.NewPos(300, 300)})
	_, ok = b.Board().Selection.Selected()
	assert.False(t, ok)
	assert.Empty(t, b.handle.target)
}

func TestWidgetSelectToolDoesNotDraw(t *testing.T) {
	b := newTestWidget(t)
	press(b, 10, 10)
	drag(b, 60, 60, 50, 50)
	release(b, 60, 60)
	assert.Zero(t, b.Board().Store().Len())
}

func TestWidgetTapWhileDrawingToolIgnored(t *testing.T) {
	b := newTestWidget(t)
	b.SetTool(editor.ToolScribble)
	press(b, 10, 10)
	drag(b, 20, 20, 10, 10)
	release(b, 20, 20)

	b.Tapped(&fyne.PointEvent{Position: fyne.NewPos(15, 15)})
	_, ok := b.Board().Selection.Selected()
	assert.False(t, ok)
	assert.Len(t, b.Board().Store().Scribbles()[0].Points, 3)
}

func TestShapeObjectsSkipsInvisible(t *testing.T) {
	assert.Empty(t, shapeObjects(state.Rectangle{Width: 5}))
	assert.Len(t, shapeObjects(state.Arrow{X2: 10}), 4)
	assert.Len(t, shapeObjects(state.Scribble{Points: []state.Point{{}, {X: 1}, {X: 2}}}), 2)
}
