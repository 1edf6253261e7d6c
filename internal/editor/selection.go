package editor

import (
	"fmt"

	"LocalSketch/internal/state"
)

// TransformHandle is the surface's move/resize handle. It is attached to
// zero or one shape at a time.
type TransformHandle interface {
	SetTargets(ids []string)
}

// Transform is a move/resize produced by dragging the transform handle.
// The shape is scaled by (SX, SY) about the top-left of its bounds, then
// moved by (DX, DY). Zero or negative scale factors mean 1.
type Transform struct {
	DX, DY float64
	SX, SY float64
}

// Selection tracks the single selected shape and keeps the transform handle
// pointed at it.
type Selection struct {
	store    *state.Store
	handle   TransformHandle
	selected string

	// OnChange, if set, runs whenever the selection changes. id is empty
	// when nothing is selected.
	OnChange func(id string)
}

func NewSelection(store *state.Store, handle TransformHandle) *Selection {
	return &Selection{store: store, handle: handle}
}

// SetHandle attaches the transform handle and syncs it with the current
// selection.
func (s *Selection) SetHandle(h TransformHandle) {
	s.handle = h
	s.push()
}

// Selected returns the selected shape id.
func (s *Selection) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// OnShapeClicked makes id the only selected shape. Ids the store does not
// know are ignored.
func (s *Selection) OnShapeClicked(id string) {
	if _, ok := s.store.Get(id); !ok {
		Logger().Debug("click on unknown shape", "id", id)
		return
	}
	s.set(id)
}

// OnBackgroundClicked drops the selection.
func (s *Selection) OnBackgroundClicked() {
	s.set("")
}

func (s *Selection) Clear() {
	s.set("")
}

func (s *Selection) set(id string) {
	if s.selected == id {
		s.push()
		return
	}
	s.selected = id
	Logger().Info("selection changed", "id", id)
	s.push()
	if s.OnChange != nil {
		s.OnChange(id)
	}
}

func (s *Selection) push() {
	if s.handle == nil {
		return
	}
	if s.selected == "" {
		s.handle.SetTargets(nil)
		return
	}
	s.handle.SetTargets([]string{s.selected})
}

// ApplyTransform writes a handle drag back into the selected shape.
func (s *Selection) ApplyTransform(t Transform) error {
	if s.selected == "" {
		return nil
	}
	err := s.store.Update(s.selected, func(sh state.Shape) state.Shape {
		if (t.SX > 0 && t.SX != 1) || (t.SY > 0 && t.SY != 1) {
			sh = state.Scale(sh, t.SX, t.SY)
		}
		return state.Translate(sh, t.DX, t.DY)
	})
	if err != nil {
		return fmt.Errorf("transform %s: %w", s.selected, err)
	}
	return nil
}
