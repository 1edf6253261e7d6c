package state

import (
	"errors"
	"fmt"
	"sync"
)

// StyleField names one value of the StyleState.
type StyleField string

const (
	FieldFill         StyleField = "fill"
	FieldStroke       StyleField = "stroke"
	FieldStrokeWidth  StyleField = "stroke_width"
	FieldCornerRadius StyleField = "corner_radius"
)

// ErrStyleValue is returned by StyleState.Set when the value does not have
// the field's type.
var ErrStyleValue = errors.New("style value has wrong type")

// StyleSnapshot is the full style in effect at one instant.
type StyleSnapshot struct {
	Style
	CornerRadius float64
}

// StyleState holds the style applied to newly created shapes.
type StyleState struct {
	mu      sync.RWMutex
	current StyleSnapshot
}

func NewStyleState(initial StyleSnapshot) *StyleState {
	return &StyleState{current: initial}
}

// Snapshot returns the values currently in effect.
func (s *StyleState) Snapshot() StyleSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *StyleState) SetFill(c string) {
	s.mu.Lock()
	s.current.Fill = c
	s.mu.Unlock()
}

func (s *StyleState) SetStroke(c string) {
	s.mu.Lock()
	s.current.Stroke = c
	s.mu.Unlock()
}

func (s *StyleState) SetStrokeWidth(w float64) {
	s.mu.Lock()
	s.current.StrokeWidth = w
	s.mu.Unlock()
}

func (s *StyleState) SetCornerRadius(r float64) {
	s.mu.Lock()
	s.current.CornerRadius = r
	s.mu.Unlock()
}

// Set assigns value to field. Colors take a string, widths and radii any
// Go number. Values are not range checked.
func (s *StyleState) Set(field StyleField, value any) error {
	switch field {
	case FieldFill, FieldStroke:
		c, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: %T: %w", field, value, ErrStyleValue)
		}
		if field == FieldFill {
			s.SetFill(c)
		} else {
			s.SetStroke(c)
		}
	case FieldStrokeWidth, FieldCornerRadius:
		n, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("%s: %T: %w", field, value, ErrStyleValue)
		}
		if field == FieldStrokeWidth {
			s.SetStrokeWidth(n)
		} else {
			s.SetCornerRadius(n)
		}
	default:
		return fmt.Errorf("unknown style field %q: %w", field, ErrStyleValue)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
