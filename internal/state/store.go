package state

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

var (
	ErrDuplicateID = errors.New("shape id already in store")
	ErrNotFound    = errors.New("shape not found")
	ErrKindChanged = errors.New("update changed shape kind")
)

type slot struct {
	kind  Kind
	index int
}

// Store keeps one ordered collection per shape kind. Shapes are appended
// and updated in place by id, never removed.
type Store struct {
	mu         sync.RWMutex
	rectangles []Rectangle
	circles    []Circle
	arrows     []Arrow
	scribbles  []Scribble
	index      map[string]slot
	order      []string // ids in creation order across all kinds
	version    uint64

	// OnChange, if set, runs after every successful mutation with the
	// affected id. It is called without the lock held.
	OnChange func(id string)
}

func NewStore() *Store {
	return &Store{index: make(map[string]slot)}
}

// Add appends s to the collection of its kind.
func (st *Store) Add(s Shape) error {
	st.mu.Lock()
	id := s.ShapeID()
	if _, exists := st.index[id]; exists {
		st.mu.Unlock()
		return fmt.Errorf("%s: %w", id, ErrDuplicateID)
	}
	var at slot
	switch v := Clone(s).(type) {
	case Rectangle:
		at = slot{KindRectangle, len(st.rectangles)}
		st.rectangles = append(st.rectangles, v)
	case Circle:
		at = slot{KindCircle, len(st.circles)}
		st.circles = append(st.circles, v)
	case Arrow:
		at = slot{KindArrow, len(st.arrows)}
		st.arrows = append(st.arrows, v)
	case Scribble:
		at = slot{KindScribble, len(st.scribbles)}
		st.scribbles = append(st.scribbles, v)
	default:
		panic("state: unknown shape variant")
	}
	st.index[id] = at
	st.order = append(st.order, id)
	st.version++
	st.mu.Unlock()

	log.Printf("[STORE] Added %s %s", s.Kind(), id)
	st.changed(id)
	return nil
}

// Get returns a copy of the shape with the given id.
func (st *Store) Get(id string) (Shape, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	at, ok := st.index[id]
	if !ok {
		return nil, false
	}
	return Clone(st.at(at)), true
}

// KindOf returns the kind of the shape with the given id.
func (st *Store) KindOf(id string) (Kind, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	at, ok := st.index[id]
	return at.kind, ok
}

// Update replaces the shape with the given id by fn's result. fn receives
// a copy and must return a shape of the same kind and id.
func (st *Store) Update(id string, fn func(Shape) Shape) error {
	st.mu.Lock()
	at, ok := st.index[id]
	if !ok {
		st.mu.Unlock()
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	next := fn(Clone(st.at(at)))
	if next == nil || next.Kind() != at.kind || next.ShapeID() != id {
		st.mu.Unlock()
		return fmt.Errorf("%s: %w", id, ErrKindChanged)
	}
	switch v := next.(type) {
	case Rectangle:
		st.rectangles[at.index] = v
	case Circle:
		st.circles[at.index] = v
	case Arrow:
		st.arrows[at.index] = v
	case Scribble:
		st.scribbles[at.index] = v
	}
	st.version++
	st.mu.Unlock()

	st.changed(id)
	return nil
}

// AppendPoint adds p to the end of a scribble's point list without copying
// the points already recorded.
func (st *Store) AppendPoint(id string, p Point) error {
	st.mu.Lock()
	at, ok := st.index[id]
	if !ok || at.kind != KindScribble {
		st.mu.Unlock()
		return fmt.Errorf("scribble %s: %w", id, ErrNotFound)
	}
	sc := &st.scribbles[at.index]
	sc.Points = append(sc.Points, p)
	st.version++
	st.mu.Unlock()

	st.changed(id)
	return nil
}

func (st *Store) at(s slot) Shape {
	switch s.kind {
	case KindRectangle:
		return st.rectangles[s.index]
	case KindCircle:
		return st.circles[s.index]
	case KindArrow:
		return st.arrows[s.index]
	case KindScribble:
		return st.scribbles[s.index]
	}
	panic("state: unknown shape kind " + string(s.kind))
}

func (st *Store) changed(id string) {
	if st.OnChange != nil {
		st.OnChange(id)
	}
}

func (st *Store) Rectangles() []Rectangle {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return append([]Rectangle(nil), st.rectangles...)
}

func (st *Store) Circles() []Circle {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return append([]Circle(nil), st.circles...)
}

func (st *Store) Arrows() []Arrow {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return append([]Arrow(nil), st.arrows...)
}

func (st *Store) Scribbles() []Scribble {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]Scribble, len(st.scribbles))
	for i, s := range st.scribbles {
		out[i] = Clone(s).(Scribble)
	}
	return out
}

// All returns every shape in creation order.
func (st *Store) All() []Shape {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]Shape, 0, len(st.order))
	for _, id := range st.order {
		out = append(out, Clone(st.at(st.index[id])))
	}
	return out
}

// Len returns the number of shapes across all kinds.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.order)
}

// Version increases on every mutation.
func (st *Store) Version() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.version
}

// ShapeAt returns the topmost visible shape under p.
func (st *Store) ShapeAt(p Point, tolerance float64) (Shape, bool) {
	all := st.All()
	for i := len(all) - 1; i >= 0; i-- {
		if HitTest(all[i], p, tolerance) {
			return all[i], true
		}
	}
	return nil, false
}
