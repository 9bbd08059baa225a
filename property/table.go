// Package property remembers the value a property held before a sequence
// first touched it, so relative blending and restoration can refer back to it.
package property

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledseq/scene"
)

// Kind tags which property of a target a snapshot belongs to.
type Kind string

const (
	KindPosition   Kind = "transform.position"
	KindScale      Kind = "transform.scale"
	KindColour     Kind = "light.colour"
	KindBrightness Kind = "light.brightness"
)

// Key identifies one property of one live object. Target must be comparable;
// in practice it is the pointer a Reference resolved to.
type Key struct {
	Target any
	Kind   Kind
}

// Store holds snapshots of a single value type.
type Store[V any] struct {
	values map[Key]V
}

// SetInitialValue records v for key, replacing any previous snapshot.
func (s *Store[V]) SetInitialValue(key Key, v V) {
	if s.values == nil {
		s.values = make(map[Key]V)
	}
	s.values[key] = v
}

// TryGetInitialValue returns the snapshot for key, if there is one.
func (s *Store[V]) TryGetInitialValue(key Key) (V, bool) {
	v, ok := s.values[key]
	return v, ok
}

// LoadOrStore returns the existing snapshot for key, or records live and
// returns it. The first caller in a session wins.
func (s *Store[V]) LoadOrStore(key Key, live V) V {
	if v, ok := s.TryGetInitialValue(key); ok {
		return v
	}
	s.SetInitialValue(key, live)
	return live
}

func (s *Store[V]) ClearInitialValues() {
	clear(s.values)
}

func (s *Store[V]) Len() int {
	return len(s.values)
}

// Table segregates snapshots by value type.
type Table struct {
	Float  Store[float64]
	Vector Store[scene.Vec3]
	Colour Store[colorful.Color]
}

// ClearInitialValues drops every snapshot so the next session seeds afresh.
func (t *Table) ClearInitialValues() {
	t.Float.ClearInitialValues()
	t.Vector.ClearInitialValues()
	t.Colour.ClearInitialValues()
}

// Len is the total number of snapshots held.
func (t *Table) Len() int {
	return t.Float.Len() + t.Vector.Len() + t.Colour.Len()
}
