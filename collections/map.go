package collections

import (
	"slices"

	"github.com/nitonfx/signaling/reactive"
)

// Map is a reactive map. The key set and each value are tracked
// separately: changing the value of an existing key re-runs only the
// readers of that key.
type Map[K comparable, V comparable] struct {
	rs     *reactive.ReactiveSystem
	scope  *reactive.Scope
	keys   *reactive.Signal[int]
	order  []K
	values map[K]*reactive.Signal[V]
}

func NewMap[K comparable, V comparable](rs *reactive.ReactiveSystem) (*Map[K, V], error) {
	m := &Map[K, V]{
		rs:     rs,
		values: map[K]*reactive.Signal[V]{},
	}
	scope, err := reactive.NewScope(rs, func() error {
		m.keys = reactive.CreateSignal(rs, 0, reactive.Label("map.keys"))
		return nil
	}, reactive.Label("map"))
	if err != nil {
		return nil, err
	}
	m.scope = scope
	return m, nil
}

// Get returns the value for k, tracking the key set and the value.
func (m *Map[K, V]) Get(k K) (V, bool) {
	m.keys.Value()
	s, ok := m.values[k]
	if !ok {
		var zero V
		return zero, false
	}
	return s.Value(), true
}

// Signal returns the signal holding the value for k.
func (m *Map[K, V]) Signal(k K) (*reactive.Signal[V], bool) {
	s, ok := m.values[k]
	return s, ok
}

// Set stores v under k. Updating an existing key only notifies readers of
// that key; adding one notifies readers of the key set. Inside a flush a
// new key is staged for the next pass like any other write.
func (m *Map[K, V]) Set(k K, v V) error {
	if s, ok := m.values[k]; ok {
		return s.SetValue(v)
	}
	return m.edit(func() bool {
		if s, ok := m.values[k]; ok {
			// added by an earlier staged Set
			s.SetValue(v)
			return false
		}
		err := m.scope.Run(func() error {
			m.values[k] = reactive.CreateSignal(m.rs, v)
			return nil
		})
		if err != nil {
			return false
		}
		m.order = append(m.order, k)
		return true
	})
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) (bool, error) {
	if _, ok := m.values[k]; !ok {
		return false, nil
	}
	return true, m.edit(func() bool {
		s, ok := m.values[k]
		if !ok {
			return false
		}
		delete(m.values, k)
		m.order = slices.DeleteFunc(m.order, func(o K) bool { return o == k })
		s.Dispose()
		return true
	})
}

func (m *Map[K, V]) Has(k K) bool {
	m.keys.Value()
	_, ok := m.values[k]
	return ok
}

func (m *Map[K, V]) Len() int {
	m.keys.Value()
	return len(m.order)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	m.keys.Value()
	return slices.Clone(m.order)
}

// Untracked returns a copy of the entries without tracking.
func (m *Map[K, V]) Untracked() map[K]V {
	out := make(map[K]V, len(m.values))
	for k, s := range m.values {
		out[k] = s.Peek()
	}
	return out
}

func (m *Map[K, V]) Dispose() {
	m.scope.Dispose()
}

// edit changes the key set inside the write that announces it.
func (m *Map[K, V]) edit(change func() bool) error {
	return m.keys.Update(func(v int) int {
		if !change() {
			return v
		}
		return v + 1
	})
}
