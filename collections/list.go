// Package collections provides containers whose reads are tracked by a
// reactive.ReactiveSystem. Structural reads (length, membership, key sets)
// depend on the container shape; element reads depend on the element only,
// so replacing one element re-runs only what read that element.
package collections

import (
	"fmt"
	"slices"

	"github.com/nitonfx/signaling/reactive"
)

// List is a reactive slice. Each element lives in its own signal.
type List[T comparable] struct {
	rs    *reactive.ReactiveSystem
	scope *reactive.Scope
	shape *reactive.Signal[int]
	elems []*reactive.Signal[T]
}

func NewList[T comparable](rs *reactive.ReactiveSystem, initial ...T) (*List[T], error) {
	l := &List[T]{rs: rs}
	scope, err := reactive.NewScope(rs, func() error {
		l.shape = reactive.CreateSignal(rs, 0, reactive.Label("list.shape"))
		for _, v := range initial {
			l.elems = append(l.elems, reactive.CreateSignal(rs, v))
		}
		return nil
	}, reactive.Label("list"))
	if err != nil {
		return nil, err
	}
	l.scope = scope
	return l, nil
}

// Len returns the number of elements and tracks the list shape.
func (l *List[T]) Len() int {
	l.shape.Value()
	return len(l.elems)
}

// Get returns the element at i, tracking both the shape and the element.
func (l *List[T]) Get(i int) (T, error) {
	l.shape.Value()
	if i < 0 || i >= len(l.elems) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.elems))
	}
	return l.elems[i].Value(), nil
}

// Signal returns the signal holding the element at i. It stays valid until
// the element is removed.
func (l *List[T]) Signal(i int) (*reactive.Signal[T], error) {
	if i < 0 || i >= len(l.elems) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.elems))
	}
	return l.elems[i], nil
}

// Set replaces the element at i and returns the previous one. Only readers
// of that element are notified.
func (l *List[T]) Set(i int, v T) (T, error) {
	if i < 0 || i >= len(l.elems) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.elems))
	}
	old := l.elems[i].Peek()
	return old, l.elems[i].SetValue(v)
}

// Append adds values at the end of the list as it stands when the write is
// applied.
func (l *List[T]) Append(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	return l.edit(func() bool {
		return l.insert(len(l.elems), values)
	})
}

// Insert adds values before index i. Inside a flush the insertion is
// staged for the next pass like any other write.
func (l *List[T]) Insert(i int, values ...T) error {
	if i < 0 || i > len(l.elems) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.elems))
	}
	if len(values) == 0 {
		return nil
	}
	return l.edit(func() bool {
		return i <= len(l.elems) && l.insert(i, values)
	})
}

func (l *List[T]) insert(i int, values []T) bool {
	created := make([]*reactive.Signal[T], 0, len(values))
	err := l.scope.Run(func() error {
		for _, v := range values {
			created = append(created, reactive.CreateSignal(l.rs, v))
		}
		return nil
	})
	if err != nil {
		return false
	}
	l.elems = slices.Insert(l.elems, i, created...)
	return true
}

// Remove deletes the element at i and returns it. Inside a flush the
// removal is staged for the next pass; the returned value is the element
// at i when Remove was called.
func (l *List[T]) Remove(i int) (T, error) {
	if i < 0 || i >= len(l.elems) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.elems))
	}
	v := l.elems[i].Peek()
	return v, l.edit(func() bool {
		if i >= len(l.elems) {
			return false
		}
		s := l.elems[i]
		l.elems = slices.Delete(l.elems, i, i+1)
		s.Dispose()
		return true
	})
}

// Clear removes every element.
func (l *List[T]) Clear() error {
	if len(l.elems) == 0 {
		return nil
	}
	return l.edit(func() bool {
		if len(l.elems) == 0 {
			return false
		}
		for _, s := range l.elems {
			s.Dispose()
		}
		l.elems = nil
		return true
	})
}

// Values returns a copy of the elements, tracking all of them.
func (l *List[T]) Values() []T {
	l.shape.Value()
	values := make([]T, len(l.elems))
	for i, s := range l.elems {
		values[i] = s.Value()
	}
	return values
}

// Untracked returns a copy of the elements without tracking anything.
func (l *List[T]) Untracked() []T {
	values := make([]T, len(l.elems))
	for i, s := range l.elems {
		values[i] = s.Peek()
	}
	return values
}

// Dispose disposes the list and every element signal.
func (l *List[T]) Dispose() {
	l.scope.Dispose()
}

// edit applies change as part of the shape write, so the structure only
// moves when readers of the shape are told about it. A rejected write
// leaves the list untouched.
func (l *List[T]) edit(change func() bool) error {
	return l.shape.Update(func(v int) int {
		if !change() {
			return v
		}
		return v + 1
	})
}
