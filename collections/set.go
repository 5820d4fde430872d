package collections

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/nitonfx/signaling/reactive"
)

// Set is a reactive set. Every read depends on the membership as a whole;
// writes that do not change membership notify nobody.
type Set[T comparable] struct {
	members mapset.Set[T]
	shape   *reactive.Signal[int]
}

func NewSet[T comparable](rs *reactive.ReactiveSystem, initial ...T) *Set[T] {
	return &Set[T]{
		members: mapset.NewThreadUnsafeSet(initial...),
		shape:   reactive.CreateSignal(rs, 0, reactive.Label("set.shape")),
	}
}

func (s *Set[T]) Contains(v T) bool {
	s.shape.Value()
	return s.members.Contains(v)
}

func (s *Set[T]) Len() int {
	s.shape.Value()
	return s.members.Cardinality()
}

// Add reports whether v was new. Inside a flush the addition is staged
// for the next pass like any other write.
func (s *Set[T]) Add(v T) (bool, error) {
	if s.members.Contains(v) {
		return false, nil
	}
	return true, s.edit(func() bool {
		return s.members.Add(v)
	})
}

// Remove reports whether v was a member.
func (s *Set[T]) Remove(v T) (bool, error) {
	if !s.members.Contains(v) {
		return false, nil
	}
	return true, s.edit(func() bool {
		if !s.members.Contains(v) {
			return false
		}
		s.members.Remove(v)
		return true
	})
}

func (s *Set[T]) Clear() error {
	if s.members.Cardinality() == 0 {
		return nil
	}
	return s.edit(func() bool {
		if s.members.Cardinality() == 0 {
			return false
		}
		s.members.Clear()
		return true
	})
}

// Values returns the members in no particular order.
func (s *Set[T]) Values() []T {
	s.shape.Value()
	return s.members.ToSlice()
}

// Untracked returns a copy of the members without tracking.
func (s *Set[T]) Untracked() mapset.Set[T] {
	return s.members.Clone()
}

func (s *Set[T]) Dispose() {
	s.shape.Dispose()
}

// edit changes the membership inside the shape write.
func (s *Set[T]) edit(change func() bool) error {
	return s.shape.Update(func(v int) int {
		if !change() {
			return v
		}
		return v + 1
	})
}
