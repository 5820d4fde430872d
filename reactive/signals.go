package reactive

// Readable is implemented by every handle that carries a value.
type Readable[T any] interface {
	Handle
	Value() T
	Peek() T
}

type Signal[T any] struct {
	n *node
}

// CreateSignal creates a source node compared with ==.
func CreateSignal[T comparable](rs *ReactiveSystem, initial T, opts ...NodeOption) *Signal[T] {
	return CreateSignalWithEquals(rs, initial, comparableEquals[T], opts...)
}

// CreateSignalWithEquals creates a source node with a custom equality
// predicate. A nil predicate treats every write as a change.
func CreateSignalWithEquals[T any](rs *ReactiveSystem, initial T, equals EqualsFunc[T], opts ...NodeOption) *Signal[T] {
	n := rs.register(&node{
		kind:      KindSource,
		value:     initial,
		equals:    equalsOf(equals),
		evaluated: true,
	}, opts)
	return &Signal[T]{n: n}
}

func (s *Signal[T]) ID() NodeID {
	return s.n.id
}

func (s *Signal[T]) Kind() Kind {
	return KindSource
}

// Value returns the current value and, inside a computed or effect, records
// the signal as one of its dependencies.
func (s *Signal[T]) Value() T {
	s.n.rs.read(s.n)
	return valueAs[T](s.n.value)
}

// Peek returns the current value without recording a dependency.
func (s *Signal[T]) Peek() T {
	return valueAs[T](s.n.value)
}

// SetValue stores v and propagates the change. It returns the failures of
// the flush it triggered, if any.
func (s *Signal[T]) SetValue(v T) error {
	return s.n.rs.write(s.n, func(any) any {
		return v
	})
}

// Update replaces the value with fn applied to it. Inside a flush fn sees the
// value left by earlier queued writes.
func (s *Signal[T]) Update(fn func(T) T) error {
	return s.n.rs.write(s.n, func(old any) any {
		return fn(valueAs[T](old))
	})
}

func (s *Signal[T]) Dispose() {
	s.n.rs.dispose(s.n)
}

func (s *Signal[T]) Disposed() bool {
	return s.n.state == StateDisposed
}

func (s *Signal[T]) node() *node {
	return s.n
}

// Read is the free-function form of r.Value().
func Read[T any](r Readable[T]) T {
	return r.Value()
}

// Write is the free-function form of s.SetValue(v).
func Write[T any](s *Signal[T], v T) error {
	return s.SetValue(v)
}

// View is an unmemoized projection of another readable. It has no node of
// its own: reading it reads the source, and its identity and disposal are
// those of the source.
type View[S, T any] struct {
	Readable[S]
	fn func(S) T
}

// MapView returns a view that applies fn to the value of src on every read.
// Use a computed instead when fn is expensive or its result should stop
// propagation when unchanged.
func MapView[S, T any](src Readable[S], fn func(S) T) *View[S, T] {
	return &View[S, T]{Readable: src, fn: fn}
}

func (v *View[S, T]) Value() T {
	return v.fn(v.Readable.Value())
}

func (v *View[S, T]) Peek() T {
	return v.fn(v.Readable.Peek())
}
