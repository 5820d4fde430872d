package reactive

type Computed[T any] struct {
	n *node
}

// CreateComputed creates a derived node whose results are compared with ==.
// It runs for the first time when it is first read.
func CreateComputed[T comparable](rs *ReactiveSystem, fn func() (T, error), opts ...NodeOption) *Computed[T] {
	return CreateComputedWithEquals(rs, fn, comparableEquals[T], opts...)
}

func CreateComputedWithEquals[T any](rs *ReactiveSystem, fn func() (T, error), equals EqualsFunc[T], opts ...NodeOption) *Computed[T] {
	var zero T
	n := rs.register(&node{
		kind:   KindComputed,
		state:  StateStale,
		value:  zero,
		equals: equalsOf(equals),
		compute: func() (any, error) {
			return fn()
		},
	}, opts)
	return &Computed[T]{n: n}
}

// CreateMemo is CreateComputed for bodies that cannot fail.
func CreateMemo[T comparable](rs *ReactiveSystem, fn func() T, opts ...NodeOption) *Computed[T] {
	return CreateComputed(rs, func() (T, error) {
		return fn(), nil
	}, opts...)
}

func (c *Computed[T]) ID() NodeID {
	return c.n.id
}

func (c *Computed[T]) Kind() Kind {
	return KindComputed
}

// Value brings the computed up to date if needed and returns its memoized
// value. If the last evaluation failed this is the last good value.
func (c *Computed[T]) Value() T {
	c.n.rs.read(c.n)
	return valueAs[T](c.n.value)
}

// Result is Value plus the error of the last evaluation.
func (c *Computed[T]) Result() (T, error) {
	v := c.Value()
	return v, c.n.err
}

// Peek brings the computed up to date without recording a dependency.
func (c *Computed[T]) Peek() T {
	return Untracked(c.n.rs, c.Value)
}

func (c *Computed[T]) Dispose() {
	c.n.rs.dispose(c.n)
}

func (c *Computed[T]) Disposed() bool {
	return c.n.state == StateDisposed
}

func (c *Computed[T]) node() *node {
	return c.n
}
