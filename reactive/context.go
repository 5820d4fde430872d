package reactive

import "github.com/cespare/xxhash/v2"

// Context is a value looked up through the ownership chain, so a component
// can hand something to every node created below it without threading it
// through each call. Contexts are identified by name: two contexts created
// with the same name share their provided values.
type Context[T any] struct {
	name         string
	key          uint64
	defaultValue T
}

func NewContext[T any](name string, defaultValue T) *Context[T] {
	return &Context[T]{
		name:         name,
		key:          xxhash.Sum64String(name),
		defaultValue: defaultValue,
	}
}

func (c *Context[T]) Name() string {
	return c.name
}

// Provide sets the value for the current owner and everything it creates.
// Outside of any owner it sets the system-wide value.
func (c *Context[T]) Provide(rs *ReactiveSystem, value T) {
	if n := rs.owner(); n != nil {
		if n.contexts == nil {
			n.contexts = map[uint64]any{}
		}
		n.contexts[c.key] = value
		return
	}
	if rs.contexts == nil {
		rs.contexts = map[uint64]any{}
	}
	rs.contexts[c.key] = value
}

// Use returns the value provided by the nearest owner, the system-wide value,
// or the default, in that order.
func (c *Context[T]) Use(rs *ReactiveSystem) T {
	v, _ := c.Lookup(rs)
	return v
}

// Lookup is Use that also reports whether any value was provided.
func (c *Context[T]) Lookup(rs *ReactiveSystem) (T, bool) {
	for n := rs.owner(); n != nil; n = n.owner {
		if v, ok := n.contexts[c.key]; ok {
			return valueAs[T](v), true
		}
	}
	if v, ok := rs.contexts[c.key]; ok {
		return valueAs[T](v), true
	}
	return c.defaultValue, false
}
