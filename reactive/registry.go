package reactive

import "slices"

// Handle is any node handle: *Signal[T], *Computed[T], *Effect or *Scope.
type Handle interface {
	ID() NodeID
	Kind() Kind
	Dispose()
	Disposed() bool
	node() *node
}

// Dispose disposes the node behind h. Disposing twice is a no-op.
func Dispose(h Handle) {
	if n := h.node(); n != nil {
		n.rs.dispose(n)
	}
}

// register allocates the next identity and hands ownership of n to whatever
// is evaluating right now.
func (rs *ReactiveSystem) register(n *node, opts []NodeOption) *node {
	rs.nextID++
	n.id = rs.nextID
	n.rs = rs
	for _, opt := range opts {
		opt(n)
	}
	if owner := rs.owner(); owner != nil {
		n.owner = owner
		owner.owned = append(owner.owned, n)
	}
	rs.live[n.id] = n
	rs.hooks.NodeCreated(n.id, n.kind, n.label)
	return n
}

func (rs *ReactiveSystem) owner() *node {
	if rs.frame == nil {
		return nil
	}
	return rs.frame.node
}

func (rs *ReactiveSystem) dispose(n *node) {
	if n.state == StateDisposed {
		return
	}
	n.state = StateDisposed

	rs.disposeOwned(n)
	rs.runCleanups(n)

	for _, e := range rs.dependencies[n.id] {
		if subs, ok := rs.dependents[e.dep]; ok {
			subs.Remove(n.id)
		}
	}
	delete(rs.dependencies, n.id)

	if subs, ok := rs.dependents[n.id]; ok {
		for _, sub := range subs.ToSlice() {
			rs.dependencies[sub] = slices.DeleteFunc(rs.dependencies[sub], func(e edge) bool {
				return e.dep == n.id
			})
		}
		delete(rs.dependents, n.id)
	}

	rs.staleComputeds.Remove(n.id)
	rs.pendingEffects.Remove(n.id)
	if o := n.owner; o != nil {
		o.owned = slices.DeleteFunc(o.owned, func(c *node) bool { return c == n })
	}
	n.contexts = nil
	delete(rs.live, n.id)

	rs.logger.Debug("node disposed", "node", n.id, "kind", n.kind, "label", n.label)
	rs.hooks.NodeDisposed(n.id, n.kind, n.label)
}

// disposeOwned tears down everything n created during its last run,
// newest first.
func (rs *ReactiveSystem) disposeOwned(n *node) {
	owned := n.owned
	n.owned = nil
	for i := len(owned) - 1; i >= 0; i-- {
		rs.dispose(owned[i])
	}
}

func (rs *ReactiveSystem) disposedAccess(n *node, op string) {
	rs.logger.Debug("disposed node access", "node", n.id, "kind", n.kind, "label", n.label, "op", op)
	rs.hooks.DisposedAccess(n.id, n.kind, op)
}
