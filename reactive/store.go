package reactive

import "fmt"

// read makes n current and records it as a dependency of the evaluating
// node, if any. Disposed nodes keep answering with their last value.
func (rs *ReactiveSystem) read(n *node) {
	if n.state == StateDisposed {
		rs.disposedAccess(n, "read")
		return
	}
	if n.kind == KindComputed && n.state == StateStale {
		if err := rs.resolve(n); err != nil {
			if ce, ok := asCycle(err); ok {
				rs.failFrames(ce)
			}
		}
	}
	if rs.frame != nil {
		rs.frame.track(n)
	}
}

// write applies update to n's current value. Inside a flush the update is
// queued and applied when the next pass starts.
func (rs *ReactiveSystem) write(n *node, update func(old any) any) error {
	if n.state == StateDisposed {
		rs.disposedAccess(n, "write")
		return nil
	}
	if f := rs.frame; f != nil && f.pure {
		return fmt.Errorf("%w: writing %s", ErrWriteInComputed, n.describe())
	}
	if rs.flushing {
		// effects write into the next pass, never into the current one
		rs.deferred = append(rs.deferred, pendingWrite{n: n, update: update})
		return nil
	}
	if !rs.commit(n, update(n.value)) {
		return nil
	}
	if rs.batchDepth > 0 {
		return nil
	}
	return rs.run(nil)
}

// commit stores value and marks everything downstream stale. It reports
// false when the equality predicate says nothing changed.
func (rs *ReactiveSystem) commit(n *node, value any) bool {
	if n.state == StateDisposed || n.equals(n.value, value) {
		return false
	}
	n.value = value
	n.version++
	rs.written.Add(n.id)
	rs.markDependents(n)
	return true
}

// markDependents walks the forward index breadth first. A node that is
// already stale has stale dependents too, so the walk stops there.
func (rs *ReactiveSystem) markDependents(n *node) {
	subs, ok := rs.dependents[n.id]
	if !ok {
		return
	}
	queue := subs.ToSlice()
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		sub, ok := rs.live[id]
		if !ok || sub.state != StateActive {
			continue
		}
		sub.state = StateStale
		if kinds[sub.kind].eager {
			rs.pendingEffects.Add(id)
		} else {
			rs.staleComputeds.Add(id)
		}
		if next, ok := rs.dependents[id]; ok {
			queue = append(queue, next.ToSlice()...)
		}
	}
}

func valueAs[T any](v any) T {
	t, _ := v.(T)
	return t
}

func equalsOf[T any](eq EqualsFunc[T]) func(a, b any) bool {
	if eq == nil {
		return func(a, b any) bool { return false }
	}
	return func(a, b any) bool {
		return eq(valueAs[T](a), valueAs[T](b))
	}
}

func comparableEquals[T comparable](a, b T) bool {
	return a == b
}
