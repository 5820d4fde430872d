package reactive

import (
	"errors"
	"fmt"
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type pendingWrite struct {
	n      *node
	update func(old any) any
}

// run executes seed as part of a propagation and then drains pending work
// pass by pass. Only the outermost call drains; nested calls just run seed
// and leave their failures to the outer one.
func (rs *ReactiveSystem) run(seed func()) error {
	if rs.flushing {
		if seed != nil {
			seed()
		}
		return nil
	}

	rs.flushing = true
	rs.errs = nil
	rs.stats = FlushStats{Start: time.Now()}
	defer func() {
		rs.flushing = false
	}()

	if seed != nil {
		seed()
	}
	for rs.batchDepth == 0 && rs.pending() {
		if rs.stats.Passes == rs.maxPasses {
			rs.errs = append(rs.errs, fmt.Errorf("%w: %d passes", ErrFlushLimit, rs.maxPasses))
			break
		}
		rs.stats.Passes++
		rs.pass()
	}

	err := errors.Join(rs.errs...)
	rs.errs = nil
	rs.stats.Writes = rs.written.Cardinality()
	rs.written.Clear()
	rs.stats.Duration = time.Since(rs.stats.Start)
	rs.stats.Err = err
	rs.logger.Debug("flush",
		"passes", rs.stats.Passes,
		"writes", rs.stats.Writes,
		"evaluations", rs.stats.Evaluations,
		"effects", rs.stats.Effects,
		"duration", rs.stats.Duration,
	)
	rs.hooks.FlushCompleted(rs.stats)
	return err
}

func (rs *ReactiveSystem) pending() bool {
	return len(rs.deferred) > 0 ||
		rs.staleComputeds.Cardinality() > 0 ||
		rs.pendingEffects.Cardinality() > 0
}

// pass commits the writes queued by the previous pass, settles every stale
// computed an effect depends on and then runs the stale effects.
func (rs *ReactiveSystem) pass() {
	writes := rs.deferred
	rs.deferred = nil
	for _, w := range writes {
		if w.n.state != StateDisposed {
			rs.commit(w.n, w.update(w.n.value))
		}
	}

	for _, id := range drainSorted(rs.staleComputeds) {
		n, ok := rs.live[id]
		if !ok || n.state != StateStale {
			continue
		}
		if !rs.observed(id) {
			// no effect downstream, stays lazy until read
			continue
		}
		rs.resolve(n)
	}

	for _, id := range drainSorted(rs.pendingEffects) {
		if n, ok := rs.live[id]; ok && n.state == StateStale {
			rs.resolve(n)
		}
	}
}

// observed reports whether an effect depends on id, directly or through
// other computeds.
func (rs *ReactiveSystem) observed(id NodeID) bool {
	seen := mapset.NewThreadUnsafeSet[NodeID](id)
	queue := []NodeID{id}
	for len(queue) > 0 {
		subs, ok := rs.dependents[queue[0]]
		queue = queue[1:]
		if !ok {
			continue
		}
		for _, sub := range subs.ToSlice() {
			if !seen.Add(sub) {
				continue
			}
			if n, ok := rs.live[sub]; ok && kinds[n.kind].eager {
				return true
			}
			queue = append(queue, sub)
		}
	}
	return false
}

// drainSorted empties s and returns its members in creation order.
func drainSorted(s mapset.Set[NodeID]) []NodeID {
	ids := s.ToSlice()
	s.Clear()
	slices.Sort(ids)
	return ids
}

// resolve brings a stale node up to date. Its recorded dependencies are
// resolved first, in the order they were read; the node only runs again if
// one of them actually changed. The only error returned is a *CycleError,
// which every node on the path has to fail with.
func (rs *ReactiveSystem) resolve(n *node) error {
	if !kinds[n.kind].tracked || n.state != StateStale {
		return nil
	}
	if n.resolving {
		return rs.cycle(n)
	}
	n.resolving = true
	defer func() {
		n.resolving = false
	}()

	// a failed node retries whenever it is stale again
	changed := !n.evaluated || n.err != nil
	for _, e := range rs.dependencies[n.id] {
		if changed {
			break
		}
		dep, ok := rs.live[e.dep]
		if !ok {
			continue
		}
		if err := rs.resolve(dep); err != nil {
			n.state = StateActive
			n.err = err
			rs.report(n, err)
			return err
		}
		changed = dep.version != e.version
	}

	if !changed {
		n.state = StateActive
		return nil
	}
	return rs.evaluate(n)
}

// evaluate runs the body of a computed or effect under a fresh tracking
// frame and settles the outcome.
func (rs *ReactiveSystem) evaluate(n *node) error {
	behavior := kinds[n.kind]
	start := time.Now()

	rs.runCleanups(n)
	rs.disposeOwned(n)

	var (
		result  any
		cleanup Cleanup
		err     error
	)
	f := rs.push(n, true)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Value: r}
			}
			rs.pop(f)
		}()
		result, cleanup, err = behavior.evaluate(rs, n, f)
	}()
	if f.err != nil {
		err = f.err
	}

	rs.stats.Evaluations++
	if n.kind == KindEffect {
		rs.stats.Effects++
	}
	ev := Evaluation{
		Node:     n.id,
		Kind:     n.kind,
		Label:    n.label,
		Start:    start,
		Flushing: rs.flushing,
		Err:      err,
	}

	if n.state == StateDisposed {
		// disposed itself while running
		if cleanup != nil {
			n.cleanups = append(n.cleanups, cleanup)
		}
		rs.runCleanups(n)
		ev.Duration = time.Since(start)
		rs.hooks.NodeEvaluated(ev)
		return nil
	}

	n.state = StateActive
	if err != nil {
		rs.commitEdges(n, f, true)
		if cleanup != nil {
			n.cleanups = append(n.cleanups, cleanup)
		}
		n.evaluated = true
		n.err = err
		rs.report(n, err)
		ev.Duration = time.Since(start)
		rs.hooks.NodeEvaluated(ev)
		if ce, ok := asCycle(err); ok {
			return ce
		}
		return nil
	}

	rs.commitEdges(n, f, false)
	version := n.version
	behavior.settle(rs, n, result, cleanup)
	n.evaluated = true
	n.err = nil
	ev.Changed = n.version != version || n.kind == KindEffect
	ev.Duration = time.Since(start)
	rs.hooks.NodeEvaluated(ev)
	return nil
}

// runCleanups runs and forgets the cleanups of n's previous run. Reads
// inside a cleanup are never tracked, and a computed's cleanups may not
// write signals any more than its body.
func (rs *ReactiveSystem) runCleanups(n *node) {
	if len(n.cleanups) == 0 {
		return
	}
	cleanups := n.cleanups
	n.cleanups = nil

	f := rs.push(n, false)
	f.pure = f.pure || n.kind == KindComputed
	defer rs.pop(f)
	for _, cleanup := range cleanups {
		rs.callCleanup(n, cleanup)
	}
}

func (rs *ReactiveSystem) callCleanup(n *node, cleanup Cleanup) {
	defer func() {
		if r := recover(); r != nil {
			rs.report(n, fmt.Errorf("cleanup: %w", &PanicError{Value: r}))
		}
	}()
	cleanup()
}

// report hands a node failure to the flush in progress, or to the error
// handler when nothing is flushing.
func (rs *ReactiveSystem) report(n *node, err error) {
	evalErr := &EvaluationError{
		Node:  n.id,
		Kind:  n.kind,
		Label: n.label,
		Err:   err,
	}
	rs.logger.Warn("node evaluation failed", "node", n.id, "kind", n.kind, "label", n.label, "error", err)
	if rs.flushing {
		rs.errs = append(rs.errs, evalErr)
		return
	}
	if rs.onError != nil {
		rs.onError(n.id, evalErr)
	}
}
