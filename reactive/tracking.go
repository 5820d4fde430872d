package reactive

import (
	"errors"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// frame is the "currently evaluating" slot. Frames form a stack through
// parent; the system only ever looks at the top one.
type frame struct {
	node     *node
	parent   *frame
	tracking bool
	// pure frames belong to a computed body, which must not write signals
	pure bool

	deps []edge
	seen mapset.Set[NodeID]
	err  error
}

func (rs *ReactiveSystem) push(n *node, tracking bool) *frame {
	f := &frame{
		node:     n,
		parent:   rs.frame,
		tracking: tracking,
	}
	if tracking {
		f.seen = mapset.NewThreadUnsafeSet[NodeID]()
		f.pure = n != nil && n.kind == KindComputed
	} else if rs.frame != nil {
		f.pure = rs.frame.pure
	}
	rs.frame = f
	return f
}

// pop restores the frame that was current before f. A failure recorded on
// an untracked frame belongs to the evaluation it interrupted.
func (rs *ReactiveSystem) pop(f *frame) {
	rs.frame = f.parent
	if !f.tracking && f.err != nil && f.parent != nil && f.parent.err == nil {
		f.parent.err = f.err
	}
}

func (f *frame) track(dep *node) {
	if !f.tracking || dep == f.node {
		return
	}
	if f.seen.Add(dep.id) {
		f.deps = append(f.deps, edge{dep: dep.id, version: dep.version})
	}
}

// commitEdges swaps n's dependency set for the one recorded in f. A failed
// run keeps the old edges as well so the node is retried when any of them
// changes.
func (rs *ReactiveSystem) commitEdges(n *node, f *frame, failed bool) {
	prev := rs.dependencies[n.id]
	next := f.deps
	keep := f.seen
	if failed {
		for _, e := range prev {
			if keep.Add(e.dep) {
				next = append(next, e)
			}
		}
	}

	for _, e := range prev {
		if !keep.Contains(e.dep) {
			if subs, ok := rs.dependents[e.dep]; ok {
				subs.Remove(n.id)
			}
		}
	}
	live := next[:0:0]
	for _, e := range next {
		if _, ok := rs.live[e.dep]; !ok {
			continue
		}
		subs, ok := rs.dependents[e.dep]
		if !ok {
			subs = mapset.NewThreadUnsafeSet[NodeID]()
			rs.dependents[e.dep] = subs
		}
		subs.Add(n.id)
		live = append(live, e)
	}

	if len(live) == 0 {
		delete(rs.dependencies, n.id)
		return
	}
	rs.dependencies[n.id] = live
}

// cycle builds the error for re-entering n, which is still resolving
// somewhere below the current frame.
func (rs *ReactiveSystem) cycle(n *node) *CycleError {
	err := &CycleError{Node: n.id}
	for f := rs.frame; f != nil; f = f.parent {
		if f.node == nil || !f.tracking {
			continue
		}
		err.Path = append(err.Path, f.node.id)
		if f.node == n {
			break
		}
	}
	slices.Reverse(err.Path)
	return err
}

// failFrames fails every evaluation between the current frame and the node
// the cycle re-entered. When that node is no longer on the stack only the
// current reader fails: it depends on a node that could not resolve.
func (rs *ReactiveSystem) failFrames(err *CycleError) {
	onStack := false
	for f := rs.frame; f != nil; f = f.parent {
		if f.node != nil && f.node.id == err.Node {
			onStack = true
			break
		}
	}
	for f := rs.frame; f != nil; f = f.parent {
		if f.err == nil {
			f.err = err
		}
		if !onStack || (f.node != nil && f.node.id == err.Node) {
			break
		}
	}
}

func asCycle(err error) (*CycleError, bool) {
	var ce *CycleError
	ok := errors.As(err, &ce)
	return ce, ok
}

// Untrack runs fn without recording dependencies for the node currently
// evaluating. Ownership is unaffected: nodes created inside still belong to it.
func Untrack(rs *ReactiveSystem, fn func()) {
	f := rs.push(rs.owner(), false)
	defer rs.pop(f)
	fn()
}

func Untracked[T any](rs *ReactiveSystem, fn func() T) T {
	var v T
	Untrack(rs, func() {
		v = fn()
	})
	return v
}

// OnCleanup registers fn to run before the current computed or effect runs
// again, or when it or its scope is disposed.
func OnCleanup(rs *ReactiveSystem, fn func()) error {
	n := rs.owner()
	if n == nil {
		return ErrNoOwner
	}
	n.cleanups = append(n.cleanups, fn)
	return nil
}
