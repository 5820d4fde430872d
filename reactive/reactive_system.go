package reactive

import (
	"log/slog"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

const DefaultMaxPasses = 100

// OnErrorFunc receives failures that have no caller to be returned to, such
// as a lazy read of a computed outside of any write or batch.
type OnErrorFunc func(from NodeID, err error)

// ReactiveSystem owns every node of one reactive graph. It is not safe for
// concurrent use: all reads, writes and propagation happen on one goroutine.
type ReactiveSystem struct {
	logger    *slog.Logger
	hooks     Hooks
	onError   OnErrorFunc
	maxPasses int

	nextID NodeID
	live   map[NodeID]*node

	// dependents is the forward index, dependency -> readers.
	dependents map[NodeID]mapset.Set[NodeID]
	// dependencies is the reverse index in first-read order.
	dependencies map[NodeID][]edge

	frame *frame

	batchDepth int
	written    mapset.Set[NodeID]

	flushing       bool
	staleComputeds mapset.Set[NodeID]
	pendingEffects mapset.Set[NodeID]
	deferred       []pendingWrite
	errs           []error
	stats          FlushStats

	contexts map[uint64]any
}

type Option func(rs *ReactiveSystem)

func WithLogger(logger *slog.Logger) Option {
	return func(rs *ReactiveSystem) {
		rs.logger = logger
	}
}

func WithHooks(hooks ...Hooks) Option {
	return func(rs *ReactiveSystem) {
		if len(hooks) == 1 {
			rs.hooks = hooks[0]
			return
		}
		rs.hooks = MultiHooks(hooks)
	}
}

func WithErrorHandler(onError OnErrorFunc) Option {
	return func(rs *ReactiveSystem) {
		rs.onError = onError
	}
}

// WithMaxPasses bounds how many times effects may re-trigger propagation by
// writing signals before a flush gives up with ErrFlushLimit.
func WithMaxPasses(n int) Option {
	return func(rs *ReactiveSystem) {
		if n > 0 {
			rs.maxPasses = n
		}
	}
}

func NewReactiveSystem(opts ...Option) *ReactiveSystem {
	rs := &ReactiveSystem{
		logger:         slog.Default(),
		hooks:          NopHooks{},
		maxPasses:      DefaultMaxPasses,
		live:           map[NodeID]*node{},
		dependents:     map[NodeID]mapset.Set[NodeID]{},
		dependencies:   map[NodeID][]edge{},
		written:        mapset.NewThreadUnsafeSet[NodeID](),
		staleComputeds: mapset.NewThreadUnsafeSet[NodeID](),
		pendingEffects: mapset.NewThreadUnsafeSet[NodeID](),
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

// EndBatch closes the innermost batch. Closing the outermost one flushes
// everything written since it opened and returns the flush failures.
func (rs *ReactiveSystem) EndBatch() error {
	if rs.batchDepth == 0 {
		return nil
	}
	rs.batchDepth--
	if rs.batchDepth > 0 {
		return nil
	}
	return rs.run(nil)
}

// Batch defers propagation until fn returns. Batches nest; only the
// outermost one flushes.
func (rs *ReactiveSystem) Batch(fn func()) (err error) {
	rs.StartBatch()
	defer func() {
		if endErr := rs.EndBatch(); err == nil {
			err = endErr
		}
	}()
	fn()
	return nil
}

// Flush runs any propagation left pending, for instance after a flush
// stopped at the pass limit. It is a no-op inside a batch or a flush.
func (rs *ReactiveSystem) Flush() error {
	if rs.batchDepth > 0 {
		return nil
	}
	return rs.run(nil)
}

// Live returns the number of nodes that have not been disposed.
func (rs *ReactiveSystem) Live() int {
	return len(rs.live)
}

func (rs *ReactiveSystem) Inspect(id NodeID) (NodeInfo, bool) {
	n, ok := rs.live[id]
	if !ok {
		return NodeInfo{}, false
	}
	info := NodeInfo{
		ID:    n.id,
		Kind:  n.kind,
		State: n.state,
		Label: n.label,
		Scope: n.scope,
		Err:   n.err,
	}
	if n.owner != nil {
		info.Owner = n.owner.id
	}
	for _, e := range rs.dependencies[id] {
		info.Dependencies = append(info.Dependencies, e.dep)
	}
	if subs, ok := rs.dependents[id]; ok {
		info.Dependents = subs.ToSlice()
		slices.Sort(info.Dependents)
	}
	return info, true
}
