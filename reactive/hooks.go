package reactive

import "time"

// Hooks observe the runtime. They are called synchronously on the
// propagation path and must not read or write nodes themselves.
//
// Embed NopHooks to implement only the callbacks you need.
type Hooks interface {
	NodeCreated(id NodeID, kind Kind, label string)
	NodeEvaluated(ev Evaluation)
	NodeDisposed(id NodeID, kind Kind, label string)
	DisposedAccess(id NodeID, kind Kind, op string)
	FlushCompleted(stats FlushStats)
}

// Evaluation describes one run of a computed or effect body.
type Evaluation struct {
	Node     NodeID
	Kind     Kind
	Label    string
	Start    time.Time
	Duration time.Duration
	// Changed is true when a computed produced a value its equality
	// predicate considers new, and always true for a successful effect run.
	Changed bool
	// Flushing is true when the run was part of a flush, which reports
	// FlushCompleted afterwards. Lazy reads outside of any flush are not.
	Flushing bool
	Err      error
}

// FlushStats summarizes one propagation, from the triggering write to the
// last effect of the last pass.
type FlushStats struct {
	Start       time.Time
	Duration    time.Duration
	Passes      int
	Writes      int
	Evaluations int
	Effects     int
	Err         error
}

type NopHooks struct{}

func (NopHooks) NodeCreated(NodeID, Kind, string) {}
func (NopHooks) NodeEvaluated(Evaluation) {}
func (NopHooks) NodeDisposed(NodeID, Kind, string) {}
func (NopHooks) DisposedAccess(NodeID, Kind, string) {}
func (NopHooks) FlushCompleted(FlushStats) {}

// MultiHooks fans every callback out to each of its members in order.
type MultiHooks []Hooks

func (m MultiHooks) NodeCreated(id NodeID, kind Kind, label string) {
	for _, h := range m {
		h.NodeCreated(id, kind, label)
	}
}

func (m MultiHooks) NodeEvaluated(ev Evaluation) {
	for _, h := range m {
		h.NodeEvaluated(ev)
	}
}

func (m MultiHooks) NodeDisposed(id NodeID, kind Kind, label string) {
	for _, h := range m {
		h.NodeDisposed(id, kind, label)
	}
}

func (m MultiHooks) DisposedAccess(id NodeID, kind Kind, op string) {
	for _, h := range m {
		h.DisposedAccess(id, kind, op)
	}
}

func (m MultiHooks) FlushCompleted(stats FlushStats) {
	for _, h := range m {
		h.FlushCompleted(stats)
	}
}
