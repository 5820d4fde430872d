package reactive

import "fmt"

// NodeID identifies a node for the lifetime of its ReactiveSystem. IDs are
// handed out in creation order and never reused.
type NodeID uint64

type Kind uint8

const (
	KindSource Kind = iota
	KindComputed
	KindEffect
)

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

type State uint8

const (
	StateActive State = iota
	StateStale
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateStale:
		return "stale"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// EqualsFunc reports whether two values are the same for change detection.
type EqualsFunc[T any] func(a, b T) bool

// Cleanup releases whatever the previous run of an effect acquired.
type Cleanup func()

type edge struct {
	dep     NodeID
	version uint64
}

type node struct {
	rs    *ReactiveSystem
	id    NodeID
	kind  Kind
	state State
	label string

	value   any
	version uint64
	equals  func(a, b any) bool
	err     error

	compute func() (any, error)
	effect  func() (Cleanup, error)

	// evaluated is false until the first successful or failed run.
	evaluated bool
	resolving bool
	scope     bool

	owner    *node
	owned    []*node
	cleanups []Cleanup
	contexts map[uint64]any
}

func (n *node) describe() string {
	if n.label != "" {
		return fmt.Sprintf("%s#%d(%s)", n.kind, n.id, n.label)
	}
	return fmt.Sprintf("%s#%d", n.kind, n.id)
}

// kindBehavior is the per-kind half of every operation that differs between
// sources, computeds and effects.
type kindBehavior struct {
	name string
	// tracked kinds run under a frame and own dependency edges
	tracked bool
	// eager kinds are queued for execution when they go stale
	eager    bool
	evaluate func(rs *ReactiveSystem, n *node, f *frame) (result any, cleanup Cleanup, err error)
	settle   func(rs *ReactiveSystem, n *node, result any, cleanup Cleanup)
}

var kinds = [...]kindBehavior{
	KindSource: {
		name: "signal",
	},
	KindComputed: {
		name:    "computed",
		tracked: true,
		evaluate: func(rs *ReactiveSystem, n *node, f *frame) (any, Cleanup, error) {
			v, err := n.compute()
			return v, nil, err
		},
		settle: func(rs *ReactiveSystem, n *node, result any, _ Cleanup) {
			if !n.evaluated || !n.equals(n.value, result) {
				n.value = result
				n.version++
			}
		},
	},
	KindEffect: {
		name:    "effect",
		tracked: true,
		eager:   true,
		evaluate: func(rs *ReactiveSystem, n *node, f *frame) (any, Cleanup, error) {
			cleanup, err := n.effect()
			return nil, cleanup, err
		},
		settle: func(rs *ReactiveSystem, n *node, _ any, cleanup Cleanup) {
			if cleanup != nil {
				n.cleanups = append(n.cleanups, cleanup)
			}
		},
	},
}

// NodeInfo is a snapshot of one node for debugging tools.
type NodeInfo struct {
	ID           NodeID
	Kind         Kind
	State        State
	Label        string
	Scope        bool
	Owner        NodeID
	Dependencies []NodeID
	Dependents   []NodeID
	Err          error
}

// NodeOption configures a node at creation time.
type NodeOption func(n *node)

// Label names a node in logs, errors and Inspect output.
func Label(name string) NodeOption {
	return func(n *node) {
		n.label = name
	}
}
