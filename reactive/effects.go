package reactive

// EffectFunc is the body of an effect. The returned Cleanup, if any, runs
// right before the next run and when the effect is disposed.
type EffectFunc func() (Cleanup, error)

type Effect struct {
	n *node
}

// CreateEffect creates an effect and runs it immediately. Created inside a
// computed, effect or scope, the effect belongs to it and is disposed when
// the owner runs again or goes away.
//
// Failures of the first run are available from Err and are passed to the
// system's error handler when nothing else is flushing.
func CreateEffect(rs *ReactiveSystem, fn EffectFunc, opts ...NodeOption) *Effect {
	n := rs.register(&node{
		kind:   KindEffect,
		state:  StateStale,
		effect: fn,
	}, opts)

	nested := rs.flushing
	err := rs.run(func() {
		rs.resolve(n)
	})
	if err != nil && !nested && rs.onError != nil {
		rs.onError(n.id, err)
	}
	return &Effect{n: n}
}

// Watch creates an effect from a body that neither fails nor returns a
// cleanup. Use OnCleanup inside fn to register one.
func Watch(rs *ReactiveSystem, fn func(), opts ...NodeOption) *Effect {
	return CreateEffect(rs, func() (Cleanup, error) {
		fn()
		return nil, nil
	}, opts...)
}

func (e *Effect) ID() NodeID {
	return e.n.id
}

func (e *Effect) Kind() Kind {
	return KindEffect
}

// Err returns the failure of the most recent run, or nil.
func (e *Effect) Err() error {
	return e.n.err
}

// Dispose runs the pending cleanups, disposes everything the effect created
// and detaches it from the graph.
func (e *Effect) Dispose() {
	e.n.rs.dispose(e.n)
}

func (e *Effect) Disposed() bool {
	return e.n.state == StateDisposed
}

func (e *Effect) node() *node {
	return e.n
}

// Scope owns every node created while its function runs, without tracking
// anything itself. Disposing the scope disposes all of them.
type Scope struct {
	n *node
}

func NewScope(rs *ReactiveSystem, fn func() error, opts ...NodeOption) (*Scope, error) {
	n := rs.register(&node{
		kind:      KindEffect,
		scope:     true,
		evaluated: true,
	}, opts)

	f := rs.push(n, false)
	defer rs.pop(f)
	return &Scope{n: n}, fn()
}

func (s *Scope) ID() NodeID {
	return s.n.id
}

func (s *Scope) Kind() Kind {
	return KindEffect
}

// Run executes fn with the scope as owner again, adding to what it owns.
func (s *Scope) Run(fn func() error) error {
	if s.n.state == StateDisposed {
		return ErrDisposed
	}
	rs := s.n.rs
	f := rs.push(s.n, false)
	defer rs.pop(f)
	return fn()
}

func (s *Scope) Dispose() {
	s.n.rs.dispose(s.n)
}

func (s *Scope) Disposed() bool {
	return s.n.state == StateDisposed
}

func (s *Scope) node() *node {
	return s.n
}
