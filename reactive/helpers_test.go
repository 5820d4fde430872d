package reactive_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/nitonfx/signaling/reactive"
	"github.com/stretchr/testify/assert"
)

var quiet = reactive.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// newSystem fails the test on any error that reaches the error handler.
func newSystem(t *testing.T, opts ...reactive.Option) *reactive.ReactiveSystem {
	t.Helper()
	opts = append([]reactive.Option{
		quiet,
		reactive.WithErrorHandler(func(from reactive.NodeID, err error) {
			assert.FailNow(t, err.Error())
		}),
	}, opts...)
	return reactive.NewReactiveSystem(opts...)
}

// collectErrors records what reaches the error handler instead of failing.
func collectErrors(errs *[]error) reactive.Option {
	return reactive.WithErrorHandler(func(from reactive.NodeID, err error) {
		*errs = append(*errs, err)
	})
}

type recordingHooks struct {
	reactive.NopHooks
	created     []reactive.NodeID
	evaluations []reactive.Evaluation
	disposed    []reactive.NodeID
	access      []string
	flushes     []reactive.FlushStats
}

func (h *recordingHooks) NodeCreated(id reactive.NodeID, kind reactive.Kind, label string) {
	h.created = append(h.created, id)
}

func (h *recordingHooks) NodeEvaluated(ev reactive.Evaluation) {
	h.evaluations = append(h.evaluations, ev)
}

func (h *recordingHooks) NodeDisposed(id reactive.NodeID, kind reactive.Kind, label string) {
	h.disposed = append(h.disposed, id)
}

func (h *recordingHooks) DisposedAccess(id reactive.NodeID, kind reactive.Kind, op string) {
	h.access = append(h.access, op)
}

func (h *recordingHooks) FlushCompleted(stats reactive.FlushStats) {
	h.flushes = append(h.flushes, stats)
}
