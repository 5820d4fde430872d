package reactive_test

import (
	"errors"
	"testing"

	"github.com/nitonfx/signaling/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooksSeeLifecycle(t *testing.T) {
	h := &recordingHooks{}
	rs := newSystem(t, reactive.WithHooks(h))

	s := reactive.CreateSignal(rs, 1)
	c := reactive.CreateMemo(rs, func() int { return s.Value() % 2 })
	e := reactive.Watch(rs, func() { c.Value() })
	assert.Equal(t, []reactive.NodeID{s.ID(), c.ID(), e.ID()}, h.created)

	h.evaluations = nil
	require.NoError(t, s.SetValue(3))
	require.Len(t, h.evaluations, 1)
	assert.Equal(t, c.ID(), h.evaluations[0].Node)
	assert.False(t, h.evaluations[0].Changed)

	require.NoError(t, s.SetValue(4))
	require.Len(t, h.evaluations, 3)
	assert.True(t, h.evaluations[1].Changed)
	assert.Equal(t, e.ID(), h.evaluations[2].Node)

	stats := h.flushes[len(h.flushes)-1]
	assert.Equal(t, 1, stats.Passes)
	assert.Equal(t, 2, stats.Evaluations)
	assert.Equal(t, 1, stats.Effects)

	e.Dispose()
	assert.Equal(t, []reactive.NodeID{e.ID()}, h.disposed)
}

func TestMultiHooksFanOut(t *testing.T) {
	a, b := &recordingHooks{}, &recordingHooks{}
	rs := newSystem(t, reactive.WithHooks(a, b))
	s := reactive.CreateSignal(rs, 0)
	s.Dispose()
	s.Value()

	for _, h := range []*recordingHooks{a, b} {
		assert.Len(t, h.created, 1)
		assert.Len(t, h.disposed, 1)
		assert.Equal(t, []string{"read"}, h.access)
	}
}

func TestFlushStatsCarryErrors(t *testing.T) {
	h := &recordingHooks{}
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs), reactive.WithHooks(h))
	errBoom := errors.New("boom")
	s := reactive.CreateSignal(rs, 0)
	reactive.CreateEffect(rs, func() (reactive.Cleanup, error) {
		if s.Value() == 1 {
			return nil, errBoom
		}
		return nil, nil
	})

	require.ErrorIs(t, s.SetValue(1), errBoom)
	stats := h.flushes[len(h.flushes)-1]
	assert.ErrorIs(t, stats.Err, errBoom)
	assert.Equal(t, errBoom, h.evaluations[len(h.evaluations)-1].Err)
}
