package reactive_test

import (
	"testing"

	"github.com/nitonfx/signaling/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should pause tracking
func TestShouldPauseTracking(t *testing.T) {
	rs := newSystem(t)

	src := reactive.CreateSignal(rs, 0)
	c := reactive.CreateMemo(rs, func() int {
		return reactive.Untracked(rs, src.Value)
	})
	assert.Equal(t, 0, c.Value())

	require.NoError(t, src.SetValue(1))
	assert.Equal(t, 0, c.Value())
}

func TestPeekDoesNotTrack(t *testing.T) {
	rs := newSystem(t)
	tracked := reactive.CreateSignal(rs, 1)
	peeked := reactive.CreateSignal(rs, 10)
	derived := reactive.CreateMemo(rs, func() int {
		return peeked.Value() * 2
	})

	var seen []int
	reactive.Watch(rs, func() {
		seen = append(seen, tracked.Value()+peeked.Peek()+derived.Peek())
	})
	require.Equal(t, []int{31}, seen)

	require.NoError(t, peeked.SetValue(20))
	assert.Equal(t, []int{31}, seen)

	require.NoError(t, tracked.SetValue(2))
	assert.Equal(t, []int{31, 62}, seen)
}

func TestUntrackKeepsOwnership(t *testing.T) {
	rs := newSystem(t)
	s := reactive.CreateSignal(rs, 0)

	var inner *reactive.Effect
	outer := reactive.Watch(rs, func() {
		s.Value()
		reactive.Untrack(rs, func() {
			inner = reactive.Watch(rs, func() {})
		})
	})

	info, ok := rs.Inspect(inner.ID())
	require.True(t, ok)
	assert.Equal(t, outer.ID(), info.Owner)

	outerInfo, _ := rs.Inspect(outer.ID())
	assert.Equal(t, []reactive.NodeID{s.ID()}, outerInfo.Dependencies)
}
