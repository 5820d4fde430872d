package reactive_test

import (
	"strconv"
	"testing"

	"github.com/nitonfx/signaling/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapViewAppliesOnEveryRead(t *testing.T) {
	rs := newSystem(t)
	s := reactive.CreateSignal(rs, 2)

	calls := 0
	v := reactive.MapView[int, string](s, func(x int) string {
		calls++
		return strconv.Itoa(x * 10)
	})
	var _ reactive.Readable[string] = v

	assert.Equal(t, "20", v.Value())
	assert.Equal(t, "20", v.Peek())
	assert.Equal(t, 2, calls)
	assert.Equal(t, s.ID(), v.ID())
	assert.Equal(t, reactive.KindSource, v.Kind())
}

func TestMapViewTracksItsSource(t *testing.T) {
	rs := newSystem(t)
	s := reactive.CreateSignal(rs, 1)
	v := reactive.MapView[int, string](s, strconv.Itoa)

	length := reactive.CreateMemo(rs, func() int {
		return len(reactive.Read[string](v))
	})
	var seen []string
	reactive.Watch(rs, func() {
		seen = append(seen, v.Value())
	})

	require.NoError(t, s.SetValue(12))
	assert.Equal(t, []string{"1", "12"}, seen)
	assert.Equal(t, 2, length.Value())

	reactive.Watch(rs, func() {
		v.Peek()
	})
	info, ok := rs.Inspect(s.ID())
	require.True(t, ok)
	assert.Len(t, info.Dependents, 2, "peeking through a view records nothing")
}

func TestMapViewDisposesItsSource(t *testing.T) {
	rs := newSystem(t)
	s := reactive.CreateSignal(rs, 1)
	v := reactive.MapView[int, int](s, func(x int) int { return -x })

	v.Dispose()
	assert.True(t, s.Disposed())
	assert.True(t, v.Disposed())
	assert.Equal(t, -1, v.Value())
}
