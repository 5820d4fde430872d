package reactive_test

import (
	"errors"
	"testing"

	"github.com/nitonfx/signaling/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldKeepGraphConsistentOnActivationErrors(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))

	a := reactive.CreateSignal(rs, 0)
	b := reactive.CreateMemo(rs, func() int {
		panic("fail")
	})

	assert.NotPanics(t, func() {
		_, err := b.Result()
		var pe *reactive.PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "fail", pe.Value)
	})
	require.Len(t, errs, 1)

	require.NoError(t, a.SetValue(1))
	assert.Equal(t, 1, a.Value())
}

func TestShouldKeepGraphConsistentOnComputedErrors(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))

	a := reactive.CreateSignal(rs, 0)
	b := reactive.CreateMemo(rs, func() int {
		panic("fail")
	})
	c := reactive.CreateMemo(rs, func() int {
		return a.Value()
	})

	b.Value()
	require.NoError(t, a.SetValue(1))
	assert.Equal(t, 1, c.Value())
}

func TestFailedComputedKeepsLastValue(t *testing.T) {
	rs := newSystem(t)
	errBoom := errors.New("boom")

	a := reactive.CreateSignal(rs, 0)
	b := reactive.CreateComputed(rs, func() (int, error) {
		if a.Value() == 1 {
			return 0, errBoom
		}
		return a.Value() * 10, nil
	}, reactive.Label("b"))
	c := reactive.CreateMemo(rs, func() int {
		return a.Value() + 100
	})

	var bSeen, cSeen []int
	reactive.Watch(rs, func() { bSeen = append(bSeen, b.Value()) })
	reactive.Watch(rs, func() { cSeen = append(cSeen, c.Value()) })

	err := a.SetValue(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	var evalErr *reactive.EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, b.ID(), evalErr.Node)
	assert.Equal(t, "b", evalErr.Label)
	assert.Equal(t, reactive.KindComputed, evalErr.Kind)

	// the failure does not reach the effect on b, the sibling branch settles
	assert.Equal(t, []int{0}, bSeen)
	assert.Equal(t, []int{100, 101}, cSeen)

	v, bErr := b.Result()
	assert.Equal(t, 0, v)
	assert.ErrorIs(t, bErr, errBoom)
	info, _ := rs.Inspect(b.ID())
	assert.Equal(t, reactive.StateActive, info.State)

	// recovers on the next change
	require.NoError(t, a.SetValue(2))
	assert.Equal(t, []int{0, 20}, bSeen)
	_, bErr = b.Result()
	assert.NoError(t, bErr)
}

func TestEffectErrorsAreReturnedFromWrite(t *testing.T) {
	rs := newSystem(t)
	errBoom := errors.New("boom")
	s := reactive.CreateSignal(rs, 0)

	effect := reactive.CreateEffect(rs, func() (reactive.Cleanup, error) {
		if s.Value() > 0 {
			return nil, errBoom
		}
		return nil, nil
	})
	require.NoError(t, effect.Err())

	err := s.SetValue(1)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, effect.Err(), errBoom)

	require.NoError(t, s.SetValue(0))
	assert.NoError(t, effect.Err())
}

func TestFirstEffectRunErrorGoesToHandler(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))
	errBoom := errors.New("boom")

	effect := reactive.CreateEffect(rs, func() (reactive.Cleanup, error) {
		return nil, errBoom
	})
	assert.ErrorIs(t, effect.Err(), errBoom)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errBoom)
}

func TestSelfCycleIsDetected(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))

	var c *reactive.Computed[int]
	c = reactive.CreateMemo(rs, func() int {
		return c.Value() + 1
	})

	_, err := c.Result()
	require.ErrorIs(t, err, reactive.ErrCycleDetected)
	var ce *reactive.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, c.ID(), ce.Node)
	assert.NotEmpty(t, errs)
}

func TestMutualCycleIsDetected(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))

	var a, b *reactive.Computed[int]
	a = reactive.CreateMemo(rs, func() int {
		return b.Value() + 1
	})
	b = reactive.CreateMemo(rs, func() int {
		return a.Value() + 1
	})

	_, errA := a.Result()
	_, errB := b.Result()
	assert.ErrorIs(t, errA, reactive.ErrCycleDetected)
	assert.ErrorIs(t, errB, reactive.ErrCycleDetected)

	var ce *reactive.CycleError
	require.ErrorAs(t, errA, &ce)
	assert.Equal(t, []reactive.NodeID{a.ID(), b.ID()}, ce.Path)
}

func TestCycleFormedByWriteIsDetected(t *testing.T) {
	rs := newSystem(t)
	closed := reactive.CreateSignal(rs, false)

	var a, b *reactive.Computed[int]
	a = reactive.CreateMemo(rs, func() int {
		if closed.Value() {
			return b.Value()
		}
		return 1
	})
	b = reactive.CreateMemo(rs, func() int {
		return a.Value() + 1
	})

	var seen []int
	reactive.Watch(rs, func() { seen = append(seen, b.Value()) })
	require.Equal(t, []int{2}, seen)

	err := closed.SetValue(true)
	assert.ErrorIs(t, err, reactive.ErrCycleDetected)
	_, errA := a.Result()
	assert.ErrorIs(t, errA, reactive.ErrCycleDetected)

	// opening the loop again lets both settle
	require.NoError(t, closed.SetValue(false))
	assert.Equal(t, 2, b.Value())
	assert.Equal(t, 2, seen[len(seen)-1])
}

func TestWriteInComputedIsRejected(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))
	s := reactive.CreateSignal(rs, 1)

	c := reactive.CreateComputed(rs, func() (int, error) {
		if err := s.SetValue(2); err != nil {
			return 0, err
		}
		return 1, nil
	})

	_, err := c.Result()
	assert.ErrorIs(t, err, reactive.ErrWriteInComputed)
	assert.Equal(t, 1, s.Peek())

	u := reactive.CreateComputed(rs, func() (int, error) {
		var err error
		reactive.Untrack(rs, func() {
			err = s.SetValue(3)
		})
		return 0, err
	})
	_, err = u.Result()
	assert.ErrorIs(t, err, reactive.ErrWriteInComputed)
	assert.Equal(t, 1, s.Peek())
}

func TestWriteInComputedIsRejectedInsideScopesAndCleanups(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))
	s := reactive.CreateSignal(rs, 1)
	trigger := reactive.CreateSignal(rs, 0)

	var scopeErr, runErr, cleanupErr error
	c := reactive.CreateMemo(rs, func() int {
		scope, _ := reactive.NewScope(rs, func() error {
			scopeErr = s.SetValue(42)
			return nil
		})
		runErr = scope.Run(func() error {
			return s.SetValue(43)
		})
		reactive.OnCleanup(rs, func() {
			cleanupErr = s.SetValue(44)
		})
		return trigger.Value()
	})

	assert.Equal(t, 0, c.Value())
	assert.ErrorIs(t, scopeErr, reactive.ErrWriteInComputed)
	assert.ErrorIs(t, runErr, reactive.ErrWriteInComputed)
	assert.Equal(t, 1, s.Peek())

	require.NoError(t, trigger.SetValue(1))
	assert.Equal(t, 1, c.Value())
	assert.ErrorIs(t, cleanupErr, reactive.ErrWriteInComputed)

	cleanupErr = nil
	c.Dispose()
	assert.ErrorIs(t, cleanupErr, reactive.ErrWriteInComputed)
	assert.Equal(t, 1, s.Peek())
	assert.Empty(t, errs)
}

func TestEffectScopesAndCleanupsMayWrite(t *testing.T) {
	rs := newSystem(t)
	s := reactive.CreateSignal(rs, 0)
	trigger := reactive.CreateSignal(rs, 0)

	var runs int
	reactive.Watch(rs, func() {
		runs++
		trigger.Value()
		_, err := reactive.NewScope(rs, func() error {
			return s.Update(func(v int) int { return v + 1 })
		})
		require.NoError(t, err)
		require.NoError(t, reactive.OnCleanup(rs, func() {
			require.NoError(t, s.Update(func(v int) int { return v + 10 }))
		}))
	})
	assert.Equal(t, 1, s.Peek())

	require.NoError(t, trigger.SetValue(1))
	assert.Equal(t, 2, runs)
	assert.Equal(t, 12, s.Peek())
}

func TestFlushLimit(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs), reactive.WithMaxPasses(5))
	s := reactive.CreateSignal(rs, 0)

	reactive.Watch(rs, func() {
		v := s.Value()
		require.NoError(t, s.SetValue(v+1))
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], reactive.ErrFlushLimit)
	assert.Equal(t, 5, s.Peek())

	// the queued write is still pending and another flush continues from it
	err := rs.Flush()
	assert.ErrorIs(t, err, reactive.ErrFlushLimit)
	assert.Equal(t, 10, s.Peek())
}

func TestCleanupPanicIsReported(t *testing.T) {
	var errs []error
	rs := reactive.NewReactiveSystem(quiet, collectErrors(&errs))
	s := reactive.CreateSignal(rs, 0)

	reactive.CreateEffect(rs, func() (reactive.Cleanup, error) {
		s.Value()
		return func() { panic("cleanup") }, nil
	})

	err := s.SetValue(1)
	var pe *reactive.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "cleanup", pe.Value)
	assert.Empty(t, errs)
}
