package reactive_test

import (
	"testing"

	"github.com/nitonfx/signaling/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextFollowsOwnership(t *testing.T) {
	rs := newSystem(t)
	theme := reactive.NewContext("theme", "light")

	v, ok := theme.Lookup(rs)
	assert.False(t, ok)
	assert.Equal(t, "light", v)

	var inner, sibling string
	_, err := reactive.NewScope(rs, func() error {
		theme.Provide(rs, "dark")
		reactive.Watch(rs, func() {
			reactive.Watch(rs, func() {
				inner = theme.Use(rs)
			})
		})
		return nil
	})
	require.NoError(t, err)

	_, err = reactive.NewScope(rs, func() error {
		sibling = theme.Use(rs)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", inner)
	assert.Equal(t, "light", sibling)
	assert.Equal(t, "theme", theme.Name())
}

func TestContextSystemWideValue(t *testing.T) {
	rs := newSystem(t)
	limit := reactive.NewContext("limit", 10)
	limit.Provide(rs, 20)

	// same name, same slot
	alias := reactive.NewContext("limit", 0)
	v, ok := alias.Lookup(rs)
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, err := reactive.NewScope(rs, func() error {
		limit.Provide(rs, 30)
		assert.Equal(t, 30, limit.Use(rs))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 20, limit.Use(rs))
}

func TestContextProvidedInEffectIsReplacedOnRerun(t *testing.T) {
	rs := newSystem(t)
	user := reactive.NewContext("user", "")
	name := reactive.CreateSignal(rs, "ada")

	var seen []string
	reactive.Watch(rs, func() {
		user.Provide(rs, name.Value())
		reactive.Watch(rs, func() {
			seen = append(seen, user.Use(rs))
		})
	})

	require.NoError(t, name.SetValue("grace"))
	assert.Equal(t, []string{"ada", "grace"}, seen)
}
