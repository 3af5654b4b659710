package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/plistkit/plist"
)

func TestWithDefaults(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	require.NoError(t, base.Set(ctx, "Theme", plist.String("dark")))

	s := WithDefaults(base, map[string]plist.Value{
		"Theme":      plist.String("light"),
		"MaxRetries": plist.Integer(3),
		"Ignored":    nil,
	})

	t.Run("stored value wins", func(t *testing.T) {
		v, err := s.Get(ctx, "Theme")
		require.NoError(t, err)
		assert.Equal(t, plist.String("dark"), v)
	})

	t.Run("default fills the gap", func(t *testing.T) {
		v, err := s.Get(ctx, "MaxRetries")
		require.NoError(t, err)
		assert.Equal(t, plist.Integer(3), v)
	})

	t.Run("unknown key still not found", func(t *testing.T) {
		_, err := s.Get(ctx, "Missing")
		assert.True(t, IsNotFound(err))
		_, err = s.Get(ctx, "Ignored")
		assert.True(t, IsNotFound(err))
	})

	t.Run("writes shadow the default", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "MaxRetries", plist.Integer(9)))
		v, err := s.Get(ctx, "MaxRetries")
		require.NoError(t, err)
		assert.Equal(t, plist.Integer(9), v)

		require.NoError(t, s.Delete(ctx, "MaxRetries"))
		v, err = s.Get(ctx, "MaxRetries")
		require.NoError(t, err)
		assert.Equal(t, plist.Integer(3), v)
	})

	t.Run("keys include defaults", func(t *testing.T) {
		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"MaxRetries", "Theme"}, keys)
	})

	t.Run("closed backend errors pass through", func(t *testing.T) {
		require.NoError(t, s.Close())
		_, err := s.Get(ctx, "MaxRetries")
		assert.ErrorIs(t, err, ErrStoreClosed)
	})
}

func TestDefaultsFromNative(t *testing.T) {
	defaults, err := DefaultsFromNative(map[string]any{
		"MaxRetries": 3,
		"Ratio":      0.5,
		"Hosts":      []any{"a", "b"},
		"Nothing":    nil,
	})
	require.NoError(t, err)

	assert.Equal(t, plist.Integer(3), defaults["MaxRetries"])
	assert.Equal(t, plist.Real(0.5), defaults["Ratio"])
	assert.True(t, plist.Equal(plist.NewArray(plist.String("a"), plist.String("b")), defaults["Hosts"]))
	assert.NotContains(t, defaults, "Nothing")

	_, err = DefaultsFromNative(map[string]any{"Bad": make(chan int)})
	assert.Error(t, err)
}
