package binding_test

import (
	"context"
	"strings"
	"testing"

	"github.com/on-the-ground/tarai/internal/binding"
	"github.com/on-the-ground/tarai/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinding_BasicLookup(t *testing.T) {
	ctx := binding.WithBindings(context.Background(), map[string]any{
		"foo": 123,
	})

	v, err := binding.Lookup(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, 123, v)
}

func TestBinding_KeyNotFound(t *testing.T) {
	ctx := binding.WithBindings(context.Background(), map[string]any{
		"foo": 123,
	})

	_, err := binding.Lookup(ctx, "bar")
	if err == nil || !strings.Contains(err.Error(), "key not found") {
		t.Fatalf("expected key-not-found error, got: %v", err)
	}
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)
}

func TestBinding_NoScope(t *testing.T) {
	_, err := binding.Lookup(context.Background(), "foo")
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)
}

func TestBinding_DelegatesToUpperScope(t *testing.T) {
	upperCtx := binding.WithBindings(context.Background(), map[string]any{
		"upper":  "delegated",
		"shadow": "upper",
	})
	lowerCtx := binding.WithBindings(upperCtx, map[string]any{
		"shadow": "lower",
	})

	v, err := binding.Get[string](lowerCtx, "upper")
	require.NoError(t, err)
	assert.Equal(t, "delegated", v)

	v, err = binding.Get[string](lowerCtx, "shadow")
	require.NoError(t, err)
	assert.Equal(t, "lower", v)

	// the upper scope is untouched
	v, err = binding.Get[string](upperCtx, "shadow")
	require.NoError(t, err)
	assert.Equal(t, "upper", v)
}

func TestBinding_MapIsCopied(t *testing.T) {
	m := map[string]any{"foo": 1}
	ctx := binding.WithBindings(context.Background(), m)
	m["foo"] = 2

	assert.Equal(t, 1, binding.MustGet[int](ctx, "foo"))
}

func TestBinding_TypedGetters(t *testing.T) {
	ctx := binding.WithBindings(context.Background(), map[string]any{
		"workers": 4,
	})

	_, err := binding.Get[string](ctx, "workers")
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	v, err := binding.GetOr(ctx, "missing", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = binding.GetOr(ctx, "workers", "x")
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	assert.Panics(t, func() {
		binding.MustGet[int](ctx, "missing")
	})
}
