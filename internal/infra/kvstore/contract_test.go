//go:build unit || e2e

package kvstore_test

import (
	"context"
	"testing"

	"course-cart/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract checks the behaviour every backend must share.
func runContract(t *testing.T, kv shared.KeyValueStorage) {
	t.Helper()

	t.Run("absent key is not found", func(t *testing.T) {
		v, found, err := kv.Get(t.Context(), "profiles/nobody/shopping_cart")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		ctx := t.Context()
		require.NoError(t, kv.Set(ctx, "profiles/a/shopping_cart", `[{"id":1}]`))

		v, found, err := kv.Get(ctx, "profiles/a/shopping_cart")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":1}]`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		ctx := t.Context()
		require.NoError(t, kv.Set(ctx, "profiles/b/purchased_courses", `[]`))
		require.NoError(t, kv.Set(ctx, "profiles/b/purchased_courses", `[{"id":2}]`))

		v, _, err := kv.Get(ctx, "profiles/b/purchased_courses")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":2}]`, v)
	})

	t.Run("remove deletes and tolerates absence", func(t *testing.T) {
		ctx := t.Context()
		require.NoError(t, kv.Set(ctx, "profiles/c/shopping_cart", `[]`))
		require.NoError(t, kv.Remove(ctx, "profiles/c/shopping_cart"))
		require.NoError(t, kv.Remove(ctx, "profiles/c/shopping_cart"))

		_, found, err := kv.Get(ctx, "profiles/c/shopping_cart")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("keys are independent", func(t *testing.T) {
		ctx := t.Context()
		require.NoError(t, kv.Set(ctx, "profiles/d/shopping_cart", "cart"))
		require.NoError(t, kv.Set(ctx, "profiles/d/purchased_courses", "purchases"))
		require.NoError(t, kv.Remove(ctx, "profiles/d/shopping_cart"))

		v, found, err := kv.Get(ctx, "profiles/d/purchased_courses")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "purchases", v)
	})

	t.Run("canceled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, kv.Set(ctx, "profiles/e/shopping_cart", "x"))
	})
}
