//go:build unit

package kvstore_test

import (
	"testing"

	"course-cart/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	runContract(t, kvstore.NewMemory())
}

func TestMemory_Keys(t *testing.T) {
	m := kvstore.NewMemory()
	require.NoError(t, m.Set(t.Context(), "b", "2"))
	require.NoError(t, m.Set(t.Context(), "a", "1"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
}
