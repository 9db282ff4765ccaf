//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"course-cart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "nothing"))

	base := errs.New("boom")
	wrapped := errs.Wrap(base, "loading cart")
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "loading cart")
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrEmptyCart, errs.Mark(nil, errs.ErrEmptyCart))
	})

	t.Run("marked error matches both", func(t *testing.T) {
		cause := errors.New("quantity must be positive")
		err := errs.Mark(cause, errs.ErrDomainValidation)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Equal(t, "quantity must be positive", err.Error())
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "boom", lines[0])
}
