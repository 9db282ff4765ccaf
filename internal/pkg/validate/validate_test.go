//go:build unit

package validate_test

import (
	"testing"

	"course-cart/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Phone string `validate:"required,e164"`
}

func TestCheck(t *testing.T) {
	require.NoError(t, validate.Check(sample{Name: "Ali", Phone: "+998901234567"}))

	err := validate.Check(sample{Phone: "+998901234567"})
	require.Error(t, err)
	assert.Equal(t, "Name is a required field", err.Error())

	err = validate.Check(sample{Name: "Ali", Phone: "90 123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phone")
}
