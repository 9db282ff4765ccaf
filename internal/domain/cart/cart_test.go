//go:build unit

package cart_test

import (
	"testing"

	"course-cart/internal/domain/cart"
	"course-cart/internal/domain/course"

	"github.com/stretchr/testify/assert"
)

func TestCart_TotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		items []course.Course
		want  int64
	}{
		{name: "empty cart", want: 0},
		{
			name: "mixed formats",
			items: []course.Course{
				{ID: 1, Price: "300,000 so'm/oy"},
				{ID: 2, Price: "450000 so'm/oy"},
			},
			want: 750000,
		},
		{
			name: "price without digits counts as zero",
			items: []course.Course{
				{ID: 1, Price: "Bepul"},
				{ID: 2, Price: "200,000 so'm/oy"},
			},
			want: 200000,
		},
		{
			name: "quantity does not multiply",
			items: []course.Course{
				{ID: 1, Price: "100", Quantity: 3},
			},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cart.New(tt.items...).TotalPrice())
		})
	}
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("positive quantity decorates the entry", func(t *testing.T) {
		c := cart.New(course.Course{ID: 1, Title: "Go"})

		assert.True(t, c.SetQuantity(1, 2))
		got, ok := c.Get(1)
		assert.True(t, ok)
		assert.Equal(t, 2, got.Quantity)
		assert.Equal(t, "Go", got.Title)
	})

	t.Run("same quantity is not a change", func(t *testing.T) {
		c := cart.New(course.Course{ID: 1, Quantity: 2})

		assert.False(t, c.SetQuantity(1, 2))
	})

	t.Run("quantity below one removes", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			c := cart.New(course.Course{ID: 1})

			assert.True(t, c.SetQuantity(1, q))
			assert.False(t, c.Has(1))
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		c := cart.New(course.Course{ID: 1})

		assert.False(t, c.SetQuantity(2, 5))
		assert.False(t, c.SetQuantity(2, 0))
		assert.Equal(t, 1, c.Len())
	})
}
