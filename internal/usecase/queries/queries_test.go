//go:build unit

package queries_test

import (
	"io"
	"log/slog"
	"testing"

	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase"
	"course-cart/internal/usecase/queries"
	"course-cart/tests/common/builder"
	"course-cart/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *usecase.SessionRegistry {
	return usecase.NewSessionRegistry(storetest.NewFactory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCartQueries(t *testing.T) {
	reg := newRegistry()
	s, err := reg.Open(t.Context(), "alice")
	require.NoError(t, err)
	s.Cart.AddItem(t.Context(), builder.NewCourseBuilder().WithID(1).WithPrice("300,000 so'm/oy").Build())
	s.Cart.AddItem(t.Context(), builder.NewCourseBuilder().WithID(2).WithPrice("450,000 so'm/oy").Build())
	q := queries.NewCartQueries(reg)

	view, err := q.GetCart(t.Context(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, int64(750000), view.TotalPrice)
	assert.Equal(t, "750,000 so'm", view.TotalPriceDisplay)
	assert.Len(t, view.Items, 2)

	in, err := q.IsInCart(t.Context(), "alice", 2)
	require.NoError(t, err)
	assert.True(t, in)

	_, err = q.GetCart(t.Context(), "")
	assert.True(t, errs.Is(err, errs.ErrInvalidProfileID))
}

func TestPurchaseQueries(t *testing.T) {
	reg := newRegistry()
	s, err := reg.Open(t.Context(), "bob")
	require.NoError(t, err)
	s.Purchases.AddPurchasedCourse(t.Context(), builder.NewCourseBuilder().WithID(9).Build())
	q := queries.NewPurchaseQueries(reg)

	list, err := q.ListPurchases(t.Context(), "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	owned, err := q.IsPurchased(t.Context(), "bob", 9)
	require.NoError(t, err)
	assert.True(t, owned)
}

func TestFavoriteQueries(t *testing.T) {
	reg := newRegistry()
	s, err := reg.Open(t.Context(), "carol")
	require.NoError(t, err)
	s.Favorites.Add(builder.NewCourseBuilder().WithID(4).Build())

	list, err := queries.NewFavoriteQueries(reg).ListFavorites(t.Context(), "carol")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 4, list.Items[0].ID)
}
