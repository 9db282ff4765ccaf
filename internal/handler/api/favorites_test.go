//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"course-cart/internal/handler/api"
	resdto "course-cart/internal/handler/dto/response"
	"course-cart/internal/handler/middleware"
	"course-cart/internal/usecase/queries"
	"course-cart/tests/common/builder"
	"course-cart/tests/common/httptest"
	commandsmock "course-cart/tests/mock/commands"
	queriesmock "course-cart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFavoritesRouter(t *testing.T) (*gin.Engine, *commandsmock.MockFavoriteCommands, *queriesmock.MockFavoriteQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockFavoriteCommands(ctrl)
	q := queriesmock.NewMockFavoriteQueries(ctrl)
	h := api.NewFavoriteHandler(cmds, q)

	r := gin.New()
	g := r.Group("/api", middleware.RequireProfile())
	g.GET("/favorites", h.List)
	g.POST("/favorites", h.Add)
	g.DELETE("/favorites/:id", h.Remove)
	return r, cmds, q
}

func TestFavoriteHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, _, q := newFavoritesRouter(t)
		items := builder.Courses(2)
		q.EXPECT().ListFavorites(gomock.Any(), "default").Return(&queries.CourseListView{Items: items, Total: 2}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/favorites", nil, "")

		var body resdto.CourseListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, 2, body.Total)
	})

	t.Run("add then add again", func(t *testing.T) {
		r, cmds, _ := newFavoritesRouter(t)
		entry := builder.NewCourseBuilder().WithID(5).Build()
		gomock.InOrder(
			cmds.EXPECT().AddFavorite(gomock.Any(), "carol", entry).Return(true, nil),
			cmds.EXPECT().AddFavorite(gomock.Any(), "carol", entry).Return(false, nil),
		)

		first := httptest.PerformRequest(t, r, http.MethodPost, "/api/favorites", entry, "carol")
		second := httptest.PerformRequest(t, r, http.MethodPost, "/api/favorites", entry, "carol")

		require.Equal(t, http.StatusCreated, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
	})

	t.Run("remove rejects a bad id", func(t *testing.T) {
		r, _, _ := newFavoritesRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodDelete, "/api/favorites/x", nil, "carol")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid id")
	})
}
