//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"course-cart/internal/domain/course"
	"course-cart/internal/handler/api"
	resdto "course-cart/internal/handler/dto/response"
	"course-cart/internal/handler/middleware"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase/queries"
	"course-cart/tests/common/builder"
	"course-cart/tests/common/httptest"
	"course-cart/tests/common/testutil"
	commandsmock "course-cart/tests/mock/commands"
	queriesmock "course-cart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api", middleware.RequireProfile())
	g.GET("/cart", s.handler.GetCart)
	g.DELETE("/cart", s.handler.ClearCart)
	g.POST("/cart/items", s.handler.AddItem)
	g.GET("/cart/items/:id", s.handler.GetItem)
	g.PATCH("/cart/items/:id", s.handler.UpdateQuantity)
	g.DELETE("/cart/items/:id", s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

type testCaseCart struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestGetCart
// ================================================================================

func (s *CartHandlerTestSuite) TestGetCart() {
	view := &queries.CartView{
		Items: []course.Course{
			builder.NewCourseBuilder().WithID(1).WithPrice("300,000 so'm/oy").Build(),
			builder.NewCourseBuilder().WithID(2).WithPrice("450,000 so'm/oy").Build(),
		},
		TotalItems:        2,
		TotalPrice:        750000,
		TotalPriceDisplay: "750,000 so'm",
	}

	s.Run("success: returns items and totals", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), "alice").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "alice")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.TotalItems)
		s.Equal(int64(750000), body.TotalPrice)
		s.Equal("750,000 so'm", body.TotalPriceDisplay)
		s.Len(body.Items, 2)
	})

	s.Run("success: missing header uses the default profile", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), "default").Return(&queries.CartView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["items"])
	})

	s.Run("error: 400 for a malformed profile header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "not/valid")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid profile id")
	})

	s.Run("error: 500 hides unexpected failures", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "alice")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "boom")
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"
	reqBody := builder.NewCourseBuilder().WithID(7).WithTitle("Go").Build()

	s.Run("success: 201 Created when the item is new", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), "alice", reqBody).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "alice")

		var body resdto.ChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.ChangeResponse{ID: 7, Changed: true}, body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/cart/items/7"})
	})

	s.Run("success: 200 OK when the id is already in the cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), "alice", gomock.Any()).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "alice")

		var body resdto.ChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Changed)
		s.Empty(rec.Header().Get("Location"))
	})

	cases := []testCaseCart{
		{name: "missing field: id", mutate: testutil.Field("id", nil), expectCode: http.StatusBadRequest},
		{name: "id boundary invalid (0)", mutate: testutil.Field("id", 0), expectCode: http.StatusBadRequest},
		{name: "id of wrong type", mutate: testutil.Field("id", "seven"), expectCode: http.StatusBadRequest},
		{name: "title too long", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "title boundary OK (200 chars)", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "only id is required", mutate: testutil.Only("id"), expectCode: http.StatusCreated},
	}

	s.Run("validation", func() {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "alice")

				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 for malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"id":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestItemRoutes
// ================================================================================

func (s *CartHandlerTestSuite) TestGetItem() {
	s.Run("success: reports membership", func() {
		s.mockQueries.EXPECT().IsInCart(gomock.Any(), "alice", 3).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart/items/3", nil, "alice")

		var body resdto.InCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.InCartResponse{ID: 3, InCart: true}, body)
	})

	for _, bad := range []string{"abc", "0", "-4"} {
		s.Run("error: 400 for id "+bad, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart/items/"+bad, nil, "alice")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		})
	}
}

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	s.Run("success: forwards any integer quantity", func() {
		for _, q := range []int{3, 0, -1} {
			s.mockCommands.EXPECT().UpdateItemQuantity(gomock.Any(), "alice", 5, q).Return(true, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/cart/items/5", map[string]any{"quantity": q}, "alice")

			var body resdto.ChangeResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.True(body.Changed)
		}
	})

	s.Run("error: 400 when quantity is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/cart/items/5", map[string]any{}, "alice")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.Run("success: unknown id is not an error", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), "alice", 99).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/99", nil, "alice")

		var body resdto.ChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.ChangeResponse{ID: 99, Changed: false}, body)
	})
}

func (s *CartHandlerTestSuite) TestClearCart() {
	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().ClearCart(gomock.Any(), "alice").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "alice")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: profile errors map to 400", func() {
		s.mockCommands.EXPECT().ClearCart(gomock.Any(), "alice").Return(errs.Mark(errors.New("bad"), errs.ErrInvalidProfileID)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "alice")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid profile id")
	})
}
