package api

import (
	"net/http"
	"strconv"

	reqdto "course-cart/internal/handler/dto/request"
	resdto "course-cart/internal/handler/dto/response"
	"course-cart/internal/handler/httperr"
	"course-cart/internal/handler/middleware"
	"course-cart/internal/usecase/commands"
	"course-cart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description List cart entries with item count and total price
// @Tags cart
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.q.GetCart(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromCartView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add cart item
// @Description Add a course to the cart; an id already in the cart is left unchanged
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CourseRequest true "Course"
// @Success 201 {object} resdto.ChangeResponse
// @Success 200 {object} resdto.ChangeResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entry := req.ToDomain()
	added, err := h.cmds.AddItem(c.Request.Context(), middleware.GetProfileID(c), entry)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
		c.Header("Location", "/api/cart/items/"+strconv.Itoa(entry.ID))
	}
	c.JSON(status, resdto.ChangeResponse{ID: entry.ID, Changed: added})
}

// @Summary Check cart item
// @Tags cart
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} resdto.InCartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{id} [get]
func (h *CartHandler) GetItem(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}
	in, err := h.q.IsInCart(c.Request.Context(), middleware.GetProfileID(c), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.InCartResponse{ID: id, InCart: in})
}

// @Summary Update cart item quantity
// @Description A quantity below 1 removes the item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body reqdto.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} resdto.ChangeResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	changed, err := h.cmds.UpdateItemQuantity(c.Request.Context(), middleware.GetProfileID(c), id, *req.Quantity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ChangeResponse{ID: id, Changed: changed})
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} resdto.ChangeResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}
	removed, err := h.cmds.RemoveItem(c.Request.Context(), middleware.GetProfileID(c), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ChangeResponse{ID: id, Changed: removed})
}

// @Summary Clear cart
// @Tags cart
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cmds.ClearCart(c.Request.Context(), middleware.GetProfileID(c)); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
