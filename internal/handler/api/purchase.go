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

type PurchaseHandler struct {
	cmds commands.PurchaseCommands
	q    queries.PurchaseQueries
}

func NewPurchaseHandler(cmds commands.PurchaseCommands, q queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, q: q}
}

// @Summary List purchased courses
// @Tags purchases
// @Produce json
// @Success 200 {object} resdto.CourseListResponse
// @Router /api/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	list, err := h.q.ListPurchases(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromCourseList(list)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Purchase course
// @Description Record a purchased course and drop it from the cart
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.CourseRequest true "Course"
// @Success 201 {object} resdto.ChangeResponse
// @Success 200 {object} resdto.ChangeResponse
// @Failure 400 {object} httperr.Response
// @Router /api/purchases [post]
func (h *PurchaseHandler) Add(c *gin.Context) {
	var req reqdto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entry := req.ToDomain()
	added, err := h.cmds.AddPurchasedCourse(c.Request.Context(), middleware.GetProfileID(c), entry)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
		c.Header("Location", "/api/purchases/"+strconv.Itoa(entry.ID))
	}
	c.JSON(status, resdto.ChangeResponse{ID: entry.ID, Changed: added})
}

// @Summary Check purchase
// @Tags purchases
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} resdto.PurchasedResponse
// @Router /api/purchases/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}
	owned, err := h.q.IsPurchased(c.Request.Context(), middleware.GetProfileID(c), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PurchasedResponse{ID: id, Purchased: owned})
}

// @Summary Remove purchased course
// @Description The course is not returned to the cart
// @Tags purchases
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} resdto.ChangeResponse
// @Router /api/purchases/{id} [delete]
func (h *PurchaseHandler) Remove(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}
	removed, err := h.cmds.RemovePurchasedCourse(c.Request.Context(), middleware.GetProfileID(c), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ChangeResponse{ID: id, Changed: removed})
}
