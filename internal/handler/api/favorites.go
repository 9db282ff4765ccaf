package api

import (
	"net/http"

	reqdto "course-cart/internal/handler/dto/request"
	resdto "course-cart/internal/handler/dto/response"
	"course-cart/internal/handler/httperr"
	"course-cart/internal/handler/middleware"
	"course-cart/internal/usecase/commands"
	"course-cart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.CourseListResponse
// @Router /api/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	list, err := h.q.ListFavorites(c.Request.Context(), middleware.GetProfileID(c))
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

// @Summary Add favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body reqdto.CourseRequest true "Course"
// @Success 201 {object} resdto.ChangeResponse
// @Success 200 {object} resdto.ChangeResponse
// @Router /api/favorites [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req reqdto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entry := req.ToDomain()
	added, err := h.cmds.AddFavorite(c.Request.Context(), middleware.GetProfileID(c), entry)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.ChangeResponse{ID: entry.ID, Changed: added})
}

// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} resdto.ChangeResponse
// @Router /api/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}
	removed, err := h.cmds.RemoveFavorite(c.Request.Context(), middleware.GetProfileID(c), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ChangeResponse{ID: id, Changed: removed})
}
