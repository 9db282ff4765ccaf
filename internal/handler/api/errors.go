package api

import (
	"net/http"
	"strconv"

	"course-cart/internal/handler/httperr"
	"course-cart/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	fallbackRule = httperr.Rule{Status: http.StatusInternalServerError, Message: "Internal server error"}

	usecaseRules = []httperr.Rule{
		{Target: errs.ErrInvalidProfileID, Status: http.StatusBadRequest, Message: "Invalid profile id"},
		{Target: errs.ErrEmptyCart, Status: http.StatusConflict, Message: "Cart is empty"},
		{Target: errs.ErrInvalidPaymentMethod, Status: http.StatusBadRequest, Message: "Invalid payment method", WithDetail: true},
		{Target: errs.ErrInvalidPaymentDetails, Status: http.StatusUnprocessableEntity, Message: "Invalid payment details", WithDetail: true},
		{Target: errs.ErrCheckoutCanceled, Status: http.StatusRequestTimeout, Message: "Checkout canceled"},
	}
)

func abortWithUsecaseError(c *gin.Context, err error) {
	httperr.AbortWithRules(c, err, errs.Is, fallbackRule, usecaseRules...)
}

func parseCourseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	if id < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
