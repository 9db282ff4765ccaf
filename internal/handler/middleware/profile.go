package middleware

import (
	"net/http"
	"strings"

	"course-cart/internal/handler/httperr"
	"course-cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ProfileHeader = "X-Profile-ID"
	profileIDKey  = "profile_id"
)

// RequireProfile resolves the profile a request acts on. A missing header
// means the default profile.
func RequireProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ProfileHeader))
		if id == "" {
			id = usecase.DefaultProfileID
		}
		if err := usecase.ValidateProfileID(id); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile id", nil)
			return
		}
		c.Set(profileIDKey, id)
		c.Next()
	}
}

func GetProfileID(c *gin.Context) string {
	return c.GetString(profileIDKey)
}
