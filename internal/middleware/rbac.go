package middleware

import (
	"net/http"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/campusdesk/coursehub-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// RequireRole checks that the verified claims carry exactly the given role.
// No hierarchy: a request either has the role or it is forbidden.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortError(c, http.StatusUnauthorized, response.MsgTokenRequired)
			return
		}

		if !claims.HasRole(role) {
			response.AbortError(c, http.StatusForbidden, denyMessage(role))
			return
		}

		c.Next()
	}
}

func denyMessage(role string) string {
	if role == model.RoleTeacher {
		return response.MsgTeacherOnly
	}
	return response.MsgAccessDenied
}
