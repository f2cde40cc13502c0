package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/campusdesk/coursehub-backend/internal/response"
	"github.com/campusdesk/coursehub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyClaims is the Gin context key for verified token claims.
	ContextKeyClaims = "claims"
)

// RequireAuth verifies the bearer token from the Authorization header and
// stores the decoded claims in the context. Failure classification:
// missing token 401, expired token 401 with the expiry timestamp,
// anything else 403.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, response.MsgTokenRequired)
			return
		}

		claims, err := authService.VerifyToken(tokenStr)
		if err != nil {
			var expired *service.TokenExpiredError
			if errors.As(err, &expired) {
				response.AbortTokenExpired(c, expired.ExpiredAt)
				return
			}
			response.AbortError(c, http.StatusForbidden, response.MsgTokenInvalid)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the verified claims from the Gin context.
func GetClaims(c *gin.Context) *model.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*model.Claims)
	if !ok {
		return nil
	}
	return claims
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
