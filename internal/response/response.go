package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Body is the error envelope: a human-readable message plus optional detail.
// Detail never contains secrets or stack traces.
type Body struct {
	Message string `json:"message"`
	Detail  any    `json:"error,omitempty"`
}

// TokenExpiredBody is the structured 401 body for expired tokens, carrying
// the expiry timestamp for client-side display.
type TokenExpiredBody struct {
	TokenExpired bool      `json:"tokenExpired"`
	Message      string    `json:"message"`
	ExpiredAt    time.Time `json:"expiredAt"`
}

// Error sends an error response with a message only.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Message: message})
}

// ErrorWithDetail sends an error response with a message and detail payload,
// e.g. field-level validation errors.
func ErrorWithDetail(c *gin.Context, statusCode int, message string, detail any) {
	c.JSON(statusCode, Body{Message: message, Detail: detail})
}

// AbortError aborts the middleware chain and sends an error response.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Body{Message: message})
}

// AbortTokenExpired aborts the chain with the expired-token body.
func AbortTokenExpired(c *gin.Context, expiredAt time.Time) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, TokenExpiredBody{
		TokenExpired: true,
		Message:      MsgTokenExpired,
		ExpiredAt:    expiredAt,
	})
}
