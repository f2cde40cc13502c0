package handler

import (
	"net/http"

	"github.com/campusdesk/coursehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the public welcome route and the identity echo.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Welcome godoc
// GET /
func (h *AuthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the CourseHub API!"})
}

// Protected godoc
// GET /protected
// Echoes the verified token claims back to the caller. Any role.
func (h *AuthHandler) Protected(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the protected route!",
		"user":    claims,
	})
}
