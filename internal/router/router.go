package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/campusdesk/coursehub-backend/internal/config"
	"github.com/campusdesk/coursehub-backend/internal/handler"
	"github.com/campusdesk/coursehub-backend/internal/middleware"
	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/campusdesk/coursehub-backend/internal/response"
	"github.com/campusdesk/coursehub-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Course     *handler.CourseHandler
	ClassTest  *handler.ClassTestHandler
	Assignment *handler.AssignmentHandler
}

// Route is one entry of the declarative route table.
type Route struct {
	Method string
	Path   string
	// Public routes skip authentication entirely.
	Public bool
	// Role is required beyond authentication; empty means any verified
	// identity may call the route.
	Role    string
	Handler gin.HandlerFunc
}

// Routes returns the full route table. Every exposed operation lives here so
// the table can be validated at startup.
func Routes(h *Handlers) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Public: true, Handler: h.Auth.Welcome},
		{Method: http.MethodGet, Path: "/health", Public: true, Handler: health},
		{Method: http.MethodGet, Path: "/protected", Handler: h.Auth.Protected},

		{Method: http.MethodGet, Path: "/courses", Handler: h.Course.List},
		{Method: http.MethodPost, Path: "/courses", Role: model.RoleTeacher, Handler: h.Course.Create},
		{Method: http.MethodPut, Path: "/courses/:id", Role: model.RoleTeacher, Handler: h.Course.Update},
		{Method: http.MethodDelete, Path: "/courses/:id", Role: model.RoleTeacher, Handler: h.Course.Delete},

		{Method: http.MethodGet, Path: "/class-tests", Handler: h.ClassTest.ListAll},
		{Method: http.MethodGet, Path: "/class-tests/:courseId", Handler: h.ClassTest.ListByCourse},
		{Method: http.MethodPost, Path: "/class-tests", Role: model.RoleTeacher, Handler: h.ClassTest.Create},

		{Method: http.MethodGet, Path: "/assignments/:courseId", Handler: h.Assignment.ListByCourse},
		{Method: http.MethodPost, Path: "/assignments", Role: model.RoleTeacher, Handler: h.Assignment.Create},
	}
}

// ValidateRoutes rejects tables with duplicate entries, missing handlers, or
// unknown roles, so a broken table fails at startup instead of at request time.
func ValidateRoutes(routes []Route) error {
	seen := make(map[string]struct{}, len(routes))
	for _, rt := range routes {
		key := rt.Method + " " + rt.Path
		if rt.Handler == nil {
			return fmt.Errorf("route %s has no handler", key)
		}
		if rt.Public && rt.Role != "" {
			return fmt.Errorf("route %s is public but requires role %q", key, rt.Role)
		}
		if rt.Role != "" && rt.Role != model.RoleTeacher {
			return fmt.Errorf("route %s requires unknown role %q", key, rt.Role)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate route %s", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Setup validates the route table and configures the Gin engine with the
// middleware chain: CORS and request IDs globally, then per route
// authentication, write rate limiting, and the role gate.
func Setup(authService *service.AuthService, handlers *Handlers, cfg *config.Config) (*gin.Engine, error) {
	routes := Routes(handlers)
	if err := ValidateRoutes(routes); err != nil {
		return nil, fmt.Errorf("route table: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	requireAuth := middleware.RequireAuth(authService)
	writeLimiter := middleware.NewRateLimiter(cfg.WriteRatePerMin, time.Minute)

	for _, rt := range routes {
		chain := make([]gin.HandlerFunc, 0, 4)
		if !rt.Public {
			chain = append(chain, requireAuth)
		}
		if rt.Method != http.MethodGet {
			chain = append(chain, writeLimiter.Middleware())
		}
		if rt.Role != "" {
			chain = append(chain, middleware.RequireRole(rt.Role))
		}
		chain = append(chain, rt.Handler)
		router.Handle(rt.Method, rt.Path, chain...)
	}

	return router, nil
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
