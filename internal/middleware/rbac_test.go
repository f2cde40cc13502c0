package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestRequireRole(t *testing.T) {
	t.Parallel()

	gated := func(invoked *atomic.Bool) *gin.Engine {
		r := gin.New()
		r.POST("/write", RequireAuth(newAuthService()), RequireRole(model.RoleTeacher), func(c *gin.Context) {
			invoked.Store(true)
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	call := func(t *testing.T, r *gin.Engine, role string) *httptest.ResponseRecorder {
		t.Helper()
		tokenStr := signToken(t, testSecret, jwt.MapClaims{
			"role": role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodPost, "/write", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("teacher role is allowed", func(t *testing.T) {
		t.Parallel()
		var invoked atomic.Bool
		w := call(t, gated(&invoked), "teacher")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if !invoked.Load() {
			t.Error("handler was not invoked")
		}
	})

	t.Run("other role is forbidden and handler never runs", func(t *testing.T) {
		t.Parallel()
		var invoked atomic.Bool
		w := call(t, gated(&invoked), "student")
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Access denied. Only teachers can perform this operation." {
			t.Errorf("unexpected message: %v", body["message"])
		}
		if invoked.Load() {
			t.Error("handler ran despite failed role check")
		}
	})

	t.Run("role comparison is case-sensitive", func(t *testing.T) {
		t.Parallel()
		var invoked atomic.Bool
		w := call(t, gated(&invoked), "Teacher")
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		if invoked.Load() {
			t.Error("handler ran despite failed role check")
		}
	})
}
