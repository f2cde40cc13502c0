package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campusdesk/coursehub-backend/internal/config"
	"github.com/campusdesk/coursehub-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "middleware-test-secret"

func newAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{AccessTokenSecret: testSecret})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// probeRouter wires RequireAuth in front of a handler that echoes the role
// from the stored claims.
func probeRouter() *gin.Engine {
	r := gin.New()
	r.GET("/probe", RequireAuth(newAuthService()), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	return r
}

func doProbe(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	probeRouter().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("missing header is 401 Token required", func(t *testing.T) {
		t.Parallel()
		w := doProbe(t, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Token required" {
			t.Errorf("message = %v, want Token required", body["message"])
		}
	})

	t.Run("non-bearer header is 401 Token required", func(t *testing.T) {
		t.Parallel()
		w := doProbe(t, "Basic dXNlcjpwYXNz")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Token required" {
			t.Errorf("message = %v, want Token required", body["message"])
		}
	})

	t.Run("garbage token is 403 Invalid token", func(t *testing.T) {
		t.Parallel()
		w := doProbe(t, "Bearer definitely-not-a-jwt")
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Invalid token" {
			t.Errorf("message = %v, want Invalid token", body["message"])
		}
	})

	t.Run("token from another secret is 403", func(t *testing.T) {
		t.Parallel()
		tokenStr := signToken(t, "rogue-secret", jwt.MapClaims{
			"role": "teacher",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		w := doProbe(t, "Bearer "+tokenStr)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("expired token is 401 with structured body", func(t *testing.T) {
		t.Parallel()
		expiredAt := time.Now().Add(-30 * time.Minute).Truncate(time.Second)
		tokenStr := signToken(t, testSecret, jwt.MapClaims{
			"role": "student",
			"exp":  expiredAt.Unix(),
		})

		w := doProbe(t, "Bearer "+tokenStr)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}

		var body struct {
			TokenExpired bool      `json:"tokenExpired"`
			Message      string    `json:"message"`
			ExpiredAt    time.Time `json:"expiredAt"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if !body.TokenExpired {
			t.Error("tokenExpired = false, want true")
		}
		if body.Message != "Token expired" {
			t.Errorf("message = %q, want Token expired", body.Message)
		}
		if body.ExpiredAt.Unix() != expiredAt.Unix() {
			t.Errorf("expiredAt = %v, want %v", body.ExpiredAt, expiredAt)
		}
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		t.Parallel()
		tokenStr := signToken(t, testSecret, jwt.MapClaims{
			"role": "student",
			"uid":  "u-7",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		w := doProbe(t, "Bearer "+tokenStr)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["role"] != "student" {
			t.Errorf("role = %v, want student", body["role"])
		}
	})
}

func TestGetClaimsWithoutMiddleware(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if claims := GetClaims(c); claims != nil {
		t.Errorf("GetClaims() = %v, want nil", claims)
	}
}
