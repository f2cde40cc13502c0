package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/campusdesk/coursehub-backend/internal/config"
	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers malformed tokens, bad signatures, and unexpected
// signing methods. Expired tokens get their own error type because the
// response carries the expiry timestamp.
var ErrTokenInvalid = errors.New("invalid token")

// TokenExpiredError reports that a token's exp claim is in the past.
type TokenExpiredError struct {
	ExpiredAt time.Time
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("token expired at %s", e.ExpiredAt.Format(time.RFC3339))
}

// AuthService verifies access tokens against the shared secret.
// It does not issue tokens; issuance belongs to the identity provider
// holding the same secret.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// VerifyToken parses and validates a bearer token, returning the decoded
// claims. The issuer's payload comes back unchanged: role in Claims.Role,
// every other field in Claims.Extra.
func (s *AuthService) VerifyToken(tokenStr string) (*model.Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.AccessTokenSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &TokenExpiredError{ExpiredAt: expiryOf(token)}
		}
		return nil, ErrTokenInvalid
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims := &model.Claims{Extra: make(map[string]any, len(mc))}
	for k, v := range mc {
		if k == "role" {
			if role, isStr := v.(string); isStr {
				claims.Role = role
			}
			continue
		}
		claims.Extra[k] = v
	}
	return claims, nil
}

// expiryOf extracts the exp claim from an already-decoded (but invalid)
// token so the client can display when it expired.
func expiryOf(token *jwt.Token) time.Time {
	if token == nil {
		return time.Time{}
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}
	}
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
