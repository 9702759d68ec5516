// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"nsleadprovider/internal/logging"
	"nsleadprovider/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

type identityKey struct{}

// WithIdentity 將已驗證的身分放進 context，只在該請求內有效
func WithIdentity(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, identityKey{}, claims)
}

// IdentityFromContext 取出 WithIdentity 放入的身分
func IdentityFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(identityKey{}).(*service.Claims)
	return claims, ok && claims != nil
}

// TokenVerifier 由 service.TokenManager 實作
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

func extractClaims(c echo.Context, tokens TokenVerifier) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

// attach 將身分放入 echo context，並讓該請求的 logger 帶上 user_id
func attach(c echo.Context, claims *service.Claims) {
	c.Set(ContextUserKey, claims)
	req := c.Request()
	log := logging.FromContext(req.Context()).With("user_id", claims.UserID)
	ctx := WithIdentity(logging.WithContext(req.Context(), log), claims)
	c.SetRequest(req.WithContext(ctx))
}

func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			attach(c, claims)
			return next(c)
		}
	}
}

// RequireAdmin 只放行 admin；缺少、無效或非 admin 的 token 一律 403
func RequireAdmin(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil || !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			attach(c, claims)
			return next(c)
		}
	}
}

// OptionalAuth 在 token 有效時附上身分，無效或缺少時照常放行
func OptionalAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := extractClaims(c, tokens); err == nil {
				attach(c, claims)
			}
			return next(c)
		}
	}
}

// CurrentClaims 取出 RequireAuth / OptionalAuth 放入的身分
func CurrentClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}
