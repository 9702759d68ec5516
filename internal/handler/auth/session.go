// File: internal/handler/auth/session.go
package auth

import (
	"net/http"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/middleware"

	"github.com/labstack/echo/v4"
)

// SessionHandler 回報目前 token 是否有效，永遠回 200
// 需搭配 middleware.OptionalAuth
// @Summary     Session probe
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.SessionResponse
// @Security    ApiKeyAuth
// @Router      /session [get]
func SessionHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusOK, api.SessionResponse{LoggedIn: false})
		}
		return c.JSON(http.StatusOK, api.SessionResponse{
			LoggedIn: true,
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     string(claims.Role),
		})
	}
}
