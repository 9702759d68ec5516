package handler

import (
	"net/http"

	"nsleadprovider/internal/middleware"

	"github.com/labstack/echo/v4"
)

// CurrentUserID 取出 RequireAuth 驗證過的使用者 id
func CurrentUserID(c echo.Context) (int, error) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return claims.UserID, nil
}
