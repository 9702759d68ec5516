// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/handler"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立帳號並回傳 token
// @Summary     註冊
// @Description 以 email 與密碼註冊一般使用者，成功即回傳 session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgMissingFields})
		}

		res, err := auth.Register(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.AuthResponse{
			Message: "User registered successfully",
			Token:   res.Token,
		})
	}
}
