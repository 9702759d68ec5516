// File: internal/handler/respond.go
package handler

import (
	"net/http"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/apperr"
	"nsleadprovider/internal/logging"

	"github.com/labstack/echo/v4"
)

const msgInternal = "internal server error"

// RespondError 依錯誤分類回傳 {message}；5xx 的原始錯誤只寫入伺服器日誌
func RespondError(c echo.Context, err error) error {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)
	msg := apperr.MessageOf(err)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("request failed",
			"kind", kind.String(),
			"path", c.Path(),
			"error", err,
		)
		if kind != apperr.KindPersistence || msg == "" {
			msg = msgInternal
		}
	}
	return c.JSON(status, api.ErrorResponse{Message: msg})
}
