// File: internal/handler/catalog.go
package handler

import (
	"net/http"

	"nsleadprovider/internal/catalog"

	"github.com/labstack/echo/v4"
)

// ServicesHandler 回傳服務目錄
// @Summary     List services
// @Description 回傳可加入購物車的服務目錄
// @Tags        catalog
// @Produce     json
// @Success     200 {array} model.ServiceOffering
// @Router      /services [get]
func ServicesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, catalog.All())
	}
}
