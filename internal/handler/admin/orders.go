// File: internal/handler/admin/orders.go
package admin

import (
	"context"
	"net/http"
	"strconv"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/handler"
	"nsleadprovider/internal/model"

	"github.com/labstack/echo/v4"
)

// Reviewer 由 service.OrderService 實作
type Reviewer interface {
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*model.Order, error)
}

// ListOrdersHandler 管理員取得所有訂單
// @Summary     所有訂單
// @Tags        admin
// @Produce     json
// @Success     200 {array}  model.Order
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/orders [get]
func ListOrdersHandler(r Reviewer) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := r.ListAll(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// UpdateOrderStatusHandler 管理員核准或退回訂單
// @Summary     更新訂單狀態
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       orderId path int                     true "訂單 id"
// @Param       body    body api.UpdateStatusRequest true "approved 或 rejected"
// @Success     200 {object} api.UpdateOrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/orders/{orderId} [put]
func UpdateOrderStatusHandler(r Reviewer) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order id"})
		}
		var req api.UpdateStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		order, err := r.UpdateStatus(c.Request().Context(), orderID, req.Status)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.UpdateOrderResponse{Order: order})
	}
}
