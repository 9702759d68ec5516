// File: internal/handler/orders/orders.go
package orders

import (
	"context"
	"net/http"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/handler"
	"nsleadprovider/internal/model"

	"github.com/labstack/echo/v4"
)

// Orders 由 service.OrderService 實作
type Orders interface {
	Checkout(ctx context.Context, userID int, requested []int) (*model.Order, error)
	ListForUser(ctx context.Context, userID int) ([]model.Order, error)
}

// ListHandler 取得自己的訂單，新的在前
// @Summary     我的訂單
// @Tags        orders
// @Produce     json
// @Success     200 {array}  model.Order
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [get]
func ListHandler(orders Orders) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.CurrentUserID(c)
		if err != nil {
			return err
		}
		list, err := orders.ListForUser(c.Request().Context(), userID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// CheckoutHandler 將購物車轉為 pending 訂單
// @Summary     結帳
// @Description body 帶 items 時以前端購物車結帳，否則使用伺服器端購物車
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body api.CheckoutRequest false "前端購物車"
// @Success     201 {object} api.CheckoutResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [post]
func CheckoutHandler(orders Orders) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.CurrentUserID(c)
		if err != nil {
			return err
		}
		var req api.CheckoutRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		order, err := orders.Checkout(c.Request().Context(), userID, req.ServiceIDs())
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.CheckoutResponse{
			Message: "Order placed successfully",
			OrderID: order.ID,
		})
	}
}
