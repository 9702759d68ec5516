// File: internal/handler/cart/cart.go
package cart

import (
	"context"
	"net/http"
	"strconv"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/handler"
	"nsleadprovider/internal/model"

	"github.com/labstack/echo/v4"
)

// Cart 由 service.CartService 實作
type Cart interface {
	Add(ctx context.Context, userID, serviceID int) ([]model.ServiceOffering, error)
	Remove(ctx context.Context, userID, serviceID int) ([]model.ServiceOffering, error)
	List(ctx context.Context, userID int) ([]model.ServiceOffering, error)
}

// ListHandler 取得目前使用者的購物車
// @Summary     取得購物車
// @Tags        cart
// @Produce     json
// @Success     200 {array}  model.ServiceOffering
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cart [get]
func ListHandler(cart Cart) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.CurrentUserID(c)
		if err != nil {
			return err
		}
		items, err := cart.List(c.Request().Context(), userID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

// AddHandler 加入服務，重複加入不視為錯誤
// @Summary     加入購物車
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       body body api.CartRequest true "服務 id"
// @Success     201 {array}  model.ServiceOffering
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cart [post]
func AddHandler(cart Cart) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.CurrentUserID(c)
		if err != nil {
			return err
		}
		var req api.CartRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "serviceId is required"})
		}

		items, err := cart.Add(c.Request().Context(), userID, req.ServiceID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, items)
	}
}

// RemoveHandler 移除服務，移除不存在的項目不視為錯誤
// @Summary     移除購物車項目
// @Tags        cart
// @Produce     json
// @Param       serviceId path int true "服務 id"
// @Success     200 {array}  model.ServiceOffering
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cart/{serviceId} [delete]
func RemoveHandler(cart Cart) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.CurrentUserID(c)
		if err != nil {
			return err
		}
		serviceID, err := strconv.Atoi(c.Param("serviceId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid service id"})
		}

		items, err := cart.Remove(c.Request().Context(), userID, serviceID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}
