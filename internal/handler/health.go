// File: internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/logging"

	"github.com/labstack/echo/v4"
)

// PingFunc 將依賴的健康檢查包成單一函式
type PingFunc func(ctx context.Context) error

const healthTimeout = 2 * time.Second

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 預設只回報服務存活；deep=1 時另外檢查 Postgres 與 Redis
// @Tags        health
// @Produce     json
// @Param       deep query string false "設為 1 以檢查依賴"
// @Success     200 {object} api.HealthResponse
// @Failure     503 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(checks map[string]PingFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.QueryParam("deep") != "1" {
			return c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		resp := api.HealthResponse{Status: "ok", Checks: map[string]string{}}
		status := http.StatusOK
		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				logging.FromContext(ctx).Warn("health check failed", "dependency", name, "error", err)
				resp.Checks[name] = "down"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "up"
		}
		return c.JSON(status, resp)
	}
}
