// File: internal/middleware/ratelimit.go
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"nsleadprovider/internal/logging"

	"github.com/go-redis/redis_rate/v10"
	"github.com/labstack/echo/v4"
)

// Limiter 由 *redis_rate.Limiter 實作
type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit 以來源 IP 為單位限制每分鐘請求數
// limiter 為 nil 或 perMinute <= 0 時不限制；Redis 錯誤時放行
func RateLimit(limiter Limiter, perMinute int, prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil || perMinute <= 0 {
			return next
		}
		limit := redis_rate.PerMinute(perMinute)
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + prefix + ":" + c.RealIP()

			res, err := limiter.Allow(ctx, key, limit)
			if err != nil {
				logging.FromContext(ctx).Warn("rate limiter unavailable", "key", key, "error", err)
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if res.Allowed == 0 {
				h.Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
