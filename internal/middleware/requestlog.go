// File: internal/middleware/requestlog.go
package middleware

import (
	"log/slog"

	"nsleadprovider/internal/logging"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// InjectLogger 把帶有 request_id 的 logger 放進請求 context
// 必須掛在 echo RequestID middleware 之後
func InjectLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log := base.With("request_id", rid)
			c.SetRequest(req.WithContext(logging.WithContext(req.Context(), log)))
			return next(c)
		}
	}
}

// RequestLogger 每個請求完成後輸出一行結構化紀錄
func RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log := logging.FromContext(c.Request().Context())
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			switch {
			case v.Status >= 500:
				if v.Error != nil {
					attrs = append(attrs, "error", v.Error)
				}
				log.Error("request", attrs...)
			case v.Status >= 400:
				log.Warn("request", attrs...)
			default:
				log.Info("request", attrs...)
			}
			return nil
		},
	})
}

// Recover 攔下 handler panic，連同 stack 寫進 request logger 後回 500
func Recover() echo.MiddlewareFunc {
	return echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logging.FromContext(c.Request().Context()).Error("panic recovered", "error", err, "stack", string(stack))
			return err
		},
	})
}
