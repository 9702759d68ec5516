// File: internal/router/router.go
package router

import (
	"log/slog"
	"net/http"

	"nsleadprovider/internal/handler"
	"nsleadprovider/internal/handler/admin"
	"nsleadprovider/internal/handler/auth"
	"nsleadprovider/internal/handler/cart"
	"nsleadprovider/internal/handler/orders"
	"nsleadprovider/internal/metrics"
	"nsleadprovider/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps 是路由所需的所有依賴
type Deps struct {
	Logger *slog.Logger
	Tokens middleware.TokenVerifier
	Auth   auth.Authenticator
	Cart   cart.Cart
	Orders orders.Orders
	Admin  admin.Reviewer

	// Limiter 為 nil 時登入/註冊不限流
	Limiter            middleware.Limiter
	RateLimitPerMinute int

	Health         map[string]handler.PingFunc
	AllowedOrigins []string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.InjectLogger(d.Logger))
	e.Use(middleware.RequestLogger())
	// metrics 掛在 Recover 外層，panic 轉成的 500 也會被計數
	e.Use(metrics.Middleware())
	e.Use(middleware.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: d.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// 公開資訊
	api.GET("/health", handler.HealthHandler(d.Health))
	api.GET("/services", handler.ServicesHandler())

	// 註冊與登入，依來源 IP 限流
	api.POST("/register", auth.RegisterHandler(d.Auth), middleware.RateLimit(d.Limiter, d.RateLimitPerMinute, "register"))
	api.POST("/login", auth.LoginHandler(d.Auth), middleware.RateLimit(d.Limiter, d.RateLimitPerMinute, "login"))
	api.GET("/session", auth.SessionHandler(), middleware.OptionalAuth(d.Tokens))

	// 購物車 (需登入)
	apiCart := api.Group("/cart", middleware.RequireAuth(d.Tokens))
	apiCart.GET("", cart.ListHandler(d.Cart))
	apiCart.POST("", cart.AddHandler(d.Cart))
	apiCart.DELETE("/:serviceId", cart.RemoveHandler(d.Cart))

	// 訂單 (需登入)
	apiOrders := api.Group("/orders", middleware.RequireAuth(d.Tokens))
	apiOrders.GET("", orders.ListHandler(d.Orders))
	apiOrders.POST("", orders.CheckoutHandler(d.Orders))

	// 管理員審核
	apiAdmin := api.Group("/admin", middleware.RequireAdmin(d.Tokens))
	apiAdmin.GET("/orders", admin.ListOrdersHandler(d.Admin))
	apiAdmin.PUT("/orders/:orderId", admin.UpdateOrderStatusHandler(d.Admin))
}
