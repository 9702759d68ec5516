package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"nsleadprovider/internal/api"
	"nsleadprovider/internal/cache"
	"nsleadprovider/internal/config"
	"nsleadprovider/internal/database"
	"nsleadprovider/internal/handler"
	"nsleadprovider/internal/logging"
	"nsleadprovider/internal/middleware"
	"nsleadprovider/internal/model"
	"nsleadprovider/internal/router"
	"nsleadprovider/internal/service"
	"nsleadprovider/internal/store"
	"nsleadprovider/internal/worker"

	"github.com/labstack/echo/v4"

	_ "nsleadprovider/docs" // 引入 swag 產出的 docs
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
	logOutput       io.Writer = os.Stderr
)

// run 啟動 HTTP 服務，直到 ctx 結束或伺服器出錯
func run(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger := logging.New(logOutput, cfg.Log.Level, cfg.Log.Format)

	db, err := newPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	// 事件發佈會用到 Redis，必須在 rdb 關閉前停止
	wp := newWorkerPool(cfg.Worker.Count, logger)
	defer stopWithin(wp, cfg.Server.ShutdownTimeout, logger)

	repo := store.NewRepository(db)
	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	orders := service.NewOrderService(
		repo,
		service.NewRedisLocker(rdb, cfg.Orders.CheckoutLockTTL),
		service.NewRedisEventPublisher(rdb, wp, cfg.Orders.EventsChannel, logger),
		cfg.StrictStatusPolicy(),
	)

	var limiter middleware.Limiter
	if l := cache.NewRateLimiter(rdb); l != nil {
		limiter = l
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()

	router.Setup(e, router.Deps{
		Logger:             logger,
		Tokens:             tokens,
		Auth:               service.NewAuthService(repo, tokens),
		Cart:               service.NewCartService(repo),
		Orders:             orders,
		Admin:              orders,
		Limiter:            limiter,
		RateLimitPerMinute: cfg.Auth.RateLimitPerMinute,
		Health: map[string]handler.PingFunc{
			"postgres": db.Ping,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Server.Addr(), "status_policy", cfg.Orders.StatusPolicy)
		errCh <- startServer(e, cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// stopWithin 等待 worker pool 清空佇列，最多等 d；逾時後未送出的事件直接放棄
func stopWithin(p worker.Pool, d time.Duration, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		logger.Warn("worker pool did not drain before shutdown timeout", "timeout", d)
	}
}

// migrate 執行 up 或 down
func migrate(configPath, direction string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	switch direction {
	case "up":
		return runMigrationsFn(cfg.Database.URL)
	case "down":
		return rollbackAllFn(cfg.Database.URL)
	default:
		return fmt.Errorf("unknown migrate direction %q", direction)
	}
}

// setRole 調整既有使用者的角色，admin 帳號只能透過這裡建立
func setRole(ctx context.Context, configPath, email string, role model.Role) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	db, err := newPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	auth := service.NewAuthService(store.NewRepository(db), nil)
	return auth.SetRole(ctx, email, role)
}
