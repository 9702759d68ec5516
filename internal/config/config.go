// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	PolicyLenient = "lenient"
	PolicyStrict  = "strict"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Auth     AuthConfig     `koanf:"auth"`
	Orders   OrdersConfig   `koanf:"orders"`
	Worker   WorkerConfig   `koanf:"worker"`
	Log      LogConfig      `koanf:"log"`
	CORS     CORSConfig     `koanf:"cors"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gt=0,lt=65536"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr 回傳 echo 監聽位址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	URL string `koanf:"url" validate:"required"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"gte=0"`
}

type AuthConfig struct {
	JWTSecret          string        `koanf:"jwt_secret" validate:"required"`
	TokenTTL           time.Duration `koanf:"token_ttl" validate:"gt=0"`
	RateLimitPerMinute int           `koanf:"rate_limit_per_minute" validate:"gte=0"`
}

type OrdersConfig struct {
	// lenient：任何狀態皆可改為 approved/rejected；strict：僅允許 pending 轉換
	StatusPolicy    string        `koanf:"status_policy" validate:"oneof=lenient strict"`
	CheckoutLockTTL time.Duration `koanf:"checkout_lock_ttl" validate:"gt=0"`
	EventsChannel   string        `koanf:"events_channel" validate:"required"`
}

type WorkerConfig struct {
	Count int `koanf:"count" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

var defaults = map[string]any{
	"server.host":             "",
	"server.port":             3001,
	"server.shutdown_timeout": "10s",

	"redis.addr": "localhost:6379",
	"redis.db":   0,

	"auth.token_ttl":             "24h",
	"auth.rate_limit_per_minute": 60,

	"orders.status_policy":     PolicyLenient,
	"orders.checkout_lock_ttl": "10s",
	"orders.events_channel":    "orders.events",

	"worker.count": 1,

	"log.level":  "info",
	"log.format": "json",

	"cors.allowed_origins": []string{"*"},
}

// 環境變數名稱沿用原本服務的慣例 (PORT / DATABASE_URL / JWT_SECRET)
var envKeyMap = map[string]string{
	"HOST":                  "server.host",
	"PORT":                  "server.port",
	"SHUTDOWN_TIMEOUT":      "server.shutdown_timeout",
	"DATABASE_URL":          "database.url",
	"REDIS_ADDR":            "redis.addr",
	"REDIS_PASSWORD":        "redis.password",
	"REDIS_DB":              "redis.db",
	"JWT_SECRET":            "auth.jwt_secret",
	"TOKEN_TTL":             "auth.token_ttl",
	"RATE_LIMIT_PER_MINUTE": "auth.rate_limit_per_minute",
	"ORDER_STATUS_POLICY":   "orders.status_policy",
	"CHECKOUT_LOCK_TTL":     "orders.checkout_lock_ttl",
	"ORDER_EVENTS_CHANNEL":  "orders.events_channel",
	"WORKER_COUNT":          "worker.count",
	"LOG_LEVEL":             "log.level",
	"LOG_FORMAT":            "log.format",
	"CORS_ALLOWED_ORIGINS":  "cors.allowed_origins",
}

var listKeys = map[string]bool{
	"cors.allowed_origins": true,
}

func envValue(key, value string) (string, any) {
	mapped, ok := envKeyMap[key]
	if !ok {
		return "", nil
	}
	if listKeys[mapped] {
		var items []string
		for _, part := range strings.Split(value, ",") {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		return mapped, items
	}
	return mapped, value
}

// Load 依序載入預設值、設定檔 (可省略) 與環境變數，並進行驗證
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// StrictStatusPolicy 是否只允許 pending 訂單變更狀態
func (c *Config) StrictStatusPolicy() bool {
	return c.Orders.StatusPolicy == PolicyStrict
}
