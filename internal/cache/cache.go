package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義本服務使用的 Redis 操作
// 結帳鎖使用 SetNX 與 Lua script 釋放，訂單事件使用 Publish，健康檢查使用 Ping
// ttl <= 0 表示不設過期
type Cache interface {
	redis.Scripter

	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn     func(ctx context.Context, key string) *redis.StringCmd
	SetFn     func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNXFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	DelFn     func(ctx context.Context, keys ...string) *redis.IntCmd
	PublishFn func(ctx context.Context, channel string, message any) *redis.IntCmd
	PingFn    func(ctx context.Context) *redis.StatusCmd
	CloseFn   func() error

	EvalFn    func(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
	EvalShaFn func(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if f.SetNXFn != nil {
		return f.SetNXFn(ctx, key, value, expiration)
	}
	panic("unexpected SetNX")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

func (f *FakeCache) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	if f.PublishFn != nil {
		return f.PublishFn(ctx, channel, message)
	}
	panic("unexpected Publish")
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

func (f *FakeCache) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	if f.EvalFn != nil {
		return f.EvalFn(ctx, script, keys, args...)
	}
	panic("unexpected Eval")
}

func (f *FakeCache) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	if f.EvalShaFn != nil {
		return f.EvalShaFn(ctx, sha1, keys, args...)
	}
	panic("unexpected EvalSha")
}

func (f *FakeCache) EvalRO(context.Context, string, []string, ...any) *redis.Cmd {
	panic("unexpected EvalRO")
}

func (f *FakeCache) EvalShaRO(context.Context, string, []string, ...any) *redis.Cmd {
	panic("unexpected EvalShaRO")
}

func (f *FakeCache) ScriptExists(context.Context, ...string) *redis.BoolSliceCmd {
	panic("unexpected ScriptExists")
}

func (f *FakeCache) ScriptLoad(context.Context, string) *redis.StringCmd {
	panic("unexpected ScriptLoad")
}
