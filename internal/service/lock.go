// File: internal/service/lock.go
package service

import (
	"context"
	"errors"
	"time"

	"nsleadprovider/internal/cache"
	"nsleadprovider/internal/logging"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld 表示同一把鎖已被其他請求持有
var ErrLockHeld = errors.New("lock already held")

var newLockToken = uuid.NewString

// releaseScript 只在 value 仍是自己的 token 時刪除，比對與刪除在 Redis 端一次完成
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker 取得以 key 識別的互斥鎖，release 必須在完成後呼叫
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// RedisLocker 以 SET NX 加上隨機 token 實作有期限的鎖
type RedisLocker struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisLocker(c cache.Cache, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{cache: c, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := newLockToken()
	ok, err := l.cache.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockHeld
	}

	release := func() {
		// 請求的 context 可能已取消，釋放時使用獨立的逾時
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// 只刪除自己持有的鎖；TTL 到期後被他人取得的鎖不能誤刪
		n, err := releaseScript.Run(rctx, l.cache, []string{key}, token).Int()
		if err != nil {
			logging.FromContext(ctx).Warn("release lock failed", "key", key, "error", err)
			return
		}
		if n == 0 {
			logging.FromContext(ctx).Warn("lock expired before release", "key", key)
		}
	}
	return release, nil
}
