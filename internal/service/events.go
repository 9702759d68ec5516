// File: internal/service/events.go
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"nsleadprovider/internal/cache"
	"nsleadprovider/internal/metrics"
	"nsleadprovider/internal/model"
	"nsleadprovider/internal/worker"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"

	publishTimeout = 3 * time.Second
)

var jsonMarshal = json.Marshal

// OrderEvent 是發佈到 Redis 頻道的訂單事件
type OrderEvent struct {
	Type    string            `json:"type"`
	OrderID int               `json:"orderId"`
	UserID  int               `json:"userId"`
	Status  model.OrderStatus `json:"status"`
	At      time.Time         `json:"at"`
}

func newOrderEvent(typ string, o *model.Order) OrderEvent {
	return OrderEvent{Type: typ, OrderID: o.ID, UserID: o.UserID, Status: o.Status, At: timeNow().UTC()}
}

// EventPublisher 發佈訂單事件；失敗只記錄，不影響請求結果
type EventPublisher interface {
	Publish(ctx context.Context, evt OrderEvent)
}

// RedisEventPublisher 透過 worker pool 非同步發佈到 Redis pub/sub
type RedisEventPublisher struct {
	cache   cache.Cache
	pool    worker.Pool
	channel string
	logger  *slog.Logger
}

func NewRedisEventPublisher(c cache.Cache, pool worker.Pool, channel string, logger *slog.Logger) *RedisEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisEventPublisher{cache: c, pool: pool, channel: channel, logger: logger}
}

func (p *RedisEventPublisher) Publish(_ context.Context, evt OrderEvent) {
	payload, err := jsonMarshal(evt)
	if err != nil {
		p.logger.Error("marshal order event", "type", evt.Type, "order_id", evt.OrderID, "error", err)
		metrics.EventsPublished.WithLabelValues(evt.Type, "failed").Inc()
		return
	}

	err = p.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.cache.Publish(ctx, p.channel, payload).Err(); err != nil {
			p.logger.Warn("publish order event", "type", evt.Type, "order_id", evt.OrderID, "error", err)
			metrics.EventsPublished.WithLabelValues(evt.Type, "failed").Inc()
			return
		}
		metrics.EventsPublished.WithLabelValues(evt.Type, "ok").Inc()
	})
	if err != nil {
		p.logger.Warn("submit order event", "type", evt.Type, "order_id", evt.OrderID, "error", err)
		metrics.EventsPublished.WithLabelValues(evt.Type, "dropped").Inc()
	}
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OrderEvent) {}
