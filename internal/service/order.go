// File: internal/service/order.go
package service

import (
	"context"
	"errors"
	"fmt"

	"nsleadprovider/internal/apperr"
	"nsleadprovider/internal/catalog"
	"nsleadprovider/internal/logging"
	"nsleadprovider/internal/metrics"
	"nsleadprovider/internal/model"
	"nsleadprovider/internal/store"
)

type OrderRepository interface {
	ListCartServiceIDs(ctx context.Context, userID int) ([]int, error)
	CreateOrder(ctx context.Context, userID int, items []model.OrderItem) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int) ([]model.Order, error)
	ListAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status model.OrderStatus, requirePending bool) (*model.Order, error)
}

// OrderService 處理結帳、訂單查詢與管理員審核
type OrderService struct {
	repo   OrderRepository
	locker Locker
	events EventPublisher
	// strict 為 true 時只允許 pending 轉為 approved / rejected
	strict bool
}

func NewOrderService(repo OrderRepository, locker Locker, events EventPublisher, strict bool) *OrderService {
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderService{repo: repo, locker: locker, events: events, strict: strict}
}

func checkoutLockKey(userID int) string {
	return fmt.Sprintf("checkout:lock:%d", userID)
}

// dedupe 去除重複 id 並保留第一次出現的順序
func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Checkout 將購物車轉為 pending 訂單
// requested 非空時視為前端持有的購物車，否則讀取伺服器端購物車
func (s *OrderService) Checkout(ctx context.Context, userID int, requested []int) (*model.Order, error) {
	log := logging.FromContext(ctx)

	if len(requested) > 0 {
		for _, id := range requested {
			if _, ok := catalog.Lookup(id); !ok {
				return nil, apperr.Validation(fmt.Sprintf("unknown service id %d", id))
			}
		}
	}

	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, checkoutLockKey(userID))
		switch {
		case errors.Is(err, ErrLockHeld):
			metrics.CheckoutsTotal.WithLabelValues("locked").Inc()
			return nil, apperr.Conflict("checkout already in progress")
		case err != nil:
			// Redis 無法使用時不阻擋結帳
			log.Warn("checkout lock unavailable, continuing without it", "user_id", userID, "error", err)
		default:
			defer release()
		}
	}

	ids := requested
	if len(ids) == 0 {
		stored, err := s.repo.ListCartServiceIDs(ctx, userID)
		if err != nil {
			metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
			return nil, apperr.Persistence("failed to load cart", err)
		}
		ids = stored
	}

	offerings := catalog.Resolve(dedupe(ids))
	if len(offerings) == 0 {
		metrics.CheckoutsTotal.WithLabelValues("empty").Inc()
		return nil, apperr.Validation("cart is empty")
	}

	items := make([]model.OrderItem, len(offerings))
	for i, o := range offerings {
		items[i] = model.OrderItem{
			ServiceID:    o.ID,
			ServiceTitle: o.Title,
			ServiceImage: o.Image,
		}
	}

	order, err := s.repo.CreateOrder(ctx, userID, items)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
		return nil, apperr.Persistence("failed to place order", err)
	}

	metrics.CheckoutsTotal.WithLabelValues("created").Inc()
	log.Info("order placed", "order_id", order.ID, "user_id", userID, "items", len(items))
	s.events.Publish(ctx, newOrderEvent(EventOrderCreated, order))
	return order, nil
}

// ListForUser 回傳使用者自己的訂單，新的在前
func (s *OrderService) ListForUser(ctx context.Context, userID int) ([]model.Order, error) {
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to load orders", err)
	}
	return orders, nil
}

// ListAll 回傳所有訂單並附上下單者 email
func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListAllOrders(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to load orders", err)
	}
	return orders, nil
}

// UpdateStatus 將訂單改為 approved 或 rejected
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*model.Order, error) {
	st := model.OrderStatus(status)
	if !st.Terminal() {
		return nil, apperr.Validation("invalid status")
	}

	order, err := s.repo.UpdateOrderStatus(ctx, orderID, st, s.strict)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, apperr.NotFound("order not found")
		case errors.Is(err, store.ErrNotPending):
			return nil, apperr.Conflict("order is not pending")
		default:
			return nil, apperr.Persistence("failed to update order", err)
		}
	}

	metrics.StatusTransitions.WithLabelValues(string(st)).Inc()
	logging.FromContext(ctx).Info("order status updated", "order_id", order.ID, "status", st)
	s.events.Publish(ctx, newOrderEvent(EventOrderStatusChanged, order))
	return order, nil
}
