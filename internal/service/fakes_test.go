package service

import (
	"context"
	"sync"
	"time"

	"nsleadprovider/internal/model"
	"nsleadprovider/internal/store"
)

// memRepo 是以記憶體實作的 repository，行為與 store.Repository 一致
type memRepo struct {
	mu     sync.Mutex
	users  map[string]*model.User
	carts  map[int][]int
	orders []model.Order
	nextID int
	clock  time.Time

	getUserErr     error
	createUserErr  error
	createOrderErr error
	listCartErr    error
}

func newMemRepo() *memRepo {
	return &memRepo{
		users: map[string]*model.User{},
		carts: map[int][]int{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memRepo) id() int {
	r.nextID++
	return r.nextID
}

func (r *memRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memRepo) CreateUser(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createUserErr != nil {
		return nil, r.createUserErr
	}
	if _, ok := r.users[u.Email]; ok {
		return nil, store.ErrDuplicate
	}
	u.ID = r.id()
	u.CreatedAt = r.tick()
	cp := *u
	r.users[u.Email] = &cp
	return u, nil
}

func (r *memRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getUserErr != nil {
		return nil, r.getUserErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) UpdateUserRole(_ context.Context, email string, role model.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *memRepo) AddCartItem(_ context.Context, userID, serviceID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.carts[userID] {
		if id == serviceID {
			return nil
		}
	}
	r.carts[userID] = append(r.carts[userID], serviceID)
	return nil
}

func (r *memRepo) RemoveCartItem(_ context.Context, userID, serviceID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.carts[userID][:0]
	for _, id := range r.carts[userID] {
		if id != serviceID {
			kept = append(kept, id)
		}
	}
	r.carts[userID] = kept
	return nil
}

func (r *memRepo) ListCartServiceIDs(_ context.Context, userID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listCartErr != nil {
		return nil, r.listCartErr
	}
	return append([]int{}, r.carts[userID]...), nil
}

func (r *memRepo) CreateOrder(_ context.Context, userID int, items []model.OrderItem) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createOrderErr != nil {
		return nil, r.createOrderErr
	}
	o := model.Order{ID: r.id(), UserID: userID, Status: model.StatusPending, CreatedAt: r.tick()}
	for _, it := range items {
		it.ID = r.id()
		it.OrderID = o.ID
		o.Items = append(o.Items, it)
	}
	r.orders = append(r.orders, o)
	delete(r.carts, userID)
	return &o, nil
}

func (r *memRepo) emailOf(userID int) string {
	for _, u := range r.users {
		if u.ID == userID {
			return u.Email
		}
	}
	return ""
}

func (r *memRepo) ListOrdersByUser(_ context.Context, userID int) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *memRepo) ListAllOrders(_ context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		o.UserEmail = r.emailOf(o.UserID)
		out = append(out, o)
	}
	return out, nil
}

func (r *memRepo) UpdateOrderStatus(_ context.Context, orderID int, status model.OrderStatus, requirePending bool) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != orderID {
			continue
		}
		if requirePending && r.orders[i].Status != model.StatusPending {
			return nil, store.ErrNotPending
		}
		r.orders[i].Status = status
		o := r.orders[i]
		return &o, nil
	}
	return nil, store.ErrNotFound
}

type fakeLocker struct {
	err      error
	acquired []string
	released int
}

func (l *fakeLocker) Acquire(_ context.Context, key string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.acquired = append(l.acquired, key)
	return func() { l.released++ }, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []OrderEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt OrderEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
