package store

import (
	"context"

	"nsleadprovider/internal/database"
	"nsleadprovider/internal/model"
)

// Repository 將 store 函式綁定到同一個連線池，供 service 層以介面注入
type Repository struct {
	db database.DB
}

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	return CreateUser(ctx, r.db, u)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return GetUserByEmail(ctx, r.db, email)
}

func (r *Repository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return GetUserByID(ctx, r.db, id)
}

func (r *Repository) UpdateUserRole(ctx context.Context, email string, role model.Role) error {
	return UpdateUserRole(ctx, r.db, email, role)
}

func (r *Repository) AddCartItem(ctx context.Context, userID, serviceID int) error {
	return AddCartItem(ctx, r.db, userID, serviceID)
}

func (r *Repository) RemoveCartItem(ctx context.Context, userID, serviceID int) error {
	return RemoveCartItem(ctx, r.db, userID, serviceID)
}

func (r *Repository) ListCartServiceIDs(ctx context.Context, userID int) ([]int, error) {
	return ListCartServiceIDs(ctx, r.db, userID)
}

func (r *Repository) CreateOrder(ctx context.Context, userID int, items []model.OrderItem) (*model.Order, error) {
	return CreateOrder(ctx, r.db, userID, items)
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID int) ([]model.Order, error) {
	return ListOrdersByUser(ctx, r.db, userID)
}

func (r *Repository) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	return ListAllOrders(ctx, r.db)
}

func (r *Repository) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	return GetOrder(ctx, r.db, id)
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id int, status model.OrderStatus, requirePending bool) (*model.Order, error) {
	return UpdateOrderStatus(ctx, r.db, id, status, requirePending)
}
