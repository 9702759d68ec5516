// File: internal/model/order.go
package model

import "time"

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusApproved OrderStatus = "approved"
	StatusRejected OrderStatus = "rejected"
)

// Terminal 回報狀態是否為審核結果 (approved / rejected)
func (s OrderStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Order struct {
	ID        int         `db:"id" json:"id"`
	UserID    int         `db:"user_id" json:"-"`
	Status    OrderStatus `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	Items     []OrderItem `json:"items"`
	// UserEmail 僅在管理員列表中填入
	UserEmail string `db:"user_email" json:"user_email,omitempty"`
}

// OrderItem 的 title/image 為下單當下的目錄快照
type OrderItem struct {
	ID           int    `db:"id" json:"id"`
	OrderID      int    `db:"order_id" json:"-"`
	ServiceID    int    `db:"service_id" json:"service_id"`
	ServiceTitle string `db:"service_title" json:"service_title"`
	ServiceImage string `db:"service_image" json:"service_image"`
}
