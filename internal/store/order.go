package store

import (
	"context"
	"errors"

	"nsleadprovider/internal/database"
	"nsleadprovider/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateOrder 在單一交易內建立 pending 訂單、寫入所有項目並清空購物車
// 任一步驟失敗都會整筆 rollback
func CreateOrder(ctx context.Context, db database.DB, userID int, items []model.OrderItem) (*model.Order, error) {
	order := &model.Order{UserID: userID}

	err := database.RunInTx(ctx, db, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO orders (user_id, status)
			 VALUES ($1, $2)
			 RETURNING id, status, created_at`,
			userID,
			model.StatusPending,
		)
		if err := row.Scan(&order.ID, &order.Status, &order.CreatedAt); err != nil {
			return err
		}

		order.Items = make([]model.OrderItem, 0, len(items))
		for _, it := range items {
			it.OrderID = order.ID
			row := tx.QueryRow(ctx,
				`INSERT INTO order_items (order_id, service_id, service_title, service_image)
				 VALUES ($1, $2, $3, $4)
				 RETURNING id`,
				order.ID,
				it.ServiceID,
				it.ServiceTitle,
				it.ServiceImage,
			)
			if err := row.Scan(&it.ID); err != nil {
				return err
			}
			order.Items = append(order.Items, it)
		}

		return ClearCart(ctx, tx, userID)
	})
	if err != nil {
		return nil, wrap("CreateOrder", err)
	}
	return order, nil
}

// ListOrdersByUser 回傳使用者的訂單，新的在前
func ListOrdersByUser(ctx context.Context, db database.Querier, userID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, status, created_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, wrap("ListOrdersByUser", err)
	}
	orders, err := collectOrders(rows, false)
	if err != nil {
		return nil, wrap("ListOrdersByUser", err)
	}
	if err := attachItems(ctx, db, orders); err != nil {
		return nil, wrap("ListOrdersByUser", err)
	}
	return orders, nil
}

// ListAllOrders 回傳所有使用者的訂單並附上下單者 email
func ListAllOrders(ctx context.Context, db database.Querier) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT o.id, o.user_id, o.status, o.created_at, u.email
		 FROM orders o
		 JOIN users u ON u.id = o.user_id
		 ORDER BY o.created_at DESC, o.id DESC`,
	)
	if err != nil {
		return nil, wrap("ListAllOrders", err)
	}
	orders, err := collectOrders(rows, true)
	if err != nil {
		return nil, wrap("ListAllOrders", err)
	}
	if err := attachItems(ctx, db, orders); err != nil {
		return nil, wrap("ListAllOrders", err)
	}
	return orders, nil
}

func GetOrder(ctx context.Context, db database.Querier, orderID int) (*model.Order, error) {
	o := model.Order{}
	row := db.QueryRow(ctx,
		`SELECT id, user_id, status, created_at FROM orders WHERE id = $1`,
		orderID,
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.CreatedAt); err != nil {
		return nil, wrap("GetOrder", err)
	}
	orders := []model.Order{o}
	if err := attachItems(ctx, db, orders); err != nil {
		return nil, wrap("GetOrder", err)
	}
	return &orders[0], nil
}

// UpdateOrderStatus 更新訂單狀態並回傳更新後的訂單
// requirePending 為 true 時只允許 pending 訂單轉換，否則回傳 ErrNotPending
func UpdateOrderStatus(ctx context.Context, db database.Querier, orderID int, status model.OrderStatus, requirePending bool) (*model.Order, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2
		 RETURNING id, user_id, status, created_at`
	if requirePending {
		query = `UPDATE orders SET status = $1 WHERE id = $2 AND status = 'pending'
		 RETURNING id, user_id, status, created_at`
	}

	o := model.Order{}
	row := db.QueryRow(ctx, query, status, orderID)
	if err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.CreatedAt); err != nil {
		err = wrap("UpdateOrderStatus", err)
		if requirePending && errors.Is(err, ErrNotFound) {
			// 條件式 UPDATE 沒有更新到資料時，再查一次以區分不存在與非 pending
			_, getErr := GetOrder(ctx, db, orderID)
			switch {
			case getErr == nil:
				return nil, wrap("UpdateOrderStatus", ErrNotPending)
			case !errors.Is(getErr, ErrNotFound):
				return nil, wrap("UpdateOrderStatus", getErr)
			}
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := attachItems(ctx, db, orders); err != nil {
		return nil, wrap("UpdateOrderStatus", err)
	}
	return &orders[0], nil
}

func collectOrders(rows pgx.Rows, withEmail bool) ([]model.Order, error) {
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		dest := []any{&o.ID, &o.UserID, &o.Status, &o.CreatedAt}
		if withEmail {
			dest = append(dest, &o.UserEmail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems 以單次查詢取得所有訂單的項目並依 order_id 分配
func attachItems(ctx context.Context, db database.Querier, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	index := make(map[int]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = []model.OrderItem{}
	}

	rows, err := db.Query(ctx,
		`SELECT id, order_id, service_id, service_title, service_image
		 FROM order_items
		 WHERE order_id = ANY($1)
		 ORDER BY order_id, id`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ServiceID, &it.ServiceTitle, &it.ServiceImage); err != nil {
			return err
		}
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return rows.Err()
}
