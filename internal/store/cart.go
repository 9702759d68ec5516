package store

import (
	"context"

	"nsleadprovider/internal/database"
)

// AddCartItem 重複加入同一服務為 no-op
func AddCartItem(ctx context.Context, db database.Querier, userID, serviceID int) error {
	_, err := db.Exec(ctx,
		`INSERT INTO cart_items (user_id, service_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, service_id) DO NOTHING`,
		userID,
		serviceID,
	)
	if err != nil {
		return wrap("AddCartItem", err)
	}
	return nil
}

// RemoveCartItem 移除不存在的項目不視為錯誤
func RemoveCartItem(ctx context.Context, db database.Querier, userID, serviceID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND service_id = $2`,
		userID,
		serviceID,
	)
	if err != nil {
		return wrap("RemoveCartItem", err)
	}
	return nil
}

// ListCartServiceIDs 依加入順序回傳購物車內的服務 id
func ListCartServiceIDs(ctx context.Context, db database.Querier, userID int) ([]int, error) {
	rows, err := db.Query(ctx,
		`SELECT service_id FROM cart_items
		 WHERE user_id = $1
		 ORDER BY added_at, service_id`,
		userID,
	)
	if err != nil {
		return nil, wrap("ListCartServiceIDs", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, wrap("ListCartServiceIDs", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListCartServiceIDs", err)
	}
	return ids, nil
}

func ClearCart(ctx context.Context, db database.Querier, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return wrap("ClearCart", err)
	}
	return nil
}
