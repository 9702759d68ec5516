package store

import (
	"context"
	"errors"
	"testing"

	"nsleadprovider/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemIgnoresConflict(t *testing.T) {
	var sqls []string
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		sqls = append(sqls, sql)
		require.Equal(t, []any{1, 3}, args)
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}}
	require.NoError(t, AddCartItem(context.Background(), db, 1, 3))
	require.Contains(t, sqls[0], "ON CONFLICT (user_id, service_id) DO NOTHING")
}

func TestRemoveCartItem(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		require.Contains(t, sql, "DELETE FROM cart_items")
		return pgconn.NewCommandTag("DELETE 0"), nil
	}}
	require.NoError(t, RemoveCartItem(context.Background(), db, 1, 99))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("boom")
	}
	require.ErrorContains(t, RemoveCartItem(context.Background(), db, 1, 99), "RemoveCartItem")
}

func TestListCartServiceIDs(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		require.Contains(t, sql, "ORDER BY added_at")
		return &database.FakeRows{N: 2, ScanFn: func(i int, dest ...any) error {
			*dest[0].(*int) = []int{3, 1}[i]
			return nil
		}}, nil
	}}
	ids, err := ListCartServiceIDs(ctx, db, 5)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, ids)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{}, nil
	}
	ids, err = ListCartServiceIDs(ctx, db, 5)
	require.NoError(t, err)
	require.NotNil(t, ids)
	require.Empty(t, ids)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{N: 1, ErrVal: errors.New("iter")}, nil
	}
	_, err = ListCartServiceIDs(ctx, db, 5)
	require.ErrorContains(t, err, "iter")
}

func TestClearCart(t *testing.T) {
	called := false
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		called = true
		require.Equal(t, []any{4}, args)
		return pgconn.NewCommandTag("DELETE 2"), nil
	}}
	require.NoError(t, ClearCart(context.Background(), db, 4))
	require.True(t, called)
}
