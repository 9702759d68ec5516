package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.Panics(t, func() { db.Exec(ctx, "") })
	require.Panics(t, func() { db.Query(ctx, "") })
	require.Panics(t, func() { db.QueryRow(ctx, "") })
	require.Panics(t, func() { db.Begin(ctx) })
	require.Panics(t, func() { db.Ping(ctx) })
	db.Close()

	var calls []string
	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		calls = append(calls, "exec")
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		calls = append(calls, "query")
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		calls = append(calls, "row")
		return FakeRow{}
	}
	db.BeginFn = func(context.Context) (pgx.Tx, error) {
		calls = append(calls, "begin")
		return &FakeTx{}, nil
	}
	db.PingFn = func(context.Context) error { calls = append(calls, "ping"); return nil }
	db.CloseFn = func() { calls = append(calls, "close") }

	_, err := db.Exec(ctx, "sql")
	require.Error(t, err)
	_, err = db.Query(ctx, "sql")
	require.NoError(t, err)
	require.NoError(t, db.QueryRow(ctx, "sql").Scan())
	_, err = db.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Ping(ctx))
	db.Close()
	require.Equal(t, []string{"exec", "query", "row", "begin", "ping", "close"}, calls)
}

func TestFakeRows(t *testing.T) {
	var seen []int
	rows := &FakeRows{N: 3, ScanFn: func(i int, dest ...any) error {
		seen = append(seen, i)
		*dest[0].(*int) = i * 10
		return nil
	}}
	var got []int
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		got = append(got, v)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []int{0, 1, 2}, seen)
	require.Equal(t, []int{0, 10, 20}, got)
}

func TestRunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("begin error", func(t *testing.T) {
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("begin") }}
		err := RunInTx(ctx, db, func(context.Context, pgx.Tx) error { return nil })
		require.ErrorContains(t, err, "begin")
	})

	t.Run("commit", func(t *testing.T) {
		tx := &FakeTx{}
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		require.NoError(t, RunInTx(ctx, db, func(context.Context, pgx.Tx) error { return nil }))
		require.True(t, tx.Committed)
		require.False(t, tx.RolledBack)
	})

	t.Run("fn error rolls back", func(t *testing.T) {
		tx := &FakeTx{}
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		boom := errors.New("boom")
		err := RunInTx(ctx, db, func(context.Context, pgx.Tx) error { return boom })
		require.ErrorIs(t, err, boom)
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})

	t.Run("commit error", func(t *testing.T) {
		tx := &FakeTx{CommitFn: func(context.Context) error { return errors.New("commit") }}
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		err := RunInTx(ctx, db, func(context.Context, pgx.Tx) error { return nil })
		require.ErrorContains(t, err, "commit")
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})

	t.Run("panic rolls back and re-panics", func(t *testing.T) {
		tx := &FakeTx{}
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		require.Panics(t, func() {
			_ = RunInTx(ctx, db, func(context.Context, pgx.Tx) error { panic("kaboom") })
		})
		require.True(t, tx.RolledBack)
	})
}
