// File: internal/database/tx.go
package database

import (
	"context"
	"errors"
	"fmt"

	"nsleadprovider/internal/logging"

	"github.com/jackc/pgx/v5"
)

// TxFn 在交易內執行；回傳 nil 即 commit，回傳錯誤即 rollback
type TxFn func(ctx context.Context, tx pgx.Tx) error

// RunInTx 以單一交易執行 fn。任何離開路徑 (錯誤、panic) 都會釋放交易。
func RunInTx(ctx context.Context, db DB, fn TxFn) (err error) {
	log := logging.FromContext(ctx)

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error("rollback after panic failed", "error", rbErr, "panic", p)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Error("rollback failed", "rollback_error", rbErr, "error", err)
			return fmt.Errorf("rollback: %v (original error: %w)", rbErr, err)
		}
		log.Debug("transaction rolled back", "error", err)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		// commit 失敗時 pgx 已關閉交易，再補一次 rollback 只是確保連線歸還
		_ = tx.Rollback(ctx)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
