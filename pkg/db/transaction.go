package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// snapshotTx is used for batched reads: every page is served from the same
// snapshot, so rows inserted or deleted mid-run cannot shift OFFSET pages.
var snapshotTx = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// WithSnapshot executes fn within a read-only repeatable-read transaction.
// The transaction is always rolled back; fn must not write.
// If fn panics, the transaction is rolled back and the panic is re-raised.
func WithSnapshot(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, snapshotTx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	err = fn(tx)
	_ = tx.Rollback(ctx)
	return err
}
