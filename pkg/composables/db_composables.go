package composables

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sendikahq/sendika/pkg/constants"
	"github.com/sendikahq/sendika/pkg/repo"
)

var (
	ErrNoTx   = errors.New("no transaction found in context")
	ErrNoPool = errors.New("no database pool found in context")
)

func WithTx(ctx context.Context, tx repo.Tx) context.Context {
	return context.WithValue(ctx, constants.TxKey, tx)
}

func UseTx(ctx context.Context) (repo.Tx, error) {
	tx := ctx.Value(constants.TxKey)
	if tx == nil {
		return UsePool(ctx)
	}
	return tx.(repo.Tx), nil
}

func WithPool(ctx context.Context, pool *pgxpool.Pool) context.Context {
	return context.WithValue(ctx, constants.PoolKey, pool)
}

func UsePool(ctx context.Context) (*pgxpool.Pool, error) {
	pool := ctx.Value(constants.PoolKey)
	if pool == nil {
		return nil, ErrNoPool
	}
	return pool.(*pgxpool.Pool), nil
}

// InTx runs fn inside a new transaction. The transaction is available to
// repositories through the returned context.
func InTx(ctx context.Context, fn func(context.Context) error) error {
	conn, err := UseTx(ctx)
	if err != nil {
		return err
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}

	txCtx := WithTx(ctx, tx)
	if err := fn(txCtx); err != nil {
		if rErr := tx.Rollback(ctx); rErr != nil {
			return errors.Join(err, rErr)
		}
		return err
	}
	return tx.Commit(ctx)
}

// InSavepoint runs fn inside a nested transaction of the transaction already
// in the context. pgx maps nested Begin onto SQL savepoints, so a failure in
// fn rolls back this row's work without poisoning the enclosing batch.
func InSavepoint(ctx context.Context, fn func(context.Context) error) error {
	conn, err := UseTx(ctx)
	if err != nil {
		return err
	}

	nested, err := conn.Begin(ctx)
	if err != nil {
		return err
	}

	nestedCtx := WithTx(ctx, nested)
	if err := fn(nestedCtx); err != nil {
		if rErr := nested.Rollback(ctx); rErr != nil {
			return errors.Join(err, rErr)
		}
		return err
	}
	return nested.Commit(ctx)
}
