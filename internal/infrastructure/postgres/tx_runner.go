package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/internal/application/procurement"
	"github.com/jhoicas/tekstil-api/internal/application/sales"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var (
	_ procurement.TxRunner = (*TxRunner)(nil)
	_ inventory.TxRunner   = (*TxRunner)(nil)
	_ sales.TxRunner       = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner con el pool. lockTimeout > 0 se aplica con SET LOCAL
// al inicio de cada transacción.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

// RunProcurement transacción de cambio de estado/entrega de órdenes de materia prima.
func (r *TxRunner) RunProcurement(ctx context.Context, fn func(
	orders repository.RawMaterialOrderRepository,
	stock repository.StockRepository,
	movements repository.StockMovementRepository,
) error) error {
	return r.inTx(ctx, "procurement", func(tx pgx.Tx) error {
		return fn(NewRawMaterialOrderRepository(tx), NewStockRepository(tx), NewStockMovementRepository(tx))
	})
}

// Run transacción de inventario (reposición: stock + movimiento de entrada).
func (r *TxRunner) Run(ctx context.Context, fn func(
	stock repository.StockRepository,
	movements repository.StockMovementRepository,
) error) error {
	return r.inTx(ctx, "inventory", func(tx pgx.Tx) error {
		return fn(NewStockRepository(tx), NewStockMovementRepository(tx))
	})
}

// RunSales transacción de pedidos de clientes (cabecera + líneas).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	orders repository.CustomerOrderRepository,
	products repository.ProductRepository,
) error) error {
	return r.inTx(ctx, "sales", func(tx pgx.Tx) error {
		return fn(NewCustomerOrderRepository(tx), NewProductRepository(tx))
	})
}

// inTx: Begin, lock_timeout, fn, Commit. Cualquier error revierte y se clasifica con txError.
func (r *TxRunner) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return txError(ctx, op+" begin", fmt.Errorf("begin transaction: %w", err))
	}
	// El rollback debe llegar al servidor aunque ctx ya esté cancelado.
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if r.lockTimeout > 0 {
		// SET no admite parámetros; el valor sale de la configuración, no del cliente.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return txError(ctx, op+" lock_timeout", err)
		}
	}

	if err := fn(tx); err != nil {
		return txError(ctx, op, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return txError(ctx, op+" commit", fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
