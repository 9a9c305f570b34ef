package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// DecrementFloor resta qty con piso en cero en una sola sentencia (sin SELECT previo).
func (r *StockRepo) DecrementFloor(ctx context.Context, materialID int64, qty decimal.Decimal) (int64, error) {
	query := `
		UPDATE raw_material_stock
		SET current_quantity = GREATEST(COALESCE(current_quantity, 0) - $2, 0),
		    updated_at = now()
		WHERE material_id = $1`
	tag, err := r.q.Exec(ctx, query, materialID, qty)
	if err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Increment suma qty (upsert por materia).
func (r *StockRepo) Increment(ctx context.Context, materialID int64, qty decimal.Decimal) error {
	query := `
		INSERT INTO raw_material_stock (material_id, current_quantity, min_quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (material_id)
		DO UPDATE SET current_quantity = COALESCE(raw_material_stock.current_quantity, 0) + EXCLUDED.current_quantity,
		              updated_at = now()`
	if _, err := r.q.Exec(ctx, query, materialID, qty); err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// Get existencia de una materia; nil, nil si no tiene fila.
func (r *StockRepo) Get(ctx context.Context, materialID int64) (*entity.MaterialStock, error) {
	query := `
		SELECT s.material_id, COALESCE(m.name, ''), COALESCE(m.unit, ''),
		       COALESCE(s.current_quantity, 0), COALESCE(s.min_quantity, 0)
		FROM raw_material_stock s
		LEFT JOIN raw_materials m ON m.id = s.material_id
		WHERE s.material_id = $1`
	var s entity.MaterialStock
	err := r.q.QueryRow(ctx, query, materialID).Scan(&s.MaterialID, &s.MaterialName, &s.Unit, &s.CurrentQuantity, &s.MinQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List materias activas con su existencia (0 si no hay fila).
func (r *StockRepo) List(ctx context.Context) ([]*entity.MaterialStock, error) {
	query := `
		SELECT m.id, m.name, m.unit,
		       COALESCE(s.current_quantity, 0), COALESCE(s.min_quantity, 0)
		FROM raw_materials m
		LEFT JOIN raw_material_stock s ON s.material_id = m.id
		WHERE m.is_active
		ORDER BY m.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.MaterialStock
	for rows.Next() {
		var s entity.MaterialStock
		if err := rows.Scan(&s.MaterialID, &s.MaterialName, &s.Unit, &s.CurrentQuantity, &s.MinQuantity); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountCritical materias activas con mínimo definido y existencia en o bajo el mínimo.
func (r *StockRepo) CountCritical(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM raw_materials m
		JOIN raw_material_stock s ON s.material_id = m.id
		WHERE m.is_active
		  AND s.min_quantity > 0
		  AND COALESCE(s.current_quantity, 0) <= s.min_quantity`
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count critical stock: %w", err)
	}
	return n, nil
}
