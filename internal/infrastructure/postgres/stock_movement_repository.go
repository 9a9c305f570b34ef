package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de movimientos (solo INSERT).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un movimiento y completa ID y CreatedAt.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO raw_material_movements (material_id, transaction_id, movement_type, quantity, note, created_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, COALESCE($6, now()))
		RETURNING id, created_at`
	var createdAt any
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt
	}
	err := r.q.QueryRow(ctx, query, m.MaterialID, m.TransactionID, m.Type, m.Quantity, m.Note, createdAt).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByMaterial movimientos más recientes primero.
func (r *StockMovementRepo) ListByMaterial(ctx context.Context, materialID int64, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, material_id, COALESCE(transaction_id::text, ''), movement_type, quantity, note, created_at
		FROM raw_material_movements
		WHERE material_id = $1
		ORDER BY id DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, materialID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.MaterialID, &m.TransactionID, &m.Type, &m.Quantity, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
