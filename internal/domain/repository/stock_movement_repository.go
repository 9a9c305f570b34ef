package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// StockMovementRepository puerto del libro de movimientos (solo inserciones).
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListByMaterial(ctx context.Context, materialID int64, limit int) ([]*entity.StockMovement, error)
}
