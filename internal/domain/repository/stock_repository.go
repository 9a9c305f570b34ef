package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockRepository puerto del libro de existencias por materia prima.
type StockRepository interface {
	// DecrementFloor resta qty en una sola sentencia atómica con piso en cero.
	// Devuelve las filas afectadas (0 si la materia no tiene fila de stock).
	DecrementFloor(ctx context.Context, materialID int64, qty decimal.Decimal) (int64, error)
	// Increment suma qty, creando la fila si no existe.
	Increment(ctx context.Context, materialID int64, qty decimal.Decimal) error
	// Get nil, nil si la materia no tiene fila de stock.
	Get(ctx context.Context, materialID int64) (*entity.MaterialStock, error)
	// List todas las materias activas con su existencia (0 si no hay fila).
	List(ctx context.Context) ([]*entity.MaterialStock, error)
	// CountCritical materias activas con mínimo > 0 y existencia <= mínimo.
	CountCritical(ctx context.Context) (int, error)
}
