package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/procurement"
)

// RawMaterialOrderRepository puerto de persistencia de las órdenes de materia prima.
// Las implementaciones aceptan pool o tx; GetForUpdate solo tiene sentido dentro de una tx.
type RawMaterialOrderRepository interface {
	// GetForUpdate lee la orden y bloquea su fila hasta el fin de la transacción.
	// Devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.RawMaterialOrder, error)
	// GetByID lectura sin bloqueo, con nombre y unidad de la materia. nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.RawMaterialOrder, error)
	// UpdateStatus reescribe el estado sin condiciones. false si la fila no existe.
	UpdateStatus(ctx context.Context, id int64, status procurement.OrderStatus) (bool, error)
	Create(ctx context.Context, order *entity.RawMaterialOrder) error
	// Update reescribe materia, cantidad y fecha; nunca el estado.
	Update(ctx context.Context, order *entity.RawMaterialOrder) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// List órdenes más recientes primero (por id), hasta limit.
	List(ctx context.Context, limit int) ([]*entity.RawMaterialOrder, error)
}
