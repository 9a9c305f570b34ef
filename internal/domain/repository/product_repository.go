package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// ProductRepository modelos de vehículo y productos vendibles.
type ProductRepository interface {
	ListModels(ctx context.Context) ([]*entity.VehicleModel, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	// GetByModel primer producto asociado al modelo; nil, nil si no hay.
	GetByModel(ctx context.Context, modelID int64) (*entity.Product, error)
}
