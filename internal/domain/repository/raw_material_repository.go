package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// RawMaterialRepository catálogo de materias primas.
type RawMaterialRepository interface {
	ListActive(ctx context.Context) ([]*entity.RawMaterial, error)
	GetByID(ctx context.Context, id int64) (*entity.RawMaterial, error)
}
