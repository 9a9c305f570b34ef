package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	// ListIDs ids existentes en orden ascendente (para calcular el primer hueco libre).
	ListIDs(ctx context.Context) ([]int64, error)
	// CreateWithID inserta con id explícito; domain.ErrDuplicate si el id ya existe.
	CreateWithID(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	SetPasswordHash(ctx context.Context, id int64, hash string) error
	ListWithoutPassword(ctx context.Context) ([]int64, error)
}
