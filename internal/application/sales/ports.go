package sales

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con los repositorios de pedidos atados a ella.
// Si fn devuelve error se hace Rollback.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		orders repository.CustomerOrderRepository,
		products repository.ProductRepository,
	) error) error
}

// PasswordHasher abstrae bcrypt para poder bajar el costo en tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
