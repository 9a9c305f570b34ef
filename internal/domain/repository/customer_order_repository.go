package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// CustomerOrderRepository pedidos de clientes y sus líneas.
type CustomerOrderRepository interface {
	Create(ctx context.Context, o *entity.CustomerOrder) error
	AddLine(ctx context.Context, l *entity.CustomerOrderLine) error
	ListByCustomer(ctx context.Context, customerID int64, limit int) ([]*entity.CustomerOrder, error)
	SummaryByCustomer(ctx context.Context, customerID int64) (*entity.CustomerOrderSummary, error)
	ListAll(ctx context.Context) ([]*entity.CustomerOrder, error)
	// UpdateFields cambia solo los campos no nulos; clearPlanned pone teslim_plan en NULL.
	UpdateFields(ctx context.Context, id int64, status *string, planned *time.Time, clearPlanned bool) (bool, error)
	DeleteLines(ctx context.Context, orderID int64) error
	Delete(ctx context.Context, id int64) (bool, error)
}
