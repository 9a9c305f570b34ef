package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.CustomerOrderRepository = (*CustomerOrderRepo)(nil)

// CustomerOrderRepo pedidos de clientes (cabecera + líneas).
type CustomerOrderRepo struct {
	q Querier
}

// NewCustomerOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerOrderRepository(q Querier) *CustomerOrderRepo {
	return &CustomerOrderRepo{q: q}
}

// Create inserta la cabecera y completa o.ID. Cliente inexistente -> domain.ErrNotFound.
func (r *CustomerOrderRepo) Create(ctx context.Context, o *entity.CustomerOrder) error {
	query := `
		INSERT INTO customer_orders (customer_id, order_date, planned_delivery, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, o.CustomerID, o.OrderDate, o.PlannedDelivery, o.Status).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert customer order: %w", err)
	}
	return nil
}

func (r *CustomerOrderRepo) AddLine(ctx context.Context, l *entity.CustomerOrderLine) error {
	query := `
		INSERT INTO customer_order_lines (order_id, product_id, quantity, total_amount)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, l.OrderID, l.ProductID, l.Quantity, l.TotalAmount); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert customer order line: %w", err)
	}
	return nil
}

// ListByCustomer pedidos del cliente con unidades y monto sumados por pedido.
func (r *CustomerOrderRepo) ListByCustomer(ctx context.Context, customerID int64, limit int) ([]*entity.CustomerOrder, error) {
	query := `
		SELECT o.id, o.customer_id, '', '', o.order_date, o.planned_delivery, o.actual_delivery, o.status,
		       COALESCE(SUM(l.quantity), 0), COALESCE(SUM(l.total_amount), 0),
		       COALESCE(string_agg(DISTINCT p.name, ', '), '')
		FROM customer_orders o
		LEFT JOIN customer_order_lines l ON l.order_id = o.id
		LEFT JOIN products p ON p.id = l.product_id
		WHERE o.customer_id = $1
		GROUP BY o.id
		ORDER BY o.order_date DESC, o.id DESC
		LIMIT $2`
	return r.list(ctx, query, customerID, limit)
}

// SummaryByCustomer contadores por grupo de estado y monto total de los pedidos no cancelados.
func (r *CustomerOrderRepo) SummaryByCustomer(ctx context.Context, customerID int64) (*entity.CustomerOrderSummary, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE UPPER(o.status) IN ('AKTIF', 'PLANLANDI', 'URETIMDE')),
		       COUNT(*) FILTER (WHERE UPPER(o.status) IN ('TAMAMLANDI', 'SEVK_EDILDI', 'SEVK EDILDI', 'TESLIM_EDILDI')),
		       COUNT(*) FILTER (WHERE UPPER(o.status) = 'IPTAL'),
		       COALESCE(SUM(t.amount) FILTER (WHERE UPPER(o.status) <> 'IPTAL'), 0)
		FROM customer_orders o
		LEFT JOIN (
		    SELECT order_id, SUM(total_amount) AS amount
		    FROM customer_order_lines GROUP BY order_id
		) t ON t.order_id = o.id
		WHERE o.customer_id = $1`
	var s entity.CustomerOrderSummary
	err := r.q.QueryRow(ctx, query, customerID).Scan(&s.Total, &s.Active, &s.Completed, &s.Canceled, &s.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("customer order summary: %w", err)
	}
	return &s, nil
}

// ListAll vista de administración: todos los pedidos con cliente, ciudad y productos.
func (r *CustomerOrderRepo) ListAll(ctx context.Context) ([]*entity.CustomerOrder, error) {
	query := `
		SELECT o.id, o.customer_id, COALESCE(c.name, ''), COALESCE(c.city, ''),
		       o.order_date, o.planned_delivery, o.actual_delivery, o.status,
		       COALESCE(SUM(l.quantity), 0), COALESCE(SUM(l.total_amount), 0),
		       COALESCE(string_agg(DISTINCT p.name, ', '), '')
		FROM customer_orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		LEFT JOIN customer_order_lines l ON l.order_id = o.id
		LEFT JOIN products p ON p.id = l.product_id
		GROUP BY o.id, c.name, c.city
		ORDER BY o.order_date DESC, o.id DESC`
	return r.list(ctx, query)
}

// UpdateFields actualiza estado y/o fecha planificada en una sola sentencia.
func (r *CustomerOrderRepo) UpdateFields(ctx context.Context, id int64, status *string, planned *time.Time, clearPlanned bool) (bool, error) {
	query := `
		UPDATE customer_orders
		SET status = COALESCE($2, status),
		    planned_delivery = CASE WHEN $4 THEN NULL ELSE COALESCE($3, planned_delivery) END
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status, planned, clearPlanned)
	if err != nil {
		return false, fmt.Errorf("update customer order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CustomerOrderRepo) DeleteLines(ctx context.Context, orderID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customer_order_lines WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete customer order lines: %w", err)
	}
	return nil
}

func (r *CustomerOrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM customer_orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CustomerOrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CustomerOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.CustomerOrder
	for rows.Next() {
		var o entity.CustomerOrder
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.City,
			&o.OrderDate, &o.PlannedDelivery, &o.ActualDelivery, &o.Status,
			&o.TotalUnits, &o.TotalAmount, &o.Products,
		); err != nil {
			return nil, fmt.Errorf("scan customer order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
