package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/procurement"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.RawMaterialOrderRepository = (*RawMaterialOrderRepo)(nil)

// RawMaterialOrderRepo órdenes de materia prima sobre PostgreSQL (usable con pool o tx).
type RawMaterialOrderRepo struct {
	q Querier
}

// NewRawMaterialOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialOrderRepository(q Querier) *RawMaterialOrderRepo {
	return &RawMaterialOrderRepo{q: q}
}

const selectOrderJoined = `
	SELECT o.id, o.material_id, COALESCE(m.name, ''), COALESCE(m.unit, ''),
	       o.quantity, o.order_date, o.status
	FROM raw_material_orders o
	LEFT JOIN raw_materials m ON m.id = o.material_id`

// GetForUpdate bloquea la fila de la orden (SELECT ... FOR UPDATE). Solo la tabla de
// órdenes queda bloqueada: la fila de stock se actualiza después con una sentencia atómica.
func (r *RawMaterialOrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.RawMaterialOrder, error) {
	query := `
		SELECT id, material_id, quantity, order_date, status
		FROM raw_material_orders WHERE id = $1
		FOR UPDATE`
	var o entity.RawMaterialOrder
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.MaterialID, &o.Quantity, &o.OrderDate, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material order for update: %w", err)
	}
	o.Status = procurement.FromStored(status)
	return &o, nil
}

// GetByID lectura sin bloqueo con nombre y unidad de la materia.
func (r *RawMaterialOrderRepo) GetByID(ctx context.Context, id int64) (*entity.RawMaterialOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, selectOrderJoined+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material order: %w", err)
	}
	return o, nil
}

// UpdateStatus escribe el estado canónico.
func (r *RawMaterialOrderRepo) UpdateStatus(ctx context.Context, id int64, status procurement.OrderStatus) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE raw_material_orders SET status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return false, fmt.Errorf("update raw material order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Create inserta la orden y completa order.ID. Materia inexistente -> domain.ErrNotFound.
func (r *RawMaterialOrderRepo) Create(ctx context.Context, order *entity.RawMaterialOrder) error {
	query := `
		INSERT INTO raw_material_orders (material_id, quantity, order_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, order.MaterialID, order.Quantity, order.OrderDate, order.Status.String()).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert raw material order: %w", err)
	}
	return nil
}

// Update edición administrativa; el estado queda como está.
func (r *RawMaterialOrderRepo) Update(ctx context.Context, order *entity.RawMaterialOrder) (bool, error) {
	query := `
		UPDATE raw_material_orders
		SET material_id = $2, quantity = $3, order_date = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, order.ID, order.MaterialID, order.Quantity, order.OrderDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("update raw material order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete baja de la orden.
func (r *RawMaterialOrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM raw_material_orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete raw material order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List órdenes más recientes primero.
func (r *RawMaterialOrderRepo) List(ctx context.Context, limit int) ([]*entity.RawMaterialOrder, error) {
	rows, err := r.q.Query(ctx, selectOrderJoined+` ORDER BY o.id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list raw material orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.RawMaterialOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw material order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.RawMaterialOrder, error) {
	var o entity.RawMaterialOrder
	var status string
	if err := row.Scan(&o.ID, &o.MaterialID, &o.MaterialName, &o.Unit, &o.Quantity, &o.OrderDate, &status); err != nil {
		return nil, err
	}
	o.Status = procurement.FromStored(status)
	return &o, nil
}
