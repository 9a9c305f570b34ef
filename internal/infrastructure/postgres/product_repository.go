package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo modelos de vehículo y productos (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) ListModels(ctx context.Context) ([]*entity.VehicleModel, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM vehicle_models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list vehicle models: %w", err)
	}
	defer rows.Close()

	var list []*entity.VehicleModel
	for rows.Next() {
		var m entity.VehicleModel
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan vehicle model: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *ProductRepo) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, COALESCE(model_id, 0), unit_price FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.ModelID, &p.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByModel primer producto del modelo (por id).
func (r *ProductRepo) GetByModel(ctx context.Context, modelID int64) (*entity.Product, error) {
	query := `
		SELECT id, name, model_id, unit_price
		FROM products WHERE model_id = $1
		ORDER BY id LIMIT 1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, modelID).Scan(&p.ID, &p.Name, &p.ModelID, &p.UnitPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by model: %w", err)
	}
	return &p, nil
}
