package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo catálogo de materias primas.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador.
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// ListActive materias activas por nombre.
func (r *RawMaterialRepo) ListActive(ctx context.Context) ([]*entity.RawMaterial, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, unit, is_active FROM raw_materials WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Active); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *RawMaterialRepo) GetByID(ctx context.Context, id int64) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := r.q.QueryRow(ctx, `SELECT id, name, unit, is_active FROM raw_materials WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Unit, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}
