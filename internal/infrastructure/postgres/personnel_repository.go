package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.PersonnelRepository = (*PersonnelRepo)(nil)

// PersonnelRepo personal y agregados de turnos.
type PersonnelRepo struct {
	q Querier
}

// NewPersonnelRepository construye el adaptador.
func NewPersonnelRepository(q Querier) *PersonnelRepo {
	return &PersonnelRepo{q: q}
}

// ListWithStats todo el personal con cantidad de turnos, minutos y eficiencia promedio.
func (r *PersonnelRepo) ListWithStats(ctx context.Context) ([]*entity.PersonnelStats, error) {
	query := `
		SELECT p.id, p.full_name, p.is_active,
		       COUNT(s.id),
		       COALESCE(SUM(s.planned_minutes), 0),
		       COALESCE(SUM(s.worked_minutes), 0),
		       COALESCE(AVG(s.efficiency), 0)
		FROM personnel p
		LEFT JOIN shifts s ON s.personnel_id = p.id
		GROUP BY p.id, p.full_name, p.is_active
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list personnel: %w", err)
	}
	defer rows.Close()

	var list []*entity.PersonnelStats
	for rows.Next() {
		var p entity.PersonnelStats
		if err := rows.Scan(&p.ID, &p.FullName, &p.Active, &p.ShiftCount, &p.PlannedMinutes, &p.WorkedMinutes, &p.AvgEfficiency); err != nil {
			return nil, fmt.Errorf("scan personnel: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ActiveEfficiencies eficiencia promedio de cada empleado activo (0 sin turnos).
func (r *PersonnelRepo) ActiveEfficiencies(ctx context.Context) ([]*entity.EmployeeEfficiency, error) {
	query := `
		SELECT p.id, p.full_name, COALESCE(AVG(s.efficiency), 0)
		FROM personnel p
		LEFT JOIN shifts s ON s.personnel_id = p.id
		WHERE p.is_active
		GROUP BY p.id, p.full_name
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list efficiencies: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmployeeEfficiency
	for rows.Next() {
		var e entity.EmployeeEfficiency
		if err := rows.Scan(&e.ID, &e.FullName, &e.AvgEfficiency); err != nil {
			return nil, fmt.Errorf("scan efficiency: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *PersonnelRepo) GetName(ctx context.Context, id int64) (string, bool, error) {
	var name string
	err := r.q.QueryRow(ctx, `SELECT full_name FROM personnel WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get personnel name: %w", err)
	}
	return name, true, nil
}
