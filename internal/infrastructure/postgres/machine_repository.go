package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo máquinas y reportes de falla.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador.
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

func (r *MachineRepo) ListActive(ctx context.Context) ([]*entity.Machine, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, machine_type FROM machines WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Type); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListReportsByPersonnel reportes del empleado, más recientes primero.
func (r *MachineRepo) ListReportsByPersonnel(ctx context.Context, personnelID int64, limit int) ([]*entity.FaultReport, error) {
	query := `
		SELECT f.id, f.personnel_id, f.machine_id, COALESCE(m.name, ''), f.fault_type, f.priority,
		       f.title, f.description, f.status, f.created_at, f.updated_at
		FROM machine_fault_reports f
		LEFT JOIN machines m ON m.id = f.machine_id
		WHERE f.personnel_id = $1
		ORDER BY f.created_at DESC, f.id DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, personnelID, limit)
	if err != nil {
		return nil, fmt.Errorf("list fault reports: %w", err)
	}
	defer rows.Close()

	var list []*entity.FaultReport
	for rows.Next() {
		var f entity.FaultReport
		if err := rows.Scan(
			&f.ID, &f.PersonnelID, &f.MachineID, &f.MachineName, &f.FaultType, &f.Priority,
			&f.Title, &f.Description, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fault report: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// CreateReport inserta el reporte; máquina o empleado inexistente -> domain.ErrNotFound.
func (r *MachineRepo) CreateReport(ctx context.Context, f *entity.FaultReport) error {
	query := `
		INSERT INTO machine_fault_reports
		    (personnel_id, machine_id, fault_type, priority, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		f.PersonnelID, f.MachineID, f.FaultType, f.Priority, f.Title, f.Description, f.Status,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert fault report: %w", err)
	}
	return nil
}
