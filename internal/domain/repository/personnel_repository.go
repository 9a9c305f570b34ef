package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// PersonnelRepository consultas de personal y turnos.
type PersonnelRepository interface {
	ListWithStats(ctx context.Context) ([]*entity.PersonnelStats, error)
	// ActiveEfficiencies eficiencia promedio de los empleados activos, ordenada por id.
	ActiveEfficiencies(ctx context.Context) ([]*entity.EmployeeEfficiency, error)
	// GetName nombre del empleado; false si el id no existe.
	GetName(ctx context.Context, id int64) (string, bool, error)
}

// RewardRuleRepository reglas de premios persistidas.
type RewardRuleRepository interface {
	// List reglas ordenadas por min_percentage DESC. includeInactive=false filtra las inactivas.
	List(ctx context.Context, includeInactive bool) ([]*entity.RewardRule, error)
	GetByID(ctx context.Context, id int64) (*entity.RewardRule, error)
	Create(ctx context.Context, r *entity.RewardRule) error
	Update(ctx context.Context, r *entity.RewardRule) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
