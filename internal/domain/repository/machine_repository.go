package repository

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// MachineRepository máquinas y reportes de falla.
type MachineRepository interface {
	ListActive(ctx context.Context) ([]*entity.Machine, error)
	ListReportsByPersonnel(ctx context.Context, personnelID int64, limit int) ([]*entity.FaultReport, error)
	CreateReport(ctx context.Context, r *entity.FaultReport) error
}
