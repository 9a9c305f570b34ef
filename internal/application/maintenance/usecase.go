// Package maintenance máquinas de producción y reportes de falla del personal.
package maintenance

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

const (
	maxTitleLength     = 160
	defaultReportLimit = 5
	maxReportLimit     = 100
)

// Priorities prioridades aceptadas en un reporte de falla.
var Priorities = []string{"Düşük", "Orta", "Yüksek", "Kritik"}

// UseCase máquinas y reportes.
type UseCase struct {
	machines repository.MachineRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(machines repository.MachineRepository) *UseCase {
	return &UseCase{machines: machines}
}

// ListMachines máquinas activas por nombre.
func (uc *UseCase) ListMachines(ctx context.Context) ([]dto.MachineDTO, error) {
	list, err := uc.machines.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MachineDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MachineDTO{ID: m.ID, Name: m.Name, Type: m.Type})
	}
	return out, nil
}

// ListReports últimos reportes de un empleado (5 por defecto).
func (uc *UseCase) ListReports(ctx context.Context, personnelID int64, page dto.PageRequest) ([]dto.FaultReportDTO, error) {
	if personnelID <= 0 {
		return nil, fmt.Errorf("%w: personnel_id requerido", domain.ErrInvalidInput)
	}
	page.DefaultPage(defaultReportLimit, maxReportLimit)
	list, err := uc.machines.ListReportsByPersonnel(ctx, personnelID, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FaultReportDTO, 0, len(list))
	for _, f := range list {
		out = append(out, toReportDTO(f))
	}
	return out, nil
}

// CreateReport alta de un reporte en estado "Açık".
func (uc *UseCase) CreateReport(ctx context.Context, in dto.CreateFaultReportRequest) (*dto.FaultReportDTO, error) {
	f := &entity.FaultReport{
		PersonnelID: in.PersonnelID,
		MachineID:   in.MachineID,
		FaultType:   strings.TrimSpace(in.FaultType),
		Priority:    strings.TrimSpace(in.Priority),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Status:      entity.FaultStatusOpen,
	}
	if f.PersonnelID <= 0 || f.MachineID <= 0 || f.FaultType == "" || f.Priority == "" || f.Title == "" || f.Description == "" {
		return nil, fmt.Errorf("%w: todos los campos son obligatorios", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(f.Title) > maxTitleLength {
		return nil, fmt.Errorf("%w: el título supera %d caracteres", domain.ErrInvalidInput, maxTitleLength)
	}
	if !validPriority(f.Priority) {
		return nil, fmt.Errorf("%w: prioridad %q", domain.ErrInvalidInput, f.Priority)
	}
	if err := uc.machines.CreateReport(ctx, f); err != nil {
		return nil, err
	}
	d := toReportDTO(f)
	return &d, nil
}

func validPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

func toReportDTO(f *entity.FaultReport) dto.FaultReportDTO {
	return dto.FaultReportDTO{
		ID:          f.ID,
		PersonnelID: f.PersonnelID,
		MachineID:   f.MachineID,
		MachineName: f.MachineName,
		FaultType:   f.FaultType,
		Priority:    f.Priority,
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
