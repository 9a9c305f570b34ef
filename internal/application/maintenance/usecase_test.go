package maintenance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

type fakeMachines struct {
	reports  []*entity.FaultReport
	gotLimit int
}

func (f *fakeMachines) ListActive(context.Context) ([]*entity.Machine, error) {
	return []*entity.Machine{{ID: 1, Name: "Dikiş 01", Type: "sewing"}}, nil
}

func (f *fakeMachines) ListReportsByPersonnel(_ context.Context, personnelID int64, limit int) ([]*entity.FaultReport, error) {
	f.gotLimit = limit
	var out []*entity.FaultReport
	for _, r := range f.reports {
		if r.PersonnelID == personnelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMachines) CreateReport(_ context.Context, r *entity.FaultReport) error {
	r.ID = int64(len(f.reports) + 1)
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.reports = append(f.reports, r)
	return nil
}

func validRequest() dto.CreateFaultReportRequest {
	return dto.CreateFaultReportRequest{
		PersonnelID: 7,
		MachineID:   1,
		FaultType:   "Mekanik",
		Priority:    "Yüksek",
		Title:       "İğne kırıldı",
		Description: "Dikiş makinesinde iğne kırıldı",
	}
}

func TestCreateReport_EstadoInicialAbierto(t *testing.T) {
	repo := &fakeMachines{}
	uc := NewUseCase(repo)

	got, err := uc.CreateReport(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.FaultStatusOpen, got.Status)
	assert.Equal(t, int64(1), got.ID)

	list, err := uc.ListReports(context.Background(), 7, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 5, repo.gotLimit)
}

func TestCreateReport_Validaciones(t *testing.T) {
	uc := NewUseCase(&fakeMachines{})

	missing := validRequest()
	missing.Description = "  "
	_, err := uc.CreateReport(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	long := validRequest()
	long.Title = strings.Repeat("ş", 161)
	_, err = uc.CreateReport(context.Background(), long)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	exact := validRequest()
	exact.Title = strings.Repeat("ş", 160)
	_, err = uc.CreateReport(context.Background(), exact)
	assert.NoError(t, err)

	badPriority := validRequest()
	badPriority.Priority = "Acil"
	_, err = uc.CreateReport(context.Background(), badPriority)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListReports_RequierePersonal(t *testing.T) {
	uc := NewUseCase(&fakeMachines{})

	_, err := uc.ListReports(context.Background(), 0, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMachines(t *testing.T) {
	uc := NewUseCase(&fakeMachines{})

	list, err := uc.ListMachines(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dikiş 01", list[0].Name)
}
