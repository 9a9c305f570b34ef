// Package analytics contiene los casos de uso de reportes: panel de administración,
// compras de materia prima, producción por modelo y lista de materiales (BOM).
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ReportUseCase reportes de solo lectura.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo}
}

// Dashboard construye el panel del administrador.
//
// Tres llamadas en paralelo:
//  1. OrderKPIs               → KPIs + tasa de cancelación
//  2. OrderStatusDistribution → gráfico de torta
//  3. MonthlySales            → gráfico de barras
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	type kpiResult struct {
		row *repository.OrderKPIRow
		err error
	}
	type statusResult struct {
		rows []repository.StatusCount
		err  error
	}
	type salesResult struct {
		rows []repository.MonthAmount
		err  error
	}

	kpiCh := make(chan kpiResult, 1)
	statusCh := make(chan statusResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		row, err := uc.analyticsRepo.OrderKPIs(ctx)
		kpiCh <- kpiResult{row, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.OrderStatusDistribution(ctx)
		statusCh <- statusResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.MonthlySales(ctx)
		salesCh <- salesResult{rows, err}
	}()

	kpis := <-kpiCh
	status := <-statusCh
	sales := <-salesCh

	if kpis.err != nil {
		return nil, fmt.Errorf("dashboard: kpis: %w", kpis.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: distribución de estados: %w", status.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas mensuales: %w", sales.err)
	}

	return &dto.AdminDashboardDTO{
		KPIs:         toKPIs(kpis.row),
		Distribution: toStatusCounts(status.rows),
		MonthlySales: toMonthlySales(sales.rows),
	}, nil
}

// KPIs indicadores sueltos (endpoint propio del panel).
func (uc *ReportUseCase) KPIs(ctx context.Context) (*dto.KPIsDTO, error) {
	row, err := uc.analyticsRepo.OrderKPIs(ctx)
	if err != nil {
		return nil, err
	}
	k := toKPIs(row)
	return &k, nil
}

// MonthlySales ventas por mes sin pedidos cancelados.
func (uc *ReportUseCase) MonthlySales(ctx context.Context) ([]dto.MonthlySalesDTO, error) {
	rows, err := uc.analyticsRepo.MonthlySales(ctx)
	if err != nil {
		return nil, err
	}
	return toMonthlySales(rows), nil
}

// OrderStatusDistribution cantidad de pedidos por estado.
func (uc *ReportUseCase) OrderStatusDistribution(ctx context.Context) ([]dto.StatusCountDTO, error) {
	rows, err := uc.analyticsRepo.OrderStatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	return toStatusCounts(rows), nil
}

// toKPIs tasa de cancelación = canceladas / total × 100 (0 sin pedidos).
func toKPIs(row *repository.OrderKPIRow) dto.KPIsDTO {
	k := dto.KPIsDTO{
		Success:        true,
		TotalOrders:    row.TotalOrders,
		ActiveOrders:   row.ActiveOrders,
		CanceledOrders: row.CanceledOrders,
		TotalRevenue:   row.TotalRevenue.Round(2),
		CancelRate:     decimal.Zero,
	}
	if row.TotalOrders > 0 {
		k.CancelRate = decimal.NewFromInt(row.CanceledOrders).
			Div(decimal.NewFromInt(row.TotalOrders)).
			Mul(hundred).
			Round(2)
	}
	return k
}

func toStatusCounts(rows []repository.StatusCount) []dto.StatusCountDTO {
	out := make([]dto.StatusCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StatusCountDTO{Status: r.Status, Count: r.Count})
	}
	return out
}

func toMonthlySales(rows []repository.MonthAmount) []dto.MonthlySalesDTO {
	out := make([]dto.MonthlySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlySalesDTO{Month: r.Month, Total: r.Total.Round(2)})
	}
	return out
}
