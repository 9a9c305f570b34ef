package analytics

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/jhoicas/tekstil-api/pkg/trformat"
)

// Rangos aceptados por el análisis de compras de materia prima.
const (
	RangeLastMonth       = "last_1_month"
	RangeLastTwoMonths   = "last_2_months"
	RangeLastThreeMonths = "last_3_months"
)

const (
	defaultProductionLimit = 10
	maxProductionLimit     = 100
	defaultBOMLimit        = 10
	maxBOMLimit            = 100
	defaultMonthlyWindow   = 6 // meses hacia atrás si no se indica rango
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// rangeMonths cantidad de meses del rango; cualquier otro valor equivale a un mes.
func rangeMonths(r string) int {
	switch strings.TrimSpace(r) {
	case RangeLastTwoMonths:
		return 2
	case RangeLastThreeMonths:
		return 3
	default:
		return 1
	}
}

// RawMaterialOrderAnalysis totales ordenados por materia en el último 1, 2 o 3 meses.
func (uc *ReportUseCase) RawMaterialOrderAnalysis(ctx context.Context, rangeKey string, now time.Time) ([]dto.MaterialOrderTotalDTO, error) {
	since := now.AddDate(0, -rangeMonths(rangeKey), 0)
	since = time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := uc.analyticsRepo.RawMaterialOrderTotals(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialOrderTotalDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MaterialOrderTotalDTO{MaterialName: r.MaterialName, Unit: r.Unit, Total: r.Total})
	}
	return out, nil
}

// MonthlyRawMaterialOrders totales por mes y materia entre from y to (inclusive), con la
// etiqueta del mes en turco. Sin fechas se usan los últimos seis meses hasta now.
func (uc *ReportUseCase) MonthlyRawMaterialOrders(ctx context.Context, from, to, now time.Time) ([]dto.MonthlyMaterialOrderDTO, error) {
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		start := to.AddDate(0, -(defaultMonthlyWindow - 1), 0)
		from = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: la fecha inicial es posterior a la final", domain.ErrInvalidInput)
	}

	rows, err := uc.analyticsRepo.MonthlyRawMaterialOrders(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyMaterialOrderDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyMaterialOrderDTO{
			MonthCode:    r.Month.Format("2006-01"),
			MonthLabel:   trformat.MonthLabel(r.Month),
			MaterialName: r.MaterialName,
			Total:        r.Total,
		})
	}
	return out, nil
}

// ProductionByModel unidades producidas por modelo. month vacío o "all" = todo el histórico.
func (uc *ReportUseCase) ProductionByModel(ctx context.Context, month string, page dto.PageRequest) ([]dto.ModelProductionDTO, error) {
	month = strings.TrimSpace(month)
	if strings.EqualFold(month, "all") {
		month = ""
	}
	if month != "" && !monthPattern.MatchString(month) {
		return nil, fmt.Errorf("%w: mes %q, se espera YYYY-MM", domain.ErrInvalidInput, month)
	}
	page.DefaultPage(defaultProductionLimit, maxProductionLimit)

	rows, err := uc.analyticsRepo.ProductionByModel(ctx, month, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModelProductionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ModelProductionDTO{ModelID: r.ModelID, ModelName: r.ModelName, Units: r.Units})
	}
	return out, nil
}

// ProductionMonths meses con producción, más recientes primero.
func (uc *ReportUseCase) ProductionMonths(ctx context.Context) ([]string, error) {
	months, err := uc.analyticsRepo.ProductionMonths(ctx)
	if err != nil {
		return nil, err
	}
	if months == nil {
		months = []string{}
	}
	return months, nil
}

// ProductRecipe materias que componen un producto.
func (uc *ReportUseCase) ProductRecipe(ctx context.Context, productID int64) ([]dto.RecipeLineDTO, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.analyticsRepo.ProductRecipe(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toRecipeLines(rows), nil
}

// MaterialUsage productos que usan una materia.
func (uc *ReportUseCase) MaterialUsage(ctx context.Context, materialID int64) ([]dto.RecipeLineDTO, error) {
	if materialID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.analyticsRepo.MaterialUsage(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return toRecipeLines(rows), nil
}

// MaterialConsumption materias más usadas en las recetas.
func (uc *ReportUseCase) MaterialConsumption(ctx context.Context, page dto.PageRequest) ([]dto.MaterialConsumptionDTO, error) {
	page.DefaultPage(defaultBOMLimit, maxBOMLimit)
	rows, err := uc.analyticsRepo.MaterialConsumption(ctx, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialConsumptionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MaterialConsumptionDTO{
			MaterialID:    r.MaterialID,
			MaterialName:  r.MaterialName,
			Unit:          r.Unit,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out, nil
}

// CriticalMaterials materias con mayor puntaje de criticidad.
func (uc *ReportUseCase) CriticalMaterials(ctx context.Context, page dto.PageRequest) ([]dto.CriticalMaterialDTO, error) {
	page.DefaultPage(defaultBOMLimit, maxBOMLimit)
	rows, err := uc.analyticsRepo.CriticalMaterials(ctx, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CriticalMaterialDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CriticalMaterialDTO{
			MaterialID:    r.MaterialID,
			MaterialName:  r.MaterialName,
			Unit:          r.Unit,
			ProductCount:  r.ProductCount,
			TotalQuantity: r.TotalQuantity,
			Score:         r.Score,
		})
	}
	return out, nil
}

func toRecipeLines(rows []repository.RecipeLine) []dto.RecipeLineDTO {
	out := make([]dto.RecipeLineDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RecipeLineDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			Unit:         r.Unit,
			Quantity:     r.Quantity,
		})
	}
	return out
}
