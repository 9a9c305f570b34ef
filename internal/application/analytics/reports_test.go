package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	kpis     *repository.OrderKPIRow
	kpiErr   error
	sales    []repository.MonthAmount
	status   []repository.StatusCount
	totals   []repository.MaterialTotal
	monthly  []repository.MonthlyMaterialTotal
	models   []repository.ModelProduction
	months   []string
	recipe   []repository.RecipeLine
	usage    []repository.RecipeLine
	consumed []repository.MaterialConsumption
	critical []repository.MaterialCriticality
	gotSince time.Time
	gotFrom  time.Time
	gotTo    time.Time
	gotMonth string
	gotLimit int
}

func (f *fakeAnalyticsRepo) OrderKPIs(context.Context) (*repository.OrderKPIRow, error) {
	return f.kpis, f.kpiErr
}
func (f *fakeAnalyticsRepo) MonthlySales(context.Context) ([]repository.MonthAmount, error) {
	return f.sales, nil
}
func (f *fakeAnalyticsRepo) OrderStatusDistribution(context.Context) ([]repository.StatusCount, error) {
	return f.status, nil
}
func (f *fakeAnalyticsRepo) RawMaterialOrderTotals(_ context.Context, since time.Time) ([]repository.MaterialTotal, error) {
	f.gotSince = since
	return f.totals, nil
}
func (f *fakeAnalyticsRepo) MonthlyRawMaterialOrders(_ context.Context, from, to time.Time) ([]repository.MonthlyMaterialTotal, error) {
	f.gotFrom, f.gotTo = from, to
	return f.monthly, nil
}
func (f *fakeAnalyticsRepo) ProductionByModel(_ context.Context, month string, limit int) ([]repository.ModelProduction, error) {
	f.gotMonth, f.gotLimit = month, limit
	return f.models, nil
}
func (f *fakeAnalyticsRepo) ProductionMonths(context.Context) ([]string, error) {
	return f.months, nil
}
func (f *fakeAnalyticsRepo) ProductRecipe(context.Context, int64) ([]repository.RecipeLine, error) {
	return f.recipe, nil
}
func (f *fakeAnalyticsRepo) MaterialUsage(context.Context, int64) ([]repository.RecipeLine, error) {
	return f.usage, nil
}
func (f *fakeAnalyticsRepo) MaterialConsumption(_ context.Context, limit int) ([]repository.MaterialConsumption, error) {
	f.gotLimit = limit
	return f.consumed, nil
}
func (f *fakeAnalyticsRepo) CriticalMaterials(_ context.Context, limit int) ([]repository.MaterialCriticality, error) {
	f.gotLimit = limit
	return f.critical, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_KPIsYTasaDeCancelacion(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		kpis: &repository.OrderKPIRow{TotalOrders: 8, ActiveOrders: 5, CanceledOrders: 2, TotalRevenue: d("12500.456")},
		sales: []repository.MonthAmount{
			{Month: "2025-09", Total: d("4000")},
			{Month: "2025-10", Total: d("8500.456")},
		},
		status: []repository.StatusCount{{Status: "AKTIF", Count: 5}, {Status: "IPTAL", Count: 2}},
	}
	uc := NewReportUseCase(repo)

	got, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, got.KPIs.Success)
	assert.Equal(t, int64(8), got.KPIs.TotalOrders)
	assert.True(t, got.KPIs.CancelRate.Equal(d("25")), "2 de 8 = 25%%, obtenido %s", got.KPIs.CancelRate)
	assert.True(t, got.KPIs.TotalRevenue.Equal(d("12500.46")))
	assert.Len(t, got.Distribution, 2)
	require.Len(t, got.MonthlySales, 2)
	assert.Equal(t, "2025-10", got.MonthlySales[1].Month)
}

func TestKPIs_SinPedidos(t *testing.T) {
	uc := NewReportUseCase(&fakeAnalyticsRepo{kpis: &repository.OrderKPIRow{}})

	got, err := uc.KPIs(context.Background())
	require.NoError(t, err)
	assert.True(t, got.CancelRate.IsZero())
}

func TestDashboard_PropagaError(t *testing.T) {
	uc := NewReportUseCase(&fakeAnalyticsRepo{kpiErr: errors.New("db caída")})

	_, err := uc.Dashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kpis")
}

// ──────────────────────────────────────────────────────────────────────────────
// Materia prima
// ──────────────────────────────────────────────────────────────────────────────

func TestRawMaterialOrderAnalysis_Rangos(t *testing.T) {
	now := time.Date(2025, time.October, 15, 13, 0, 0, 0, time.UTC)
	cases := map[string]time.Time{
		"":              time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
		"last_1_month":  time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
		"last_2_months": time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC),
		"last_3_months": time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		"cualquiera":    time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
	}
	for key, want := range cases {
		t.Run(key, func(t *testing.T) {
			repo := &fakeAnalyticsRepo{totals: []repository.MaterialTotal{{MaterialName: "Bilinmeyen", Total: d("3")}}}
			uc := NewReportUseCase(repo)

			rows, err := uc.RawMaterialOrderAnalysis(context.Background(), key, now)
			require.NoError(t, err)
			assert.Equal(t, want, repo.gotSince)
			require.Len(t, rows, 1)
			assert.Equal(t, "Bilinmeyen", rows[0].MaterialName)
		})
	}
}

func TestMonthlyRawMaterialOrders_EtiquetasTurcas(t *testing.T) {
	repo := &fakeAnalyticsRepo{monthly: []repository.MonthlyMaterialTotal{
		{Month: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), MaterialName: "Süet", Total: d("120")},
		{Month: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), MaterialName: "İplik", Total: d("7")},
	}}
	uc := NewReportUseCase(repo)
	now := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)

	rows, err := uc.MonthlyRawMaterialOrders(context.Background(), time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-10", rows[0].MonthCode)
	assert.Equal(t, "Ekim 2025", rows[0].MonthLabel)
	assert.Equal(t, "Şubat 2025", rows[1].MonthLabel)

	// ventana por defecto: seis meses hasta hoy
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, now, repo.gotTo)
}

func TestMonthlyRawMaterialOrders_RangoInvertido(t *testing.T) {
	uc := NewReportUseCase(&fakeAnalyticsRepo{})
	from := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.MonthlyRawMaterialOrders(context.Background(), from, from.AddDate(0, -1, 0), from)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionByModel_MesYLimite(t *testing.T) {
	repo := &fakeAnalyticsRepo{models: []repository.ModelProduction{{ModelID: 1, ModelName: "Clio", Units: 40}}}
	uc := NewReportUseCase(repo)

	rows, err := uc.ProductionByModel(context.Background(), "all", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "", repo.gotMonth)
	assert.Equal(t, 10, repo.gotLimit)

	_, err = uc.ProductionByModel(context.Background(), "2025-10", dto.PageRequest{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, "2025-10", repo.gotMonth)
	assert.Equal(t, 100, repo.gotLimit)

	_, err = uc.ProductionByModel(context.Background(), "2025-13", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionMonths_VacioEsLista(t *testing.T) {
	uc := NewReportUseCase(&fakeAnalyticsRepo{})

	months, err := uc.ProductionMonths(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, months)
	assert.Empty(t, months)
}

// ──────────────────────────────────────────────────────────────────────────────
// BOM
// ──────────────────────────────────────────────────────────────────────────────

func TestBOM_ConsultasYLimites(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		recipe:   []repository.RecipeLine{{ProductID: 1, MaterialID: 3, MaterialName: "Süet", Quantity: d("2.5")}},
		critical: []repository.MaterialCriticality{{MaterialID: 3, ProductCount: 4, TotalQuantity: d("10"), Score: d("40")}},
	}
	uc := NewReportUseCase(repo)

	recipe, err := uc.ProductRecipe(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recipe, 1)
	assert.True(t, recipe[0].Quantity.Equal(d("2.5")))

	_, err = uc.MaterialUsage(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	crit, err := uc.CriticalMaterials(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
	assert.True(t, crit[0].Score.Equal(d("40")))

	_, err = uc.MaterialConsumption(context.Background(), dto.PageRequest{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.gotLimit)
}
