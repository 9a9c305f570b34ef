package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderKPIRow agregados crudos de pedidos de clientes. El use case calcula la tasa de cancelación.
type OrderKPIRow struct {
	TotalOrders    int64
	ActiveOrders   int64
	CanceledOrders int64
	TotalRevenue   decimal.Decimal // excluye pedidos IPTAL
}

// MonthAmount monto por mes (YYYY-MM).
type MonthAmount struct {
	Month string
	Total decimal.Decimal
}

// StatusCount cantidad de pedidos por estado.
type StatusCount struct {
	Status string
	Count  int64
}

// MaterialTotal cantidad ordenada por materia prima.
type MaterialTotal struct {
	MaterialName string
	Unit         string
	Total        decimal.Decimal
}

// MonthlyMaterialTotal cantidad ordenada por mes y materia. Month es el día 1 del mes.
type MonthlyMaterialTotal struct {
	Month        time.Time
	MaterialName string
	Total        decimal.Decimal
}

// ModelProduction unidades producidas (pedidos completados o despachados) por modelo.
type ModelProduction struct {
	ModelID   int64
	ModelName string
	Units     int64
}

// RecipeLine línea de la lista de materiales (BOM) producto × materia.
type RecipeLine struct {
	ProductID    int64
	ProductName  string
	MaterialID   int64
	MaterialName string
	Unit         string
	Quantity     decimal.Decimal
}

// MaterialConsumption consumo teórico de una materia sumado sobre todas las recetas.
type MaterialConsumption struct {
	MaterialID    int64
	MaterialName  string
	Unit          string
	TotalQuantity decimal.Decimal
}

// MaterialCriticality puntaje = productos que la usan × cantidad total en recetas.
type MaterialCriticality struct {
	MaterialID    int64
	MaterialName  string
	Unit          string
	ProductCount  int64
	TotalQuantity decimal.Decimal
	Score         decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para reportes.
type AnalyticsRepository interface {
	OrderKPIs(ctx context.Context) (*OrderKPIRow, error)
	MonthlySales(ctx context.Context) ([]MonthAmount, error)
	OrderStatusDistribution(ctx context.Context) ([]StatusCount, error)
	// RawMaterialOrderTotals totales por materia con fecha de orden >= since.
	RawMaterialOrderTotals(ctx context.Context, since time.Time) ([]MaterialTotal, error)
	// MonthlyRawMaterialOrders totales por mes y materia con fecha en [from, to].
	MonthlyRawMaterialOrders(ctx context.Context, from, to time.Time) ([]MonthlyMaterialTotal, error)
	// ProductionByModel month vacío = todo el histórico; limit <= 0 = sin límite.
	ProductionByModel(ctx context.Context, month string, limit int) ([]ModelProduction, error)
	ProductionMonths(ctx context.Context) ([]string, error)
	ProductRecipe(ctx context.Context, productID int64) ([]RecipeLine, error)
	MaterialUsage(ctx context.Context, materialID int64) ([]RecipeLine, error)
	MaterialConsumption(ctx context.Context, limit int) ([]MaterialConsumption, error)
	CriticalMaterials(ctx context.Context, limit int) ([]MaterialCriticality, error)
}
