package dto

import "github.com/shopspring/decimal"

// ── Pedidos de clientes ───────────────────────────────────────────────────────

// KPIsDTO indicadores del panel de administración.
type KPIsDTO struct {
	Success        bool            `json:"success"`
	TotalOrders    int64           `json:"total_orders"`
	ActiveOrders   int64           `json:"active_orders"`
	CanceledOrders int64           `json:"canceled_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"` // excluye IPTAL
	CancelRate     decimal.Decimal `json:"cancel_rate"`   // % sobre el total, 2 decimales
}

// MonthlySalesDTO ventas por mes (YYYY-MM) para el gráfico de barras.
type MonthlySalesDTO struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// StatusCountDTO distribución de pedidos por estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AdminDashboardDTO KPIs + distribución, calculados en paralelo.
type AdminDashboardDTO struct {
	KPIs         KPIsDTO           `json:"kpis"`
	Distribution []StatusCountDTO  `json:"status_distribution"`
	MonthlySales []MonthlySalesDTO `json:"monthly_sales"`
}

// ── Materia prima ─────────────────────────────────────────────────────────────

// MaterialOrderTotalDTO total ordenado por materia en el rango pedido.
type MaterialOrderTotalDTO struct {
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlyMaterialOrderDTO total ordenado por mes y materia.
type MonthlyMaterialOrderDTO struct {
	MonthCode    string          `json:"month_code"`  // YYYY-MM
	MonthLabel   string          `json:"month_label"` // "Ekim 2025"
	MaterialName string          `json:"material_name"`
	Total        decimal.Decimal `json:"total"`
}

// ── Producción ────────────────────────────────────────────────────────────────

// ModelProductionDTO unidades producidas por modelo de vehículo.
type ModelProductionDTO struct {
	ModelID   int64  `json:"model_id"`
	ModelName string `json:"model_name"`
	Units     int64  `json:"units"`
}

// ── Lista de materiales (BOM) ─────────────────────────────────────────────────

// RecipeLineDTO línea producto × materia.
type RecipeLineDTO struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	MaterialID   int64           `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// MaterialConsumptionDTO consumo teórico por materia.
type MaterialConsumptionDTO struct {
	MaterialID    int64           `json:"material_id"`
	MaterialName  string          `json:"material_name"`
	Unit          string          `json:"unit"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// CriticalMaterialDTO materia con su puntaje de criticidad (productos × cantidad).
type CriticalMaterialDTO struct {
	MaterialID    int64           `json:"material_id"`
	MaterialName  string          `json:"material_name"`
	Unit          string          `json:"unit"`
	ProductCount  int64           `json:"product_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Score         decimal.Decimal `json:"criticality_score"`
}
