package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para reportes de ventas, compras, producción y BOM.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// OrderKPIs totales de pedidos de clientes. Los ingresos excluyen los pedidos IPTAL.
func (r *AnalyticsRepo) OrderKPIs(ctx context.Context) (*repository.OrderKPIRow, error) {
	const query = `
	SELECT
	    COUNT(*)                                                                      AS total_orders,
	    COUNT(*) FILTER (WHERE UPPER(o.status) NOT IN ('TAMAMLANDI', 'TESLIM_EDILDI')) AS active_orders,
	    COUNT(*) FILTER (WHERE UPPER(o.status) = 'IPTAL')                             AS canceled_orders,
	    COALESCE(SUM(t.amount) FILTER (WHERE UPPER(o.status) <> 'IPTAL'), 0)          AS total_revenue
	FROM customer_orders o
	LEFT JOIN (
	    SELECT order_id, SUM(total_amount) AS amount
	    FROM customer_order_lines GROUP BY order_id
	) t ON t.order_id = o.id`

	var k repository.OrderKPIRow
	if err := r.q.QueryRow(ctx, query).Scan(&k.TotalOrders, &k.ActiveOrders, &k.CanceledOrders, &k.TotalRevenue); err != nil {
		return nil, fmt.Errorf("order kpis: %w", err)
	}
	return &k, nil
}

// MonthlySales ventas por mes (YYYY-MM) sin pedidos cancelados.
func (r *AnalyticsRepo) MonthlySales(ctx context.Context) ([]repository.MonthAmount, error) {
	const query = `
	SELECT to_char(o.order_date, 'YYYY-MM') AS month, COALESCE(SUM(l.total_amount), 0)
	FROM customer_orders o
	JOIN customer_order_lines l ON l.order_id = o.id
	WHERE UPPER(o.status) <> 'IPTAL'
	GROUP BY month
	ORDER BY month`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthAmount
	for rows.Next() {
		var m repository.MonthAmount
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) OrderStatusDistribution(ctx context.Context) ([]repository.StatusCount, error) {
	const query = `
	SELECT status, COUNT(*)
	FROM customer_orders
	GROUP BY status
	ORDER BY COUNT(*) DESC, status`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("order status distribution: %w", err)
	}
	defer rows.Close()

	var out []repository.StatusCount
	for rows.Next() {
		var s repository.StatusCount
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RawMaterialOrderTotals cantidades ordenadas por materia desde since.
// Las órdenes cuya materia ya no existe se agrupan como "Bilinmeyen".
func (r *AnalyticsRepo) RawMaterialOrderTotals(ctx context.Context, since time.Time) ([]repository.MaterialTotal, error) {
	const query = `
	SELECT COALESCE(m.name, 'Bilinmeyen') AS material_name,
	       COALESCE(m.unit, '')           AS unit,
	       SUM(o.quantity)                AS total
	FROM raw_material_orders o
	LEFT JOIN raw_materials m ON m.id = o.material_id
	WHERE o.order_date >= $1
	GROUP BY material_name, unit
	ORDER BY total DESC`

	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("raw material order totals: %w", err)
	}
	defer rows.Close()

	var out []repository.MaterialTotal
	for rows.Next() {
		var t repository.MaterialTotal
		if err := rows.Scan(&t.MaterialName, &t.Unit, &t.Total); err != nil {
			return nil, fmt.Errorf("scan material total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) MonthlyRawMaterialOrders(ctx context.Context, from, to time.Time) ([]repository.MonthlyMaterialTotal, error) {
	const query = `
	SELECT date_trunc('month', o.order_date)::date AS month,
	       COALESCE(m.name, 'Bilinmeyen')          AS material_name,
	       SUM(o.quantity)
	FROM raw_material_orders o
	LEFT JOIN raw_materials m ON m.id = o.material_id
	WHERE o.order_date BETWEEN $1 AND $2
	GROUP BY month, material_name
	ORDER BY month, material_name`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly raw material orders: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlyMaterialTotal
	for rows.Next() {
		var t repository.MonthlyMaterialTotal
		if err := rows.Scan(&t.Month, &t.MaterialName, &t.Total); err != nil {
			return nil, fmt.Errorf("scan monthly material total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ProductionByModel unidades de pedidos completados o despachados por modelo de vehículo.
func (r *AnalyticsRepo) ProductionByModel(ctx context.Context, month string, limit int) ([]repository.ModelProduction, error) {
	query := `
	SELECT vm.id, vm.name, SUM(l.quantity) AS units
	FROM customer_orders o
	JOIN customer_order_lines l ON l.order_id = o.id
	JOIN products p ON p.id = l.product_id
	JOIN vehicle_models vm ON vm.id = p.model_id
	WHERE UPPER(o.status) IN ('TAMAMLANDI', 'SEVK EDILDI', 'SEVK_EDILDI')
	  AND ($1 = '' OR to_char(o.order_date, 'YYYY-MM') = $1)
	GROUP BY vm.id, vm.name
	ORDER BY units DESC, vm.name`
	args := []any{month}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("production by model: %w", err)
	}
	defer rows.Close()

	var out []repository.ModelProduction
	for rows.Next() {
		var m repository.ModelProduction
		if err := rows.Scan(&m.ModelID, &m.ModelName, &m.Units); err != nil {
			return nil, fmt.Errorf("scan model production: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ProductionMonths meses (YYYY-MM) con producción, más recientes primero.
func (r *AnalyticsRepo) ProductionMonths(ctx context.Context) ([]string, error) {
	const query = `
	SELECT DISTINCT to_char(o.order_date, 'YYYY-MM') AS month
	FROM customer_orders o
	WHERE UPPER(o.status) IN ('TAMAMLANDI', 'SEVK EDILDI', 'SEVK_EDILDI')
	ORDER BY month DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("production months: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scan production month: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const selectRecipe = `
	SELECT b.product_id, COALESCE(p.name, ''), b.material_id, COALESCE(m.name, ''), COALESCE(m.unit, ''), b.quantity
	FROM bill_of_materials b
	LEFT JOIN products p ON p.id = b.product_id
	LEFT JOIN raw_materials m ON m.id = b.material_id`

// ProductRecipe materias que componen un producto.
func (r *AnalyticsRepo) ProductRecipe(ctx context.Context, productID int64) ([]repository.RecipeLine, error) {
	return r.recipeLines(ctx, selectRecipe+` WHERE b.product_id = $1 ORDER BY m.name`, productID)
}

// MaterialUsage productos que usan una materia.
func (r *AnalyticsRepo) MaterialUsage(ctx context.Context, materialID int64) ([]repository.RecipeLine, error) {
	return r.recipeLines(ctx, selectRecipe+` WHERE b.material_id = $1 ORDER BY p.name`, materialID)
}

func (r *AnalyticsRepo) recipeLines(ctx context.Context, query string, id int64) ([]repository.RecipeLine, error) {
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("bill of materials: %w", err)
	}
	defer rows.Close()

	var out []repository.RecipeLine
	for rows.Next() {
		var l repository.RecipeLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.MaterialID, &l.MaterialName, &l.Unit, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// MaterialConsumption suma de cantidades de cada materia en todas las recetas.
func (r *AnalyticsRepo) MaterialConsumption(ctx context.Context, limit int) ([]repository.MaterialConsumption, error) {
	const query = `
	SELECT b.material_id, COALESCE(m.name, 'Bilinmeyen'), COALESCE(m.unit, ''), SUM(b.quantity) AS total
	FROM bill_of_materials b
	LEFT JOIN raw_materials m ON m.id = b.material_id
	GROUP BY b.material_id, m.name, m.unit
	ORDER BY total DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("material consumption: %w", err)
	}
	defer rows.Close()

	var out []repository.MaterialConsumption
	for rows.Next() {
		var c repository.MaterialConsumption
		if err := rows.Scan(&c.MaterialID, &c.MaterialName, &c.Unit, &c.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan material consumption: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CriticalMaterials puntaje = productos distintos × cantidad total en recetas.
func (r *AnalyticsRepo) CriticalMaterials(ctx context.Context, limit int) ([]repository.MaterialCriticality, error) {
	const query = `
	SELECT b.material_id, COALESCE(m.name, 'Bilinmeyen'), COALESCE(m.unit, ''),
	       COUNT(DISTINCT b.product_id)                     AS product_count,
	       SUM(b.quantity)                                  AS total_quantity,
	       COUNT(DISTINCT b.product_id) * SUM(b.quantity)   AS score
	FROM bill_of_materials b
	LEFT JOIN raw_materials m ON m.id = b.material_id
	GROUP BY b.material_id, m.name, m.unit
	ORDER BY score DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("critical materials: %w", err)
	}
	defer rows.Close()

	var out []repository.MaterialCriticality
	for rows.Next() {
		var c repository.MaterialCriticality
		if err := rows.Scan(&c.MaterialID, &c.MaterialName, &c.Unit, &c.ProductCount, &c.TotalQuantity, &c.Score); err != nil {
			return nil, fmt.Errorf("scan critical material: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
