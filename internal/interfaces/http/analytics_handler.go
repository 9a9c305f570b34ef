package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/analytics"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/pkg/logger"
	"github.com/jhoicas/tekstil-api/pkg/trformat"
)

// AnalyticsHandler reportes del panel de administración y consultas de recetas (BOM).
type AnalyticsHandler struct {
	responder
	uc  *analytics.ReportUseCase
	now func() time.Time
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.ReportUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{responder: newResponder(log, "analytics_http"), uc: uc, now: time.Now}
}

// Dashboard godoc
// @Summary      KPIs, ventas mensuales y distribución de estados en una sola llamada
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// KPIs GET /api/reports/kpis
func (h *AnalyticsHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.uc.KPIs(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// MonthlySales GET /api/reports/monthly-sales
func (h *AnalyticsHandler) MonthlySales(c *fiber.Ctx) error {
	out, err := h.uc.MonthlySales(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// OrderStatusDistribution GET /api/reports/order-status-distribution
func (h *AnalyticsHandler) OrderStatusDistribution(c *fiber.Ctx) error {
	out, err := h.uc.OrderStatusDistribution(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// RawMaterialOrderAnalysis godoc
// @Summary      Totales pedidos por materia prima
// @Tags         reports
// @Produce      json
// @Param        range  query  string  false  "last_1_month (default), last_2_months, last_3_months"
// @Success      200  {array}   dto.MaterialOrderTotalDTO
// @Router       /api/reports/raw-material-order-analysis [get]
func (h *AnalyticsHandler) RawMaterialOrderAnalysis(c *fiber.Ctx) error {
	out, err := h.uc.RawMaterialOrderAnalysis(c.UserContext(), c.Query("range"), h.now())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// MonthlyRawMaterialOrders GET /api/reports/monthly-raw-material-orders?from=2025-05-01&to=2025-10-31
func (h *AnalyticsHandler) MonthlyRawMaterialOrders(c *fiber.Ctx) error {
	from, err := optionalDate(c.Query("from"))
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	to, err := optionalDate(c.Query("to"))
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	out, err := h.uc.MonthlyRawMaterialOrders(c.UserContext(), from, to, h.now())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// ProductionByModel GET /api/analytics/production-by-model?month=2025-10&limit=10
func (h *AnalyticsHandler) ProductionByModel(c *fiber.Ctx) error {
	out, err := h.uc.ProductionByModel(c.UserContext(), c.Query("month"), queryPage(c))
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// ProductionMonths GET /api/analytics/production-months
func (h *AnalyticsHandler) ProductionMonths(c *fiber.Ctx) error {
	out, err := h.uc.ProductionMonths(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// ProductRecipe GET /api/bom/products/:id/recipe
func (h *AnalyticsHandler) ProductRecipe(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.ProductRecipe(c.UserContext(), id)
	if err != nil {
		return h.writeError(c, err, "product not found")
	}
	return c.JSON(out)
}

// MaterialUsage GET /api/bom/materials/:id/products
func (h *AnalyticsHandler) MaterialUsage(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.MaterialUsage(c.UserContext(), id)
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	return c.JSON(out)
}

// MaterialConsumption GET /api/bom/consumption?limit=10
func (h *AnalyticsHandler) MaterialConsumption(c *fiber.Ctx) error {
	out, err := h.uc.MaterialConsumption(c.UserContext(), queryPage(c))
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// CriticalMaterials GET /api/bom/critical?limit=10
func (h *AnalyticsHandler) CriticalMaterials(c *fiber.Ctx) error {
	out, err := h.uc.CriticalMaterials(c.UserContext(), queryPage(c))
	if err != nil {
		return h.writeError(c, err, "not found")
	}
	return c.JSON(out)
}

// optionalDate "" = fecha cero; cualquier otro valor debe ser yyyy-MM-dd o dd.MM.yyyy.
func optionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := trformat.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return t, nil
}
