package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

const msgMaterialNotFound = "raw material not found"

// InventoryHandler materias primas, stock y libro de movimientos.
type InventoryHandler struct {
	responder
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{responder: newResponder(log, "inventory_http"), uc: uc}
}

// ListMaterials GET /api/raw-materials
func (h *InventoryHandler) ListMaterials(c *fiber.Ctx) error {
	list, err := h.uc.ListMaterials(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	return c.JSON(list)
}

// ListStock godoc
// @Summary      Stock actual de materias primas
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.MaterialStockDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/raw-material-stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	list, err := h.uc.ListStock(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	return c.JSON(list)
}

// CriticalCount GET /api/raw-material-stock/critical-count
func (h *InventoryHandler) CriticalCount(c *fiber.Ctx) error {
	n, err := h.uc.CriticalCount(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	return c.JSON(dto.CriticalCountResponse{Success: true, CriticalCount: n})
}

// ListMovements GET /api/raw-materials/:id/movements?limit=50
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	list, err := h.uc.ListMovements(c.UserContext(), id, queryPage(c))
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	return c.JSON(list)
}

// Restock godoc
// @Summary      Registrar ingreso de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "id de la materia prima"
// @Param        body  body  dto.RestockRequest  true  "quantity, note"
// @Success      200   {object}  dto.MaterialStockDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id}/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	row, err := h.uc.Restock(c.UserContext(), id, in)
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	return c.JSON(row)
}

// StockReportPDF GET /api/raw-material-stock/report.pdf
func (h *InventoryHandler) StockReportPDF(c *fiber.Ctx) error {
	b, err := h.uc.StockReportPDF(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgMaterialNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stok-raporu.pdf"`)
	return c.Send(b)
}
