package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/application/procurement"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

const (
	msgOrderNotFound  = "order not found"
	msgStatusUpdated  = "status updated"
	msgOrderDelivered = "order delivered"
)

// ProcurementHandler órdenes de materia prima: cambio de estado, entrega y administración.
type ProcurementHandler struct {
	responder
	fulfillment *procurement.FulfillmentUseCase
	orders      *procurement.OrderUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(fulfillment *procurement.FulfillmentUseCase, orders *procurement.OrderUseCase, log *logger.Logger) *ProcurementHandler {
	return &ProcurementHandler{
		responder:   newResponder(log, "procurement_http"),
		fulfillment: fulfillment,
		orders:      orders,
	}
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una orden de materia prima
// @Description  La primera transición a DELIVERED descuenta stock y registra el movimiento.
// @Tags         raw-material-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "id de la orden"
// @Param        body  body  dto.OrderStatusRequest  true  "durum"
// @Success      200   {object}  dto.FulfillmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/raw-material-orders/{id}/status [put]
func (h *ProcurementHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.OrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.fulfillment.UpdateOrderStatus(c.UserContext(), id, in.Requested())
	if err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	return c.JSON(dto.FulfillmentResponse{
		Success:      true,
		Message:      msgStatusUpdated,
		StockUpdated: res.StockUpdated,
		Status:       res.Status.String(),
	})
}

// Deliver godoc
// @Summary      Marcar una orden como entregada
// @Tags         raw-material-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id de la orden"
// @Success      200  {object}  dto.FulfillmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/raw-material-orders/{id}/deliver [put]
func (h *ProcurementHandler) Deliver(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	res, err := h.fulfillment.ForceDeliver(c.UserContext(), id)
	if err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	return c.JSON(dto.FulfillmentResponse{
		Success:      true,
		Message:      msgOrderDelivered,
		StockUpdated: res.StockUpdated,
		Status:       res.Status.String(),
	})
}

// List GET /api/raw-material-orders
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
	list, err := h.orders.List(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	return c.JSON(list)
}

// Get GET /api/raw-material-orders/:id
func (h *ProcurementHandler) Get(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	o, err := h.orders.Get(c.UserContext(), id)
	if err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	return c.JSON(o)
}

// Create POST /api/raw-material-orders
func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.orders.Create(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err, "raw material not found")
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

// Update PUT /api/raw-material-orders/:id (edición administrativa, no mueve stock)
func (h *ProcurementHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateRawMaterialOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.orders.Update(c.UserContext(), id, in); err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "order updated"})
}

// Delete DELETE /api/raw-material-orders/:id
func (h *ProcurementHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	if err := h.orders.Delete(c.UserContext(), id); err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "order deleted"})
}

// ExportXLSX GET /api/raw-material-orders/export.xlsx
func (h *ProcurementHandler) ExportXLSX(c *fiber.Ctx) error {
	b, err := h.orders.ExportXLSX(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgOrderNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="hammadde-siparisleri.xlsx"`)
	return c.Send(b)
}
