package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/application/sales"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

const msgCustomerOrderNotFound = "order not found"

// CustomerHandler clientes, catálogo y pedidos de clientes.
type CustomerHandler struct {
	responder
	uc *sales.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *sales.UseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{responder: newResponder(log, "sales_http"), uc: uc}
}

// Register godoc
// @Summary      Registro de cliente
// @Description  Asigna el menor id libre y devuelve el código M01.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "first_name, last_name, city, password, confirm_password"
// @Success      201   {object}  dto.RegisterCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers/register [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err, "customer not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCustomers(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "customer not found")
	}
	return c.JSON(out)
}

// ListProducts GET /api/products (modelos de vehículo)
func (h *CustomerHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "product not found")
	}
	return c.JSON(out)
}

// ProductPrice GET /api/products/:modelId/price
func (h *CustomerHandler) ProductPrice(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "modelId")
	if !ok {
		return err
	}
	out, err := h.uc.ProductPrice(c.UserContext(), id)
	if err != nil {
		return h.writeError(c, err, "product not found")
	}
	return c.JSON(out)
}

// CreateOrder godoc
// @Summary      Crear pedido de cliente
// @Tags         customer-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerOrderRequest  true  "model_id, quantity"
// @Success      201   {object}  dto.CreateCustomerOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *CustomerHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateCustomerOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateOrder(c.UserContext(), h.targetCustomer(c), in)
	if err != nil {
		return h.writeError(c, err, "customer or product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyOrders GET /api/customer/orders?limit=50
func (h *CustomerHandler) MyOrders(c *fiber.Ctx) error {
	out, err := h.uc.CustomerOrders(c.UserContext(), h.targetCustomer(c), queryPage(c))
	if err != nil {
		return h.writeError(c, err, msgCustomerOrderNotFound)
	}
	return c.JSON(out)
}

// MySummary GET /api/customer/orders/summary
func (h *CustomerHandler) MySummary(c *fiber.Ctx) error {
	out, err := h.uc.CustomerSummary(c.UserContext(), h.targetCustomer(c))
	if err != nil {
		return h.writeError(c, err, msgCustomerOrderNotFound)
	}
	return c.JSON(out)
}

// ListOrders GET /api/admin/orders
func (h *CustomerHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgCustomerOrderNotFound)
	}
	return c.JSON(out)
}

// UpdateOrder PUT /api/admin/orders/:id
func (h *CustomerHandler) UpdateOrder(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateCustomerOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpdateOrder(c.UserContext(), id, in); err != nil {
		return h.writeError(c, err, msgCustomerOrderNotFound)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "order updated"})
}

// DeleteOrder DELETE /api/admin/orders/:id
func (h *CustomerHandler) DeleteOrder(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteOrder(c.UserContext(), id); err != nil {
		return h.writeError(c, err, msgCustomerOrderNotFound)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "order deleted"})
}

// targetCustomer el cliente del token; un admin puede indicar ?customer_id=.
func (h *CustomerHandler) targetCustomer(c *fiber.Ctx) int64 {
	if id := customerID(c); id > 0 {
		return id
	}
	return int64(c.QueryInt("customer_id", 0))
}
