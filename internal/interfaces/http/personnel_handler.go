package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/application/personnel"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

const msgRuleNotFound = "reward rule not found"

// PersonnelHandler personal, eficiencia y reglas de premios.
type PersonnelHandler struct {
	responder
	uc *personnel.UseCase
}

// NewPersonnelHandler construye el handler.
func NewPersonnelHandler(uc *personnel.UseCase, log *logger.Logger) *PersonnelHandler {
	return &PersonnelHandler{responder: newResponder(log, "personnel_http"), uc: uc}
}

// ListPersonnel GET /api/admin/personnel
func (h *PersonnelHandler) ListPersonnel(c *fiber.Ctx) error {
	out, err := h.uc.ListPersonnel(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "personnel not found")
	}
	return c.JSON(out)
}

// EmployeeAverages GET /api/performance/employee-averages
func (h *PersonnelHandler) EmployeeAverages(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeAverages(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "personnel not found")
	}
	return c.JSON(out)
}

// ListActiveRules GET /api/rewards/rules
func (h *PersonnelHandler) ListActiveRules(c *fiber.Ctx) error {
	out, err := h.uc.ListRules(c.UserContext(), false)
	if err != nil {
		return h.writeError(c, err, msgRuleNotFound)
	}
	return c.JSON(out)
}

// ListAllRules GET /api/rewards/rules/all
func (h *PersonnelHandler) ListAllRules(c *fiber.Ctx) error {
	out, err := h.uc.ListRules(c.UserContext(), true)
	if err != nil {
		return h.writeError(c, err, msgRuleNotFound)
	}
	return c.JSON(out)
}

// CreateRule godoc
// @Summary      Crear regla de premio
// @Tags         rewards
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRewardRuleRequest  true  "min_percentage, max_percentage, reward_type, amount, description"
// @Success      201   {object}  dto.RewardRuleDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rewards/rules [post]
func (h *PersonnelHandler) CreateRule(c *fiber.Ctx) error {
	var in dto.CreateRewardRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateRule(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err, msgRuleNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateRule PUT /api/rewards/rules/:id (parcial)
func (h *PersonnelHandler) UpdateRule(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateRewardRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateRule(c.UserContext(), id, in)
	if err != nil {
		return h.writeError(c, err, msgRuleNotFound)
	}
	return c.JSON(out)
}

// DeleteRule DELETE /api/rewards/rules/:id
func (h *PersonnelHandler) DeleteRule(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteRule(c.UserContext(), id); err != nil {
		return h.writeError(c, err, msgRuleNotFound)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "rule deleted"})
}

// EmployeeRewards GET /api/rewards/employee-rewards
func (h *PersonnelHandler) EmployeeRewards(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeRewards(c.UserContext())
	if err != nil {
		return h.writeError(c, err, msgRuleNotFound)
	}
	return c.JSON(out)
}
