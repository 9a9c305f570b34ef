package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/application/maintenance"
	"github.com/jhoicas/tekstil-api/pkg/jwt"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

// MaintenanceHandler máquinas y reportes de falla.
type MaintenanceHandler struct {
	responder
	uc *maintenance.UseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *maintenance.UseCase, log *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{responder: newResponder(log, "maintenance_http"), uc: uc}
}

// ListMachines GET /api/machines
func (h *MaintenanceHandler) ListMachines(c *fiber.Ctx) error {
	out, err := h.uc.ListMachines(c.UserContext())
	if err != nil {
		return h.writeError(c, err, "machine not found")
	}
	return c.JSON(out)
}

// ListReports GET /api/machine-fault-reports?personnel_id=12&limit=5
// Un token de personal solo ve sus propios reportes.
func (h *MaintenanceHandler) ListReports(c *fiber.Ctx) error {
	personnelID := int64(c.QueryInt("personnel_id", 0))
	if own := tokenPersonnelID(c); own > 0 {
		personnelID = own
	}
	out, err := h.uc.ListReports(c.UserContext(), personnelID, queryPage(c))
	if err != nil {
		return h.writeError(c, err, "report not found")
	}
	return c.JSON(out)
}

// CreateReport godoc
// @Summary      Reportar una falla de máquina
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFaultReportRequest  true  "personnel_id, machine_id, fault_type, priority, title, description"
// @Success      201   {object}  dto.FaultReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/machine-fault-reports [post]
func (h *MaintenanceHandler) CreateReport(c *fiber.Ctx) error {
	var in dto.CreateFaultReportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if own := tokenPersonnelID(c); own > 0 {
		in.PersonnelID = own
	}
	out, err := h.uc.CreateReport(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err, "machine or personnel not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func tokenPersonnelID(c *fiber.Ctx) int64 {
	if GetRole(c) != jwt.RolePersonnel {
		return 0
	}
	id, _ := strconv.ParseInt(GetUserID(c), 10, 64)
	return id
}
