package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/auth"
	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

// AuthHandler login de los cuatro paneles.
type AuthHandler struct {
	responder
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{responder: newResponder(log, "auth_http"), uc: uc}
}

// LoginAdmin godoc
// @Summary      Login del administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login/admin [post]
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "username and password are required")
	}
	out, err := h.uc.LoginAdmin(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err, "user not found")
	}
	return c.JSON(out)
}

// LoginFactory POST /api/login/factory
func (h *AuthHandler) LoginFactory(c *fiber.Ctx) error {
	return h.codeLogin(c, h.uc.LoginFactory)
}

// LoginPersonnel POST /api/login/personnel
func (h *AuthHandler) LoginPersonnel(c *fiber.Ctx) error {
	return h.codeLogin(c, h.uc.LoginPersonnel)
}

// LoginCustomer godoc
// @Summary      Login de cliente con código M05 y contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CodeLoginRequest  true  "code, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login/customer [post]
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	return h.codeLogin(c, h.uc.LoginCustomer)
}

func (h *AuthHandler) codeLogin(c *fiber.Ctx, login func(context.Context, dto.CodeLoginRequest) (*dto.LoginResponse, error)) error {
	var in dto.CodeLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Code == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "code and password are required")
	}
	out, err := login(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err, "user not found")
	}
	return c.JSON(out)
}
