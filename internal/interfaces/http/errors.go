package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

// responder traduce errores de dominio a respuestas JSON. Los 500 se registran con el
// error completo y al cliente solo le llega un mensaje genérico.
type responder struct {
	log *logger.Logger
}

func newResponder(log *logger.Logger, component string) responder {
	if log == nil {
		log = logger.Nop()
	}
	return responder{log: log.Component(component)}
}

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: msg})
}

// writeError mapea err al código HTTP. notFound es el mensaje del 404 de ese recurso.
func (r responder) writeError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		return fail(c, fiber.StatusBadRequest, "INVALID_STATUS", "invalid status")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "resource already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "access denied")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	}

	var txErr *domain.TransactionError
	isTx := errors.As(err, &txErr)
	r.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Bool("transaction", isTx).
		Msg("error interno")

	body := dto.ErrorResponse{Success: false, Code: "INTERNAL", Message: "internal server error"}
	if errors.Is(err, domain.ErrLockTimeout) {
		body.Code = "TX_LOCK_TIMEOUT"
		body.Message = "order is locked by another request, try again"
	}
	body.Retryable = domain.IsRetryable(err)
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// paramID lee un :id numérico positivo. ok=false ya respondió 400.
func paramID(c *fiber.Ctx, name string) (int64, bool, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fail(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id")
	}
	return id, true, nil
}

// queryPage lee ?limit= y ?offset=; valores no numéricos cuentan como ausentes.
func queryPage(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
}

// ErrorHandler errores que llegan a Fiber sin pasar por un handler (404 de ruta, 405, panics
// recuperados) con el mismo sobre JSON que el resto de la API.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	r := newResponder(log, "http")
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "ROUTE_NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			}
			if fe.Code < fiber.StatusInternalServerError {
				return fail(c, fe.Code, code, fe.Message)
			}
		}
		return r.writeError(c, err, "not found")
	}
}
