package http_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/jhoicas/tekstil-api/internal/interfaces/http"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

func newErrorApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("conexión perdida") })
	return app
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	code, body := doJSON(t, newErrorApp(), http.MethodGet, "/no-existe", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "ROUTE_NOT_FOUND", body["code"])
	assert.Equal(t, false, body["success"])
}

func TestErrorHandler_ErrorInternoNoSeFiltra(t *testing.T) {
	code, body := doJSON(t, newErrorApp(), http.MethodGet, "/boom", "", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "internal server error", body["error"])
}
