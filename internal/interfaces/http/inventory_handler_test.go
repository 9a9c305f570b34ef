package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tekstil-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/tekstil-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tekstil-api/pkg/jwt"
)

// newInventoryApp materia 7 con stock holgado y materia 8 por debajo del mínimo.
func newInventoryApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.AddMaterial(7, "Pamuk İplik", "kg")
	store.SetStock(7, decimal.NewFromInt(100), decimal.NewFromInt(20))
	store.AddMaterial(8, "Polyester Kumaş", "m")
	store.SetStock(8, decimal.NewFromInt(10), decimal.NewFromInt(20))

	uc := inventory.NewStockUseCase(store, store.Materials(), store.Stock(), store.MovementLog(), infrapdf.NewStockReportGenerator("Tekstil"))
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Stock: uc, JWTSecret: testJWTSecret})
	return app, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_SumaStockYRegistraMovimiento(t *testing.T) {
	app, store := newInventoryApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/raw-materials/7/restock", `{"quantity":"50"}`, tokenFor(t, pkgjwt.RoleFactory))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "150", body["current_quantity"])
	assert.Equal(t, false, body["critical"])

	v, _ := store.CurrentStock(7)
	assert.True(t, v.Equal(decimal.NewFromInt(150)))
	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, "IN", movs[0].Type)
	assert.Equal(t, "Restock 50", movs[0].Note)
}

func TestRestock_CantidadNoPositiva_Retorna400(t *testing.T) {
	app, store := newInventoryApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/raw-materials/7/restock", `{"quantity":"0"}`, tokenFor(t, pkgjwt.RoleFactory))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, store.Movements())
}

func TestRestock_MateriaInexistente_Retorna404(t *testing.T) {
	app, _ := newInventoryApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/raw-materials/99/restock", `{"quantity":"5"}`, tokenFor(t, pkgjwt.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "raw material not found", body["error"])
}

func TestRestock_Personal_Retorna403(t *testing.T) {
	app, store := newInventoryApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/api/raw-materials/7/restock", `{"quantity":"5"}`, tokenFor(t, pkgjwt.RolePersonnel))
	assert.Equal(t, http.StatusForbidden, code)
	v, _ := store.CurrentStock(7)
	assert.True(t, v.Equal(decimal.NewFromInt(100)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestCriticalCount_CuentaSoloBajoMinimo(t *testing.T) {
	app, _ := newInventoryApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/api/raw-material-stock/critical-count", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["critical_count"])
}

func TestListMovements_IDInvalido_Retorna400(t *testing.T) {
	app, _ := newInventoryApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/api/raw-materials/0/movements", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_ID", body["code"])
}

func TestStockReportPDF_DevuelvePDF(t *testing.T) {
	app, _ := newInventoryApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/raw-material-stock/report.pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(raw) > 4 && string(raw[:4]) == "%PDF")
}
