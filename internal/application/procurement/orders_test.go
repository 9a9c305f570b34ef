package procurement_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	appproc "github.com/jhoicas/tekstil-api/internal/application/procurement"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/procurement"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/memory"
)

type fakeExporter struct {
	rows []dto.RawMaterialOrderDTO
}

func (f *fakeExporter) OrdersSheet(rows []dto.RawMaterialOrderDTO) ([]byte, error) {
	f.rows = rows
	return []byte("xlsx"), nil
}

func newOrderUseCase(t *testing.T) (*memory.Store, *appproc.OrderUseCase, *fakeExporter) {
	t.Helper()
	store := memory.NewStore()
	store.AddMaterial(materialID, "Süet Kumaş", "m")
	store.SetStock(materialID, dec("100"), dec("10"))
	exp := &fakeExporter{}
	uc := appproc.NewOrderUseCase(store.Orders(), store.Materials(), exp, appproc.OrderConfig{DeliveryLeadBusinessDays: 7})
	return store, uc, exp
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderList_FechasYEtiquetas(t *testing.T) {
	store, uc, _ := newOrderUseCase(t)
	first := store.AddOrder(materialID, dec("12.5"), procurement.StatusPending)
	second := store.AddOrder(materialID, dec("3"), procurement.StatusDelivered)

	rows, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// más recientes primero
	assert.Equal(t, second, rows[0].ID)
	assert.Equal(t, first, rows[1].ID)

	assert.Equal(t, "Süet Kumaş", rows[1].MaterialName)
	assert.Equal(t, "03.10.2025", rows[1].OrderDate)
	assert.Equal(t, "14.10.2025", rows[1].EstimatedDelivery, "7 días hábiles desde un viernes")
	assert.Equal(t, "PENDING", rows[1].Status)
	assert.Equal(t, "Beklemede", rows[1].StatusLabel)
	assert.Equal(t, "Teslim Edildi", rows[0].StatusLabel)
}

func TestOrderExportXLSX_UsaElMismoListado(t *testing.T) {
	store, uc, exp := newOrderUseCase(t)
	store.AddOrder(materialID, dec("1"), procurement.StatusApproved)

	out, err := uc.ExportXLSX(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), out)
	require.Len(t, exp.rows, 1)
	assert.Equal(t, "APPROVED", exp.rows[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_QuedaPendiente(t *testing.T) {
	store, uc, _ := newOrderUseCase(t)
	qty := dec("40")

	got, err := uc.Create(context.Background(), dto.CreateRawMaterialOrderRequest{
		MaterialID: materialID,
		Quantity:   &qty,
		OrderDate:  "2025-10-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", got.Status)
	assert.Equal(t, "03.10.2025", got.OrderDate)
	assert.Equal(t, "m", got.Unit)

	st, ok := store.OrderStatus(got.ID)
	require.True(t, ok)
	assert.Equal(t, procurement.StatusPending, st)
	assertStock(t, store, "100")
}

func TestOrderCreate_CamposHeredadosYFechaPorDefecto(t *testing.T) {
	_, uc, _ := newOrderUseCase(t)
	qty := dec("2")

	got, err := uc.Create(context.Background(), dto.CreateRawMaterialOrderRequest{
		LegacyMaterialID: materialID,
		LegacyQuantity:   &qty,
	})
	require.NoError(t, err)
	assert.Equal(t, materialID, got.MaterialID)
	assert.NotEmpty(t, got.OrderDate)
	assert.NotEmpty(t, got.EstimatedDelivery)
}

func TestOrderCreate_Validaciones(t *testing.T) {
	_, uc, _ := newOrderUseCase(t)
	zero := dec("0")
	qty := dec("5")

	_, err := uc.Create(context.Background(), dto.CreateRawMaterialOrderRequest{MaterialID: materialID, Quantity: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateRawMaterialOrderRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateRawMaterialOrderRequest{MaterialID: materialID, Quantity: &qty, OrderDate: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateRawMaterialOrderRequest{MaterialID: 77, Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y baja
// ──────────────────────────────────────────────────────────────────────────────

// Un "status" en el body de la edición se ignora; la entrega posterior sigue descontando.
func TestOrderUpdate_ConservaEstadoYEntregaPosteriorDescuenta(t *testing.T) {
	store, uc, _ := newOrderUseCase(t)
	id := store.AddOrder(materialID, dec("30"), procurement.StatusPending)

	var in dto.UpdateRawMaterialOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"material_id":3,"quantity":"35","order_date":"04.10.2025","status":"Teslim Edildi"}`), &in))
	require.NoError(t, uc.Update(context.Background(), id, in))

	st, _ := store.OrderStatus(id)
	assert.Equal(t, procurement.StatusPending, st)
	assertStock(t, store, "100")
	assert.Empty(t, store.Movements())

	got, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "04.10.2025", got.OrderDate)
	assert.True(t, got.Quantity.Equal(dec("35")))

	fulfillment := appproc.NewFulfillmentUseCase(store, nil, nil, appproc.FulfillmentConfig{TxTimeout: 2 * time.Second})
	res, err := fulfillment.ForceDeliver(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, res.StockUpdated)
	assertStock(t, store, "65")
	require.Len(t, store.Movements(), 1)
}

// Una orden ya entregada sigue entregada tras editar sus campos.
func TestOrderUpdate_NoReabreOrdenEntregada(t *testing.T) {
	store, uc, _ := newOrderUseCase(t)
	id := store.AddOrder(materialID, dec("30"), procurement.StatusDelivered)

	require.NoError(t, uc.Update(context.Background(), id, dto.UpdateRawMaterialOrderRequest{
		MaterialID: materialID,
		Quantity:   dec("12"),
		OrderDate:  "2025-10-03",
	}))

	st, _ := store.OrderStatus(id)
	assert.Equal(t, procurement.StatusDelivered, st)
	assertStock(t, store, "100")
}

func TestOrderUpdate_Errores(t *testing.T) {
	store, uc, _ := newOrderUseCase(t)
	id := store.AddOrder(materialID, dec("30"), procurement.StatusPending)
	base := dto.UpdateRawMaterialOrderRequest{MaterialID: materialID, Quantity: dec("1"), OrderDate: "2025-10-03"}

	bad := base
	bad.Quantity = dec("0")
	assert.ErrorIs(t, uc.Update(context.Background(), id, bad), domain.ErrInvalidInput)

	bad = base
	bad.OrderDate = "32.13.2025"
	assert.ErrorIs(t, uc.Update(context.Background(), id, bad), domain.ErrInvalidInput)

	assert.ErrorIs(t, uc.Update(context.Background(), 4242, base), domain.ErrNotFound)
}

func TestOrderDelete(t *testing.T) {
	store, uc, _ := newOrderUseCase(t)
	id := store.AddOrder(materialID, dec("30"), procurement.StatusPending)

	require.NoError(t, uc.Delete(context.Background(), id))
	_, ok := store.OrderStatus(id)
	assert.False(t, ok)

	assert.ErrorIs(t, uc.Delete(context.Background(), id), domain.ErrNotFound)
	_, err := uc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
