package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/memory"
)

type fakeRenderer struct {
	rows []dto.MaterialStockDTO
}

func (f *fakeRenderer) StockReport(_ context.Context, rows []dto.MaterialStockDTO) ([]byte, error) {
	f.rows = rows
	return []byte("%PDF"), nil
}

func newStockUseCase() (*memory.Store, *inventory.StockUseCase, *fakeRenderer) {
	store := memory.NewStore()
	store.AddMaterial(1, "Süet Kumaş", "m")
	store.AddMaterial(2, "Polyester İplik", "kg")
	store.SetStock(1, decimal.NewFromInt(8), decimal.NewFromInt(10))
	store.SetStock(2, decimal.NewFromInt(40), decimal.NewFromInt(10))
	r := &fakeRenderer{}
	uc := inventory.NewStockUseCase(store, store.Materials(), store.Stock(), store.MovementLog(), r)
	return store, uc, r
}

func TestListStock_MarcaCriticos(t *testing.T) {
	_, uc, _ := newStockUseCase()

	rows, err := uc.ListStock(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[int64]dto.MaterialStockDTO{}
	for _, r := range rows {
		byID[r.MaterialID] = r
	}
	assert.True(t, byID[1].Critical)
	assert.False(t, byID[2].Critical)

	n, err := uc.CriticalCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRestock_SumaYRegistraEntrada(t *testing.T) {
	store, uc, _ := newStockUseCase()

	got, err := uc.Restock(context.Background(), 1, dto.RestockRequest{Quantity: decimal.NewFromInt(15)})
	require.NoError(t, err)
	assert.True(t, got.CurrentQuantity.Equal(decimal.NewFromInt(23)))
	assert.False(t, got.Critical)

	cur, _ := store.CurrentStock(1)
	assert.True(t, cur.Equal(decimal.NewFromInt(23)))

	movs, err := uc.ListMovements(context.Background(), 1, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeIn, movs[0].Type)
	assert.Equal(t, "Restock 15", movs[0].Note)
	assert.NotEmpty(t, movs[0].TransactionID)
}

func TestRestock_FalloNoDejaRastro(t *testing.T) {
	store, uc, _ := newStockUseCase()
	store.FailOn(memory.OpCreateMovement, errors.New("sin conexión"))

	_, err := uc.Restock(context.Background(), 1, dto.RestockRequest{Quantity: decimal.NewFromInt(15)})
	require.Error(t, err)

	cur, _ := store.CurrentStock(1)
	assert.True(t, cur.Equal(decimal.NewFromInt(8)))
	assert.Empty(t, store.Movements())
}

func TestRestock_Validaciones(t *testing.T) {
	_, uc, _ := newStockUseCase()

	_, err := uc.Restock(context.Background(), 1, dto.RestockRequest{Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Restock(context.Background(), 99, dto.RestockRequest{Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ListMovements(context.Background(), 0, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockReportPDF_UsaElListado(t *testing.T) {
	_, uc, r := newStockUseCase()

	out, err := uc.StockReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	assert.Len(t, r.rows, 2)
}

func TestListMaterials(t *testing.T) {
	_, uc, _ := newStockUseCase()

	list, err := uc.ListMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Polyester İplik", list[0].Name)
}
