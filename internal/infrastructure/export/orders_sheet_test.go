package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
)

func TestOrdersSheet_CabeceraYFilas(t *testing.T) {
	rows := []dto.RawMaterialOrderDTO{
		{ID: 7, MaterialName: "İplik", Unit: "kg", Quantity: decimal.RequireFromString("12.5"),
			OrderDate: "03.10.2025", EstimatedDelivery: "14.10.2025", StatusLabel: "Teslim Edildi"},
		{ID: 8, MaterialName: "Kumaş", Unit: "m", Quantity: decimal.NewFromInt(40),
			OrderDate: "04.10.2025", EstimatedDelivery: "15.10.2025", StatusLabel: "Beklemede"},
	}

	out, err := NewExcelExporter().OrdersSheet(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(OrdersSheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Sipariş No", got[0][0])
	assert.Equal(t, "Durum", got[0][6])
	assert.Equal(t, []string{"7", "İplik", "kg", "12.5", "03.10.2025", "14.10.2025", "Teslim Edildi"}, got[1])
	assert.Equal(t, "Beklemede", got[2][6])
}

func TestOrdersSheet_Vacio(t *testing.T) {
	out, err := NewExcelExporter().OrdersSheet(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(OrdersSheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
