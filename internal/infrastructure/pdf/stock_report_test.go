package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
)

func TestStockReport_GeneraPDF(t *testing.T) {
	g := NewStockReportGenerator("Gündoğdu Tekstil")
	g.now = func() time.Time { return time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC) }

	rows := []dto.MaterialStockDTO{
		{MaterialID: 1, MaterialName: "Sünger", Unit: "m2", CurrentQuantity: decimal.NewFromInt(120), MinQuantity: decimal.NewFromInt(50)},
		{MaterialID: 2, MaterialName: "İplik", Unit: "kg", CurrentQuantity: decimal.NewFromInt(4), MinQuantity: decimal.NewFromInt(10), Critical: true},
	}
	out, err := g.StockReport(context.Background(), rows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestStockReport_SinFilas(t *testing.T) {
	out, err := NewStockReportGenerator("Gündoğdu Tekstil").StockReport(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLatin_TransliteraLetrasTurcas(t *testing.T) {
	assert.Equal(t, "Gundogdu Iplik sis", latin("Gundoğdu İplik şıs"))
}
