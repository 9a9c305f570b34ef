// Package export genera hojas de cálculo con excelize.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	appproc "github.com/jhoicas/tekstil-api/internal/application/procurement"
)

// OrdersSheetName nombre de la hoja del listado de órdenes.
const OrdersSheetName = "Siparisler"

var ordersHeaders = []string{
	"Sipariş No", "Hammadde", "Birim", "Miktar", "Sipariş Tarihi", "Tahmini Teslim", "Durum",
}

var _ appproc.OrderSheetExporter = (*ExcelExporter)(nil)

// ExcelExporter implementa procurement.OrderSheetExporter.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// OrdersSheet un .xlsx con una fila por orden y la etiqueta turca del estado.
func (e *ExcelExporter) OrdersSheet(rows []dto.RawMaterialOrderDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OrdersSheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, h := range ordersHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(OrdersSheetName, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(ordersHeaders), 1)
	if err := f.SetCellStyle(OrdersSheetName, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		qty, _ := r.Quantity.Float64()
		values := []any{r.ID, r.MaterialName, r.Unit, qty, r.OrderDate, r.EstimatedDelivery, r.StatusLabel}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(OrdersSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(OrdersSheetName, "B", "B", 28)
	_ = f.SetColWidth(OrdersSheetName, "E", "G", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
