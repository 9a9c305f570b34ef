// Package pdf genera el reporte de stock de materias primas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título      │  Fecha del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Malzeme | Birim | Mevcut | Minimum | Durum           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de materias / críticas                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	appinv "github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/pkg/trformat"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 180, Green: 20, Blue: 20}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinv.StockReportRenderer = (*StockReportGenerator)(nil)

// StockReportGenerator implementa inventory.StockReportRenderer usando Maroto v2.
type StockReportGenerator struct {
	company string
	now     func() time.Time
}

// NewStockReportGenerator construye el generador; company aparece en el encabezado.
func NewStockReportGenerator(company string) *StockReportGenerator {
	return &StockReportGenerator{company: company, now: time.Now}
}

// StockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) StockReport(_ context.Context, rows []dto.MaterialStockDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hammadde Stok Raporu", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StockReportGenerator) headerRow() core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(latin(g.company), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(latin("Hammadde Stok Raporu"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Tarih: "+trformat.FormatDate(g.now()), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(latin(label), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Malzeme", 5, align.Left),
		h("Birim", 1, align.Center),
		h("Mevcut", 2, align.Right),
		h("Minimum", 2, align.Right),
		h("Durum", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por materia; las críticas en rojo.
func tableRows(rows []dto.MaterialStockDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		status, color := "Normal", colorGray
		if r.Critical {
			status, color = "Kritik", colorCritical
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(latin(r.MaterialName), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(latin(r.Unit), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.CurrentQuantity.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.MinQuantity.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(status, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: color})),
		))
	}
	return result
}

func summaryRow(rows []dto.MaterialStockDTO) core.Row {
	critical := 0
	for _, r := range rows {
		if r.Critical {
			critical++
		}
	}
	return row.New(10).Add(
		col.New(12).Add(text.New(
			latin(fmt.Sprintf("Toplam malzeme: %d   |   Kritik seviyede: %d", len(rows), critical)),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3, Right: 1},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// La fuente base de gofpdf es cp1252: las letras turcas fuera de ese juego se transliteran.
var turkishLatin = strings.NewReplacer(
	"ş", "s", "Ş", "S",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
)

func latin(s string) string { return turkishLatin.Replace(s) }
