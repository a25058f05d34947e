// Package pdf implementa la representación gráfica del reporte de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: nombre de la app + fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: ventas / ingresos / unidades / ticket promedio    │
//	│  VALOR DE INVENTARIO                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: productos con stock bajo (SKU | Nombre | Stock | Mín)│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/inventoree/inventoree-api/internal/application/analytics"
	"github.com/inventoree/inventoree-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, data *dto.SalesReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Report", true).
		WithAuthor(data.AppName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(lowStockHeaderRow())
	for _, r := range lowStockRows(data.LowStock) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la app (izq) y fecha + período (der).
func headerRow(data *dto.SalesReportData) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(data.AppName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sales Report", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Last %d days", data.Analytics.PeriodDays), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// metricsRows: pares etiqueta/valor de las métricas del período.
func metricsRows(data *dto.SalesReportData) []core.Row {
	pairs := []struct {
		label string
		value string
	}{
		{"Total sales", fmt.Sprintf("%d", data.Analytics.TotalSales)},
		{"Total revenue", data.Analytics.TotalRevenue.StringFixed(2)},
		{"Units sold", fmt.Sprintf("%d", data.Analytics.TotalQuantitySold)},
		{"Average order value", data.Analytics.AverageOrderValue.StringFixed(2)},
		{"Inventory value", data.TotalInventoryValue.StringFixed(2)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.label, props.Text{Size: 9, Color: colorGray})),
			col.New(6).Add(text.New(p.value, props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold})),
		))
	}
	return rows
}

func lowStockHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(3).Add(text.New("SKU", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(5).Add(text.New("Product", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(2).Add(text.New("Stock", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right})),
		col.New(2).Add(text.New("Min", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right})),
	)
}

func lowStockRows(products []dto.ProductResponse) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(6).Add(
			col.New(12).Add(text.New("No products below minimum stock.", props.Text{Size: 9, Color: colorGray})),
		)}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(p.SKU, props.Text{Size: 8})),
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.MinQuantity), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}
