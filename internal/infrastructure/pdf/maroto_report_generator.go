// Package pdf implementa el renderizado del reporte de ventas con Maroto v2.
//
// Layout de la página A4, en orden:
//
//	┌──────────────────────────────────────────────┐
//	│  SALES REPORT                                │
//	│  Generated: <timestamp>                      │
//	│  ──────────────────────────────────────────  │
//	│  FILTERS: Start Date / End Date / Product    │
//	│  ──────────────────────────────────────────  │
//	│  "No data" │ o │ SUMMARY + bloque por venta  │
//	└──────────────────────────────────────────────┘
//
// La paginación la maneja Maroto: cuando el contenido desborda la página se
// abre una nueva automáticamente.
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain/report"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Formateo de montos con separador de miles.
var moneyPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, doc report.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Sales Report", true).
		WithAuthor("Sales Management System", true).
		WithCreationDate(doc.GeneratedAt).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filtersRows(doc.Filters)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if !doc.HasData {
		m.AddRows(noDataRow())
	} else {
		m.AddRows(summaryRows(doc.Summary)...)
		m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitle("DETAILS"))
		for _, d := range doc.Details {
			m.AddRows(detailRows(d)...)
		}
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(doc report.Document) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New("SALES REPORT", props.Text{
					Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Generated: "+doc.GeneratedAt.Format(time.RFC1123), props.Text{
					Size: 9, Color: colorGray,
				}),
			),
		),
	}
}

func filtersRows(f report.DocumentFilters) []core.Row {
	return []core.Row{
		sectionTitle("FILTERS"),
		labelValueRow("Start Date:", f.StartDate),
		labelValueRow("End Date:", f.EndDate),
		labelValueRow("Product:", f.ProductID),
	}
}

func noDataRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("No sales data found for the specified criteria.", props.Text{
				Size: 12, Align: align.Center, Top: 4,
			}),
		),
	)
}

func summaryRows(s report.Summary) []core.Row {
	return []core.Row{
		sectionTitle("SUMMARY"),
		labelValueRow("Total Sales:", money(s.TotalSales)),
		labelValueRow("Total Items:", fmt.Sprintf("%d", s.TotalItems)),
		labelValueRow("Average Order Value:", money(s.AverageOrderValue)),
	}
}

func detailRows(d report.DetailRow) []core.Row {
	return []core.Row{
		labelValueRow("ID:", fmt.Sprintf("%d", d.ID)),
		labelValueRow("Date:", d.Date.Format("02/01/2006")),
		labelValueRow("Product:", d.Product),
		labelValueRow("Quantity:", fmt.Sprintf("%d", d.Quantity)),
		labelValueRow("Unit Price:", money(d.UnitPrice)),
		labelValueRow("Total:", money(d.Total)),
		row.New(6).Add(
			col.New(12).Add(
				text.New("------------------------", props.Text{Size: 9, Color: colorGray}),
			),
		),
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func labelValueRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 10}),
		),
		col.New(9).Add(
			text.New(value, props.Text{Size: 10}),
		),
	)
}

func money(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("$%.2f", d.InexactFloat64())
}
