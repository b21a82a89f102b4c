// Package pdf implementa el reporte imprimible del dashboard de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Total Sales │ Average Sale │ Max Sale │ Registros      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sales by Region (región | amount)                   │
//	│  TABLA: Sales Amount Distribution (intervalo | conteo)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/application/dto"
)

// ReportTitle título del dashboard, también usado en el PDF.
const ReportTitle = "ETL SQL BI Analytics Dashboard"

// ── Paleta de colores (la misma de las tarjetas del dashboard) ───────────────

var (
	colorBlue   = &props.Color{Red: 31, Green: 119, Blue: 180}
	colorOrange = &props.Color{Red: 255, Green: 127, Blue: 14}
	colorGreen  = &props.Color{Red: 44, Green: 160, Blue: 44}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(_ context.Context, summary *dto.DashboardSummaryDTO) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(ReportTitle, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBlue, Thickness: 0.5}))
	m.AddRows(kpiRow(summary.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBlue, Thickness: 0.3}))

	if summary.Charts.Empty() {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin datos de ventas.", props.Text{Size: 10, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	} else {
		m.AddRows(sectionTitle(analytics.TitleSalesByRegion))
		m.AddRows(tableHeader("Región", "Amount"))
		for _, r := range summary.Charts.Regions {
			m.AddRows(tableRow(r.Region, "$"+r.Amount.StringFixedBank(2)))
		}

		m.AddRows(line.NewRow(4))
		m.AddRows(sectionTitle(analytics.TitleAmountDistribution))
		m.AddRows(tableHeader("Intervalo", "Ventas"))
		for _, b := range summary.Charts.Bins {
			m.AddRows(tableRow(
				fmt.Sprintf("%.2f - %.2f", b.Start, b.End),
				strconv.Itoa(b.Count),
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(summary *dto.DashboardSummaryDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New(ReportTitle, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorBlue, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+summary.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 5,
		})),
	)
}

// kpiRow: las tres tarjetas del dashboard más el conteo de registros.
func kpiRow(k dto.KPIsDTO) core.Row {
	card := func(title, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2}),
			text.New(value, props.Text{Size: 14, Align: align.Center, Color: color, Top: 9}),
		)
	}
	return row.New(22).Add(
		card("Total Sales", k.Total, colorBlue),
		card("Average Sale", k.Avg, colorOrange),
		card("Max Sale", k.Max, colorGreen),
		card("Registros", strconv.Itoa(k.Count), colorGray),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorBlue, Top: 2,
	})))
}

func tableHeader(left, right string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(left, props.Text{Style: fontstyle.Bold, Size: 8, Left: 1})),
		col.New(4).Add(text.New(right, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 1})),
	)
}

func tableRow(left, right string) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(left, props.Text{Size: 8, Left: 1})),
		col.New(4).Add(text.New(right, props.Text{Size: 8, Align: align.Right, Right: 1})),
	)
}
