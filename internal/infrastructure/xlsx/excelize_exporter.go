// Package xlsx exporta el dashboard de ventas a un libro de Excel con Excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/application/dto"
)

// Hojas del libro exportado.
const (
	SheetKPIs         = "KPIs"
	SheetRegions      = "Regiones"
	SheetDistribution = "Distribucion"
)

var _ analytics.SpreadsheetExporter = (*ExcelizeExporter)(nil)

// ExcelizeExporter implementa analytics.SpreadsheetExporter.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportDashboardXLSX escribe tres hojas (KPIs, Regiones con gráfico de columnas y Distribucion)
// y devuelve los bytes del libro.
func (e *ExcelizeExporter) ExportDashboardXLSX(_ context.Context, summary *dto.DashboardSummaryDTO) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("xlsx: resumen vacío")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetKPIs); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := writeKPIs(f, summary); err != nil {
		return nil, err
	}
	if err := writeRegions(f, summary.Charts.Regions); err != nil {
		return nil, err
	}
	if err := writeDistribution(f, summary.Charts.Bins); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeKPIs(f *excelize.File, summary *dto.DashboardSummaryDTO) error {
	rows := [][]interface{}{
		{"Indicador", "Valor"},
		{"Total Sales", summary.KPIs.Total},
		{"Average Sale", summary.KPIs.Avg},
		{"Max Sale", summary.KPIs.Max},
		{"Registros", summary.KPIs.Count},
		{"Generado", summary.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	return writeRows(f, SheetKPIs, rows)
}

func writeRegions(f *excelize.File, regions []dto.RegionTotalDTO) error {
	if _, err := f.NewSheet(SheetRegions); err != nil {
		return fmt.Errorf("xlsx: crear hoja %s: %w", SheetRegions, err)
	}
	rows := [][]interface{}{{"region", "amount"}}
	for _, r := range regions {
		rows = append(rows, []interface{}{r.Region, r.Amount.InexactFloat64()})
	}
	if err := writeRows(f, SheetRegions, rows); err != nil {
		return err
	}
	if len(regions) == 0 {
		return nil
	}

	last := len(regions) + 1
	err := f.AddChart(SheetRegions, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", SheetRegions),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetRegions, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", SheetRegions, last),
		}},
		Title: []excelize.RichTextRun{{Text: analytics.TitleSalesByRegion}},
	})
	if err != nil {
		return fmt.Errorf("xlsx: gráfico de regiones: %w", err)
	}
	return nil
}

func writeDistribution(f *excelize.File, bins []dto.HistogramBinDTO) error {
	if _, err := f.NewSheet(SheetDistribution); err != nil {
		return fmt.Errorf("xlsx: crear hoja %s: %w", SheetDistribution, err)
	}
	rows := [][]interface{}{{"desde", "hasta", "ventas"}}
	for _, b := range bins {
		rows = append(rows, []interface{}{b.Start, b.End, b.Count})
	}
	return writeRows(f, SheetDistribution, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		values := values
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: escribir fila %d de %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
