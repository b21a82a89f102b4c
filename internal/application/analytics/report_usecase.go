package analytics

import (
	"context"
	"fmt"
)

// ReportUseCase genera las versiones descargables (PDF y XLSX) del dashboard.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	pdf       PDFGenerator
	xlsx      SpreadsheetExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, pdf PDFGenerator, xlsx SpreadsheetExporter) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, pdf: pdf, xlsx: xlsx}
}

// PDF devuelve el reporte del estado actual del dashboard.
func (uc *ReportUseCase) PDF(ctx context.Context) ([]byte, error) {
	doc, err := uc.pdf.GenerateDashboardPDF(ctx, uc.dashboard.GetSummary(ctx))
	if err != nil {
		return nil, fmt.Errorf("reporte PDF: %w", err)
	}
	return doc, nil
}

// XLSX devuelve la hoja de cálculo del estado actual del dashboard.
func (uc *ReportUseCase) XLSX(ctx context.Context) ([]byte, error) {
	doc, err := uc.xlsx.ExportDashboardXLSX(ctx, uc.dashboard.GetSummary(ctx))
	if err != nil {
		return nil, fmt.Errorf("exportar XLSX: %w", err)
	}
	return doc, nil
}
