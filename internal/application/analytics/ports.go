package analytics

import (
	"context"

	"github.com/jhoicas/ventas-bi/internal/application/dto"
)

// QueryRecorder recibe el resultado de cada consulta del dashboard (implementado por infrastructure/metrics).
type QueryRecorder interface {
	ObserveQuery(ok bool, rows int)
}

// PDFGenerator genera el reporte imprimible del dashboard.
type PDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, summary *dto.DashboardSummaryDTO) ([]byte, error)
}

// SpreadsheetExporter exporta el resumen del dashboard a una hoja de cálculo.
type SpreadsheetExporter interface {
	ExportDashboardXLSX(ctx context.Context, summary *dto.DashboardSummaryDTO) ([]byte, error)
}

type noopQueryRecorder struct{}

func (noopQueryRecorder) ObserveQuery(bool, int) {}
