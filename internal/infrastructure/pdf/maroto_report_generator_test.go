package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/application/dto"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/infrastructure/pdf"
)

func TestGenerateDashboardPDF_ConDatos(t *testing.T) {
	rows := []entity.SalesRow{
		{Region: "North", Amount: decimal.NewFromInt(10)},
		{Region: "South", Amount: decimal.NewFromInt(20)},
	}
	summary := &dto.DashboardSummaryDTO{
		KPIs:        analytics.ComputeKPIs(rows),
		Charts:      analytics.BuildCharts(rows),
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	doc, err := pdf.NewMarotoReportGenerator().GenerateDashboardPDF(context.Background(), summary)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateDashboardPDF_SinDatos(t *testing.T) {
	summary := &dto.DashboardSummaryDTO{KPIs: analytics.ComputeKPIs(nil)}

	doc, err := pdf.NewMarotoReportGenerator().GenerateDashboardPDF(context.Background(), summary)

	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestGenerateDashboardPDF_ResumenNil(t *testing.T) {
	_, err := pdf.NewMarotoReportGenerator().GenerateDashboardPDF(context.Background(), nil)

	assert.Error(t, err)
}
