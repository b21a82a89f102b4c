package analytics_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
)

func TestBuildCharts_SinFilasDevuelveFigurasVacias(t *testing.T) {
	charts := analytics.BuildCharts(nil)

	assert.True(t, charts.Empty())
	raw, err := json.Marshal(charts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sales_by_region":{},"amount_distribution":{}}`, string(raw))
}

func TestBuildCharts_SumaPorRegionOrdenada(t *testing.T) {
	charts := analytics.BuildCharts([]entity.SalesRow{
		row("South", "5"),
		row("North", "10"),
		row("South", "7.5"),
		row("East", "1"),
	})

	require.Len(t, charts.Regions, 3)
	assert.Equal(t, "East", charts.Regions[0].Region)
	assert.Equal(t, "North", charts.Regions[1].Region)
	assert.Equal(t, "South", charts.Regions[2].Region)
	assert.Equal(t, "12.5", charts.Regions[2].Amount.String())

	trace := charts.SalesByRegion.Data[0]
	assert.Equal(t, "bar", trace.Type)
	assert.Equal(t, []string{"East", "North", "South"}, trace.X)
	assert.Equal(t, []float64{1, 10, 12.5}, trace.Y)
	assert.Equal(t, analytics.TitleSalesByRegion, charts.SalesByRegion.Layout.Title)
}

func TestBuildCharts_HistogramaDeVeinteIntervalos(t *testing.T) {
	rows := make([]entity.SalesRow, 0, 100)
	for i := 0; i < 100; i++ {
		rows = append(rows, entity.SalesRow{Region: "R", Amount: decimalFromInt(i)})
	}

	charts := analytics.BuildCharts(rows)

	require.Len(t, charts.Bins, analytics.HistogramBins)
	total := 0
	for _, b := range charts.Bins {
		total += b.Count
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, 0.0, charts.Bins[0].Start)
	assert.Equal(t, 99.0, charts.Bins[len(charts.Bins)-1].End)
	assert.Len(t, charts.AmountDistribution.Data[0].Y, analytics.HistogramBins)
	assert.Equal(t, analytics.TitleAmountDistribution, charts.AmountDistribution.Layout.Title)
}

func TestHistogram_MaximoEnElUltimoIntervalo(t *testing.T) {
	bins := analytics.Histogram([]float64{0, 10}, 20)

	require.Len(t, bins, 20)
	assert.Equal(t, 1, bins[0].Count)
	assert.Equal(t, 1, bins[19].Count)
}

func TestHistogram_ValoresIguales(t *testing.T) {
	bins := analytics.Histogram([]float64{5, 5, 5}, 20)

	require.Len(t, bins, 20)
	assert.InDelta(t, 4.5, bins[0].Start, 1e-9)
	assert.InDelta(t, 5.5, bins[19].End, 1e-9)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 3, total)
}

func TestHistogram_SinValores(t *testing.T) {
	assert.Nil(t, analytics.Histogram(nil, 20))
}
