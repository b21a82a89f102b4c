package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPIsDTO respuesta de GET /api/dashboard/kpis.
// Total, Avg y Max vienen formateados como moneda ("$30.00"); "0" cuando no hay ventas.
type KPIsDTO struct {
	Total string `json:"total"`
	Avg   string `json:"avg"`
	Max   string `json:"max"`
	Count int    `json:"count"`
}

// ChartsDTO respuesta de GET /api/dashboard/charts.
// Las figuras siguen el formato de plotly.js ({data, layout}); vacías ({}) si no hay datos.
type ChartsDTO struct {
	SalesByRegion      FigureDTO `json:"sales_by_region"`
	AmountDistribution FigureDTO `json:"amount_distribution"`

	// Datos tabulares detrás de las figuras (los usan el PDF y el XLSX)
	Regions []RegionTotalDTO  `json:"regions,omitempty"`
	Bins    []HistogramBinDTO `json:"bins,omitempty"`
}

// Empty indica si no hay datos para graficar.
func (c ChartsDTO) Empty() bool {
	return len(c.SalesByRegion.Data) == 0 && len(c.AmountDistribution.Data) == 0
}

// FigureDTO figura compatible con plotly.js.
type FigureDTO struct {
	Data   []TraceDTO `json:"data,omitempty"`
	Layout *LayoutDTO `json:"layout,omitempty"`
}

// TraceDTO una serie de la figura. X puede ser []string (categorías) o []float64.
type TraceDTO struct {
	Type  string    `json:"type"`
	Name  string    `json:"name,omitempty"`
	X     any       `json:"x"`
	Y     []float64 `json:"y"`
	Width []float64 `json:"width,omitempty"`
}

// LayoutDTO título y ejes de la figura.
type LayoutDTO struct {
	Title  string  `json:"title"`
	XAxis  AxisDTO `json:"xaxis"`
	YAxis  AxisDTO `json:"yaxis"`
	Bargap float64 `json:"bargap"`
}

// AxisDTO título de un eje.
type AxisDTO struct {
	Title string `json:"title"`
}

// RegionTotalDTO suma de amount de una región.
type RegionTotalDTO struct {
	Region string          `json:"region"`
	Amount decimal.Decimal `json:"amount"`
}

// HistogramBinDTO intervalo [Start, End) del histograma; el último incluye End.
type HistogramBinDTO struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	KPIs        KPIsDTO   `json:"kpis"`
	Charts      ChartsDTO `json:"charts"`
	GeneratedAt time.Time `json:"generated_at"`
}
