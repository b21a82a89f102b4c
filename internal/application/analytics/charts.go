package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-bi/internal/application/dto"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
)

// HistogramBins número de intervalos del histograma de montos.
const HistogramBins = 20

// Títulos de las figuras.
const (
	TitleSalesByRegion      = "Sales by Region"
	TitleAmountDistribution = "Sales Amount Distribution"
)

// BuildCharts construye desde cero las dos figuras del dashboard:
//   - barras: suma de amount por región (regiones en orden ascendente)
//   - histograma: HistogramBins intervalos de igual ancho sobre [min, max] de amount
//
// Sin filas devuelve ambas figuras vacías.
func BuildCharts(rows []entity.SalesRow) dto.ChartsDTO {
	if len(rows) == 0 {
		return dto.ChartsDTO{}
	}

	regions := regionTotals(rows)
	amounts := make([]float64, len(rows))
	for i, r := range rows {
		amounts[i] = r.Amount.InexactFloat64()
	}
	bins := Histogram(amounts, HistogramBins)

	return dto.ChartsDTO{
		SalesByRegion:      regionFigure(regions),
		AmountDistribution: histogramFigure(bins),
		Regions:            regions,
		Bins:               bins,
	}
}

// regionTotals agrupa por región y suma amount.
func regionTotals(rows []entity.SalesRow) []dto.RegionTotalDTO {
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		sums[r.Region] = sums[r.Region].Add(r.Amount)
	}
	out := make([]dto.RegionTotalDTO, 0, len(sums))
	for region, amount := range sums {
		out = append(out, dto.RegionTotalDTO{Region: region, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// Histogram reparte values en nbins intervalos de igual ancho entre el mínimo y el máximo.
// El último intervalo es cerrado para incluir el máximo. Si todos los valores son iguales
// el rango se abre a [v-0.5, v+0.5].
func Histogram(values []float64, nbins int) []dto.HistogramBinDTO {
	if len(values) == 0 || nbins <= 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(nbins)

	bins := make([]dto.HistogramBinDTO, nbins)
	for i := range bins {
		bins[i].Start = lo + float64(i)*width
		bins[i].End = lo + float64(i+1)*width
	}
	bins[nbins-1].End = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= nbins {
			idx = nbins - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}
	return bins
}

func regionFigure(regions []dto.RegionTotalDTO) dto.FigureDTO {
	x := make([]string, len(regions))
	y := make([]float64, len(regions))
	for i, r := range regions {
		x[i] = r.Region
		y[i] = r.Amount.InexactFloat64()
	}
	return dto.FigureDTO{
		Data: []dto.TraceDTO{{Type: "bar", Name: "amount", X: x, Y: y}},
		Layout: &dto.LayoutDTO{
			Title: TitleSalesByRegion,
			XAxis: dto.AxisDTO{Title: "region"},
			YAxis: dto.AxisDTO{Title: "amount"},
		},
	}
}

// histogramFigure dibuja los intervalos como barras contiguas (centro, ancho, conteo).
func histogramFigure(bins []dto.HistogramBinDTO) dto.FigureDTO {
	x := make([]float64, len(bins))
	y := make([]float64, len(bins))
	w := make([]float64, len(bins))
	for i, b := range bins {
		x[i] = (b.Start + b.End) / 2
		y[i] = float64(b.Count)
		w[i] = b.End - b.Start
	}
	return dto.FigureDTO{
		Data: []dto.TraceDTO{{Type: "bar", Name: "count", X: x, Y: y, Width: w}},
		Layout: &dto.LayoutDTO{
			Title: TitleAmountDistribution,
			XAxis: dto.AxisDTO{Title: "amount"},
			YAxis: dto.AxisDTO{Title: "count"},
		},
	}
}
