package etl

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ventas-bi/internal/domain"
)

// Columnas conocidas del CSV de ventas.
const (
	ColProduct    = "product"
	ColRegion     = "region"
	ColAmount     = "amount"
	ColQuantity   = "quantity"
	ColDate       = "date"
	ColTotalValue = "total_value"
)

// nanMarker es como gota representa una celda nula al exportar registros.
const nanMarker = "NaN"

// Transformer limpia y enriquece la tabla extraída. Los pasos siempre se aplican en este orden:
//  1. elimina filas duplicadas (sobrevive la primera); amount y quantity se comparan por valor
//  2. convierte amount y quantity a número; lo no numérico queda como NaN
//  3. reemplaza toda celda nula/NaN (en cualquier columna) por 0
//  4. calcula total_value = amount × quantity
type Transformer struct {
	log zerolog.Logger
}

// NewTransformer construye el transformador.
func NewTransformer(log zerolog.Logger) *Transformer {
	return &Transformer{log: log}
}

// Transform devuelve una tabla nueva; la de entrada no se modifica.
// Si faltan amount o quantity se registra el error y se devuelve nil.
func (t *Transformer) Transform(ctx context.Context, df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if df == nil || df.Err != nil {
		t.log.Error().Msg("transformación sin tabla de entrada")
		return nil, fmt.Errorf("transform: %w", domain.ErrInvalidInput)
	}

	names := df.Names()
	amountIdx := indexOf(names, ColAmount)
	quantityIdx := indexOf(names, ColQuantity)
	if amountIdx < 0 || quantityIdx < 0 {
		t.log.Error().Strs("columns", names).Msg("faltan columnas amount/quantity")
		return nil, fmt.Errorf("transform: %w: se requieren %q y %q", domain.ErrMissingColumn, ColAmount, ColQuantity)
	}

	nrow := df.Nrow()
	text := make([][]string, len(names))
	for j, name := range names {
		text[j] = columnText(df.Col(name))
	}
	amountsIn := columnNumbers(df.Col(ColAmount), text[amountIdx])
	quantitiesIn := columnNumbers(df.Col(ColQuantity), text[quantityIdx])

	// Clave de cada fila: amount y quantity por su valor numérico si lo tienen ("10" == "10.0"),
	// el resto por su texto.
	numeric := map[int][]float64{amountIdx: amountsIn, quantityIdx: quantitiesIn}
	keep := dropDuplicates(nrow, len(names), func(i, j int) string {
		if nums, ok := numeric[j]; ok && !math.IsNaN(nums[i]) {
			return strconv.FormatFloat(nums[i], 'g', -1, 64)
		}
		return text[j][i]
	})

	amounts := make([]float64, len(keep))
	quantities := make([]float64, len(keep))
	totals := make([]float64, len(keep))
	for k, i := range keep {
		amounts[k] = fillNaN(amountsIn[i])
		quantities[k] = fillNaN(quantitiesIn[i])
		totals[k] = amounts[k] * quantities[k]
	}

	cols := make([]series.Series, 0, len(names)+1)
	for j, name := range names {
		switch j {
		case amountIdx:
			cols = append(cols, series.New(amounts, series.Float, name))
		case quantityIdx:
			cols = append(cols, series.New(quantities, series.Float, name))
		default:
			if name == ColTotalValue {
				continue
			}
			values := make([]string, len(keep))
			for k, i := range keep {
				values[k] = text[j][i]
				if values[k] == nanMarker {
					values[k] = "0"
				}
			}
			cols = append(cols, series.New(values, series.String, name))
		}
	}
	cols = append(cols, series.New(totals, series.Float, ColTotalValue))

	out := dataframe.New(cols...)
	if out.Err != nil {
		t.log.Error().Err(out.Err).Msg("error construyendo la tabla transformada")
		return nil, fmt.Errorf("transform: %w", out.Err)
	}

	t.log.Info().
		Int("records", out.Nrow()).
		Int("duplicates", df.Nrow()-out.Nrow()).
		Msg("registros transformados")
	return &out, nil
}

// dropDuplicates devuelve los índices de la primera aparición de cada fila, en orden.
// cell(i, j) es el texto con el que se compara la celda de la fila i, columna j.
func dropDuplicates(nrow, ncol int, cell func(i, j int) string) []int {
	seen := make(map[string]struct{}, nrow)
	keep := make([]int, 0, nrow)
	parts := make([]string, ncol)
	for i := 0; i < nrow; i++ {
		for j := range parts {
			parts[j] = cell(i, j)
		}
		key := strings.Join(parts, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	return keep
}

// columnText texto de cada celda. Las columnas Float se escriben con la precisión mínima
// que conserva el valor (Records de gota usa %f y trunca a 6 decimales).
func columnText(s series.Series) []string {
	if s.Type() != series.Float {
		return s.Records()
	}
	values := s.Float()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// columnNumbers valor numérico de cada celda; NaN si no es numérica.
func columnNumbers(s series.Series, text []string) []float64 {
	if s.Type() == series.Float {
		values := s.Float()
		for i, v := range values {
			if math.IsInf(v, 0) {
				values[i] = math.NaN()
			}
		}
		return values
	}
	out := make([]float64, len(text))
	for i, t := range text {
		out[i] = toNumeric(t)
	}
	return out
}

// toNumeric convierte a float64; lo no numérico o no finito devuelve NaN.
func toNumeric(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func fillNaN(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
