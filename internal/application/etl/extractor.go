// Package etl contiene el proceso batch Extract → Transform → Load que lleva un CSV
// de ventas a la tabla sales_data.
package etl

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ventas-bi/internal/domain"
)

// nullMarkers celdas que se leen como nulas (NaN) al cargar el CSV.
var nullMarkers = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<nil>"}

// Extractor lee un CSV a una tabla en memoria sin validar columnas.
type Extractor struct {
	log      zerolog.Logger
	encoding string
}

// NewExtractor construye el extractor. encoding: utf-8 (default), latin1, iso-8859-1 o windows-1252.
func NewExtractor(log zerolog.Logger, encoding string) *Extractor {
	return &Extractor{log: log, encoding: encoding}
}

// Extract carga el archivo en un DataFrame con todas las columnas como texto.
// Si el archivo no existe se registra el error y se devuelve nil con domain.ErrSourceNotFound.
func (e *Extractor) Extract(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.log.Error().Str("file", path).Msg("archivo no encontrado")
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		e.log.Error().Err(err).Str("file", path).Msg("no se pudo abrir el archivo")
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	r, err := decodeReader(f, e.encoding)
	if err != nil {
		e.log.Error().Err(err).Str("file", path).Msg("codificación no soportada")
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		e.log.Error().Err(err).Str("file", path).Msg("no se pudo leer el archivo")
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nullMarkers),
	)
	if df.Err != nil {
		// gota no admite un CSV con cabecera y sin filas; se devuelve la tabla vacía con sus columnas.
		header, ok := headerOnly(data)
		if !ok {
			e.log.Error().Err(df.Err).Str("file", path).Msg("CSV ilegible")
			return nil, fmt.Errorf("leer CSV %s: %w", path, df.Err)
		}
		df = emptyFrame(header)
	}

	e.log.Info().Int("records", df.Nrow()).Str("file", path).Msg("registros extraídos")
	return &df, nil
}

// decodeReader envuelve r con el decodificador de la codificación de origen.
// UTF-8 elimina además el BOM que suelen dejar las hojas de cálculo.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case "latin1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: codificación %q", domain.ErrInvalidInput, encoding)
	}
}

// headerOnly indica si data es un CSV con una única fila (la cabecera) y la devuelve.
func headerOnly(data []byte) ([]string, bool) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil || len(records) != 1 || len(records[0]) == 0 {
		return nil, false
	}
	return records[0], true
}

// emptyFrame tabla de cero filas con las columnas indicadas (todas de texto).
func emptyFrame(names []string) dataframe.DataFrame {
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(cols...)
}
