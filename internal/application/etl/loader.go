package etl

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-bi/internal/domain"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/domain/repository"
	"github.com/jhoicas/ventas-bi/pkg/config"
)

// dateLayouts formatos de fecha aceptados en la columna date del CSV.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

// Loader persiste la tabla transformada en sales_data dentro de una única transacción.
type Loader struct {
	tx   TxRunner
	log  zerolog.Logger
	mode string
	now  func() time.Time
}

// NewLoader construye el cargador. mode: config.LoadModeAppend o config.LoadModeReplace.
func NewLoader(tx TxRunner, log zerolog.Logger, mode string) *Loader {
	return &Loader{tx: tx, log: log, mode: mode, now: time.Now}
}

// Load convierte las filas a SalesRecord y las inserta. Devuelve cuántas se persistieron.
func (l *Loader) Load(ctx context.Context, df *dataframe.DataFrame) (int, error) {
	records, err := ToRecords(df, l.now())
	if err != nil {
		l.log.Error().Err(err).Msg("no se pudo preparar la carga")
		return 0, err
	}

	var loaded int
	err = l.tx.RunSales(ctx, func(repo repository.SalesRepository) error {
		if l.mode == config.LoadModeReplace {
			if err := repo.Truncate(ctx); err != nil {
				return err
			}
		}
		n, err := repo.InsertBatch(ctx, records)
		if err != nil {
			return err
		}
		loaded = n
		return nil
	})
	if err != nil {
		l.log.Error().Err(err).Int("records", len(records)).Msg("error cargando registros")
		return 0, fmt.Errorf("load: %w", err)
	}

	l.log.Info().Int("records", loaded).Str("mode", l.mode).Msg("registros cargados")
	return loaded, nil
}

// ToRecords convierte la tabla transformada en registros de dominio.
// quantity se trunca a entero; una fecha ausente o ilegible toma el valor de defaultDate.
func ToRecords(df *dataframe.DataFrame, defaultDate time.Time) ([]entity.SalesRecord, error) {
	if df == nil || df.Err != nil {
		return nil, fmt.Errorf("load: %w", domain.ErrInvalidInput)
	}
	names := df.Names()
	for _, required := range []string{ColAmount, ColQuantity, ColTotalValue} {
		if indexOf(names, required) < 0 {
			return nil, fmt.Errorf("load: %w: %q", domain.ErrMissingColumn, required)
		}
	}

	amounts := df.Col(ColAmount).Float()
	quantities := df.Col(ColQuantity).Float()
	totals := df.Col(ColTotalValue).Float()
	products := optionalColumn(df, names, ColProduct)
	regions := optionalColumn(df, names, ColRegion)
	dates := optionalColumn(df, names, ColDate)

	records := make([]entity.SalesRecord, df.Nrow())
	for i := range records {
		records[i] = entity.SalesRecord{
			Product:    products[i],
			Region:     regions[i],
			Amount:     decimal.NewFromFloat(amounts[i]),
			Quantity:   int64(math.Trunc(quantities[i])),
			Date:       parseDate(dates[i], defaultDate),
			TotalValue: decimal.NewFromFloat(totals[i]),
		}
	}
	return records, nil
}

func optionalColumn(df *dataframe.DataFrame, names []string, name string) []string {
	if indexOf(names, name) < 0 {
		return make([]string, df.Nrow())
	}
	return df.Col(name).Records()
}

func parseDate(s string, def time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return def
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return def
}
