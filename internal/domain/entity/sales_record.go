package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord representa una fila de la tabla sales_data.
// Amount y Quantity ausentes o no numéricos llegan como 0 desde el transformador;
// TotalValue (Amount × Quantity) se calcula una sola vez en la transformación.
type SalesRecord struct {
	ID         int64
	Product    string
	Region     string
	Amount     decimal.Decimal
	Quantity   int64
	Date       time.Time
	TotalValue decimal.Decimal
}

// SalesRow proyección de solo lectura que consume el dashboard (region, amount, quantity).
type SalesRow struct {
	Region   string
	Amount   decimal.Decimal
	Quantity int64
}
