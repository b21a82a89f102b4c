package repository

import (
	"context"

	"github.com/jhoicas/ventas-bi/internal/domain/entity"
)

// SalesRepository puerto de persistencia de la tabla sales_data.
type SalesRepository interface {
	// InsertBatch persiste los registros y devuelve cuántos se insertaron.
	InsertBatch(ctx context.Context, records []entity.SalesRecord) (int, error)

	// Truncate vacía la tabla (modo de carga "replace").
	Truncate(ctx context.Context) error

	// FetchSales ejecuta la proyección fija del dashboard: SELECT region, amount, quantity FROM sales_data.
	FetchSales(ctx context.Context) ([]entity.SalesRow, error)
}
