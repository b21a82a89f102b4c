package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-bi/internal/domain"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// salesColumns columnas escritas por InsertBatch (id lo asigna la BD).
var salesColumns = []string{"product", "region", "amount", "quantity", "date", "total_value"}

// SalesRepo implementación del puerto SalesRepository sobre PostgreSQL (usable con pool o tx).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// InsertBatch persiste los registros con COPY.
func (r *SalesRepo) InsertBatch(ctx context.Context, records []entity.SalesRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	n, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"sales_data"},
		salesColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.Product, rec.Region, rec.Amount, rec.Quantity, rec.Date, rec.TotalValue}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("sales.InsertBatch: %w", err)
	}
	return int(n), nil
}

// Truncate vacía sales_data y reinicia la secuencia de id.
func (r *SalesRepo) Truncate(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE TABLE sales_data RESTART IDENTITY`); err != nil {
		return fmt.Errorf("sales.Truncate: %w", err)
	}
	return nil
}

// FetchSales proyección fija del dashboard.
// amount/quantity nulos (filas cargadas por fuera del ETL) se leen como 0.
func (r *SalesRepo) FetchSales(ctx context.Context) ([]entity.SalesRow, error) {
	const query = `
	SELECT
	    COALESCE(region,   ''),
	    COALESCE(amount,   0),
	    COALESCE(quantity, 0)
	FROM sales_data`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("sales.FetchSales: %w: tabla sales_data inexistente", domain.ErrQueryFailed)
		}
		return nil, fmt.Errorf("sales.FetchSales: %w: %v", domain.ErrQueryFailed, err)
	}
	defer rows.Close()

	var results []entity.SalesRow
	for rows.Next() {
		var row entity.SalesRow
		if err := rows.Scan(&row.Region, &row.Amount, &row.Quantity); err != nil {
			return nil, fmt.Errorf("sales.FetchSales scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.FetchSales rows: %w", err)
	}
	return results, nil
}
