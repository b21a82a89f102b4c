package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/domain/repository"
)

var _ repository.ETLRunRepository = (*ETLRunRepo)(nil)

// ETLRunRepo persiste la auditoría de ejecuciones en etl_runs.
type ETLRunRepo struct {
	q Querier
}

// NewETLRunRepository construye el adaptador.
func NewETLRunRepository(q Querier) *ETLRunRepo {
	return &ETLRunRepo{q: q}
}

// Save inserta la ejecución; si ya existe (mismo id) actualiza su estado final.
func (r *ETLRunRepo) Save(ctx context.Context, run *entity.ETLRun) error {
	const query = `
	INSERT INTO etl_runs (id, source, status, extracted, transformed, loaded, error, started_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
	    status      = EXCLUDED.status,
	    extracted   = EXCLUDED.extracted,
	    transformed = EXCLUDED.transformed,
	    loaded      = EXCLUDED.loaded,
	    error       = EXCLUDED.error,
	    finished_at = EXCLUDED.finished_at`

	_, err := r.q.Exec(ctx, query,
		run.ID, run.Source, run.Status, run.Extracted, run.Transformed, run.Loaded,
		run.Error, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("etl_runs.Save: %w", err)
	}
	return nil
}
