package repository

import (
	"context"

	"github.com/jhoicas/ventas-bi/internal/domain/entity"
)

// ETLRunRepository guarda la auditoría de ejecuciones del ETL.
type ETLRunRepository interface {
	Save(ctx context.Context, run *entity.ETLRun) error
}
