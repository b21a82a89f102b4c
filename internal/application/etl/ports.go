package etl

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-bi/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio de ventas atado a esa tx.
// Garantiza que una carga se persiste completa o no se persiste.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(repo repository.SalesRepository) error) error
}

// Recorder recibe las métricas del proceso (implementado por infrastructure/metrics).
type Recorder interface {
	ObserveStage(stage string, records int)
	ObserveRun(status string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveStage(string, int)         {}
func (noopRecorder) ObserveRun(string, time.Duration) {}
