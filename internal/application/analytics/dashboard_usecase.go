// Package analytics contiene los casos de uso del dashboard de ventas: consulta,
// KPIs, figuras y reportes exportables.
package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ventas-bi/internal/application/dto"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/domain/repository"
)

// DashboardUseCase recalcula KPIs y figuras desde una consulta nueva en cada llamada.
// No hay caché: cada carga de página refleja el contenido actual de sales_data.
//
// Un error de consulta no se propaga: se registra y el dashboard muestra el estado vacío.
type DashboardUseCase struct {
	salesRepo repository.SalesRepository
	recorder  QueryRecorder
	log       zerolog.Logger
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso. recorder puede ser nil.
func NewDashboardUseCase(salesRepo repository.SalesRepository, log zerolog.Logger, recorder QueryRecorder) *DashboardUseCase {
	if recorder == nil {
		recorder = noopQueryRecorder{}
	}
	return &DashboardUseCase{salesRepo: salesRepo, recorder: recorder, log: log, now: time.Now}
}

// FetchSales ejecuta la proyección del dashboard. Devuelve nil si la consulta falla.
func (uc *DashboardUseCase) FetchSales(ctx context.Context) []entity.SalesRow {
	rows, err := uc.salesRepo.FetchSales(ctx)
	if err != nil {
		uc.recorder.ObserveQuery(false, 0)
		uc.log.Error().Err(err).Msg("error en la consulta del dashboard")
		return nil
	}
	uc.recorder.ObserveQuery(true, len(rows))
	uc.log.Info().Int("records", len(rows)).Msg("registros consultados")
	return rows
}

// GetKPIs consulta y calcula los indicadores.
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) dto.KPIsDTO {
	return ComputeKPIs(uc.FetchSales(ctx))
}

// GetCharts consulta y construye las figuras.
func (uc *DashboardUseCase) GetCharts(ctx context.Context) dto.ChartsDTO {
	return BuildCharts(uc.FetchSales(ctx))
}

// GetSummary KPIs y figuras a partir de una única consulta.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardSummaryDTO {
	rows := uc.FetchSales(ctx)
	return &dto.DashboardSummaryDTO{
		KPIs:        ComputeKPIs(rows),
		Charts:      BuildCharts(rows),
		GeneratedAt: uc.now(),
	}
}
