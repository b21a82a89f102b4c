package etl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/domain/repository"
)

// Etapas reportadas al Recorder.
const (
	StageExtract   = "extract"
	StageTransform = "transform"
	StageLoad      = "load"
)

// PipelineDeps dependencias del pipeline.
type PipelineDeps struct {
	Extractor   *Extractor
	Transformer *Transformer
	Loader      *Loader
	Runs        repository.ETLRunRepository // opcional: auditoría en etl_runs
	Recorder    Recorder                    // opcional: métricas
	Log         zerolog.Logger
}

// Pipeline encadena Extract → Transform → Load. No reintenta: el fallo de una etapa
// queda registrado en el log y en el ETLRun devuelto.
type Pipeline struct {
	deps PipelineDeps
	now  func() time.Time
}

// NewPipeline construye el pipeline.
func NewPipeline(deps PipelineDeps) *Pipeline {
	if deps.Recorder == nil {
		deps.Recorder = noopRecorder{}
	}
	return &Pipeline{deps: deps, now: time.Now}
}

// Run ejecuta el proceso completo sobre el CSV source y devuelve el resumen de la ejecución.
func (p *Pipeline) Run(ctx context.Context, source string) *entity.ETLRun {
	run := &entity.ETLRun{
		ID:        uuid.NewString(),
		Source:    source,
		Status:    entity.ETLRunRunning,
		StartedAt: p.now(),
	}
	log := p.deps.Log.With().Str("run_id", run.ID).Logger()
	log.Info().Str("source", source).Msg("inicio de ejecución ETL")

	p.execute(ctx, run)

	run.FinishedAt = p.now()
	elapsed := run.FinishedAt.Sub(run.StartedAt)
	p.deps.Recorder.ObserveRun(run.Status, elapsed)

	if p.deps.Runs != nil {
		if err := p.deps.Runs.Save(ctx, run); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la ejecución en etl_runs")
		}
	}

	evt := log.Info()
	if run.Failed() {
		evt = log.Error().Str("error", run.Error)
	}
	evt.Str("status", run.Status).
		Int("extracted", run.Extracted).
		Int("transformed", run.Transformed).
		Int("loaded", run.Loaded).
		Dur("elapsed", elapsed).
		Msg("fin de ejecución ETL")
	return run
}

func (p *Pipeline) execute(ctx context.Context, run *entity.ETLRun) {
	raw, err := p.deps.Extractor.Extract(ctx, run.Source)
	if err != nil {
		p.fail(run, err)
		return
	}
	run.Extracted = raw.Nrow()
	p.deps.Recorder.ObserveStage(StageExtract, run.Extracted)

	clean, err := p.deps.Transformer.Transform(ctx, raw)
	if err != nil {
		p.fail(run, err)
		return
	}
	run.Transformed = clean.Nrow()
	p.deps.Recorder.ObserveStage(StageTransform, run.Transformed)

	loaded, err := p.deps.Loader.Load(ctx, clean)
	if err != nil {
		p.fail(run, err)
		return
	}
	run.Loaded = loaded
	p.deps.Recorder.ObserveStage(StageLoad, run.Loaded)
	run.Status = entity.ETLRunSucceeded
}

func (p *Pipeline) fail(run *entity.ETLRun, err error) {
	run.Status = entity.ETLRunFailed
	run.Error = err.Error()
}
